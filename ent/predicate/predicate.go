// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Audit is the predicate function for audit builders.
type Audit func(*sql.Selector)

// AuditChunkResult is the predicate function for auditchunkresult builders.
type AuditChunkResult func(*sql.Selector)

// AuditorQuestion is the predicate function for auditorquestion builders.
type AuditorQuestion func(*sql.Selector)

// Chunk is the predicate function for chunk builders.
type Chunk func(*sql.Selector)

// Citation is the predicate function for citation builders.
type Citation func(*sql.Selector)

// ComplianceScore is the predicate function for compliancescore builders.
type ComplianceScore func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Flag is the predicate function for flag builders.
type Flag func(*sql.Selector)
