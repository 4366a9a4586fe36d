// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditsColumns holds the columns for the "audits" table.
	AuditsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "external_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "completed", "failed"}, Default: "queued"},
		{Name: "is_draft", Type: field.TypeBool, Default: false},
		{Name: "chunk_total", Type: field.TypeInt, Default: 0},
		{Name: "chunk_completed", Type: field.TypeInt, Default: 0},
		{Name: "last_chunk_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_at", Type: field.TypeTime, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "document_id", Type: field.TypeInt},
	}
	// AuditsTable holds the schema information for the "audits" table.
	AuditsTable = &schema.Table{
		Name:       "audits",
		Columns:    AuditsColumns,
		PrimaryKey: []*schema.Column{AuditsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audits_documents_audits",
				Columns:    []*schema.Column{AuditsColumns[12]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "audit_status",
				Unique:  false,
				Columns: []*schema.Column{AuditsColumns[2]},
			},
			{
				Name:    "audit_document_id",
				Unique:  false,
				Columns: []*schema.Column{AuditsColumns[12]},
			},
			{
				Name:    "audit_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditsColumns[2], AuditsColumns[7]},
			},
		},
	}
	// AuditChunkResultsColumns holds the columns for the "audit_chunk_results" table.
	AuditChunkResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "chunk_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"completed", "failed"}, Default: "completed"},
		{Name: "analysis", Type: field.TypeJSON},
		{Name: "context_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeInt},
	}
	// AuditChunkResultsTable holds the schema information for the "audit_chunk_results" table.
	AuditChunkResultsTable = &schema.Table{
		Name:       "audit_chunk_results",
		Columns:    AuditChunkResultsColumns,
		PrimaryKey: []*schema.Column{AuditChunkResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_chunk_results_audits_chunk_results",
				Columns:    []*schema.Column{AuditChunkResultsColumns[6]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditchunkresult_audit_id_chunk_id",
				Unique:  true,
				Columns: []*schema.Column{AuditChunkResultsColumns[6], AuditChunkResultsColumns[1]},
			},
		},
	}
	// AuditorQuestionsColumns holds the columns for the "auditor_questions" table.
	AuditorQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "regulation_reference", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "priority", Type: field.TypeInt},
		{Name: "rationale", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "related_flag_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeInt},
	}
	// AuditorQuestionsTable holds the schema information for the "auditor_questions" table.
	AuditorQuestionsTable = &schema.Table{
		Name:       "auditor_questions",
		Columns:    AuditorQuestionsColumns,
		PrimaryKey: []*schema.Column{AuditorQuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "auditor_questions_audits_questions",
				Columns:    []*schema.Column{AuditorQuestionsColumns[7]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditorquestion_audit_id_regulation_reference",
				Unique:  false,
				Columns: []*schema.Column{AuditorQuestionsColumns[7], AuditorQuestionsColumns[1]},
			},
		},
	}
	// ChunksColumns holds the columns for the "chunks" table.
	ChunksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "chunk_id", Type: field.TypeString, Unique: true},
		{Name: "chunk_index", Type: field.TypeInt},
		{Name: "section_path", Type: field.TypeJSON, Nullable: true},
		{Name: "parent_heading", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "token_count", Type: field.TypeInt},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding_status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeInt},
	}
	// ChunksTable holds the schema information for the "chunks" table.
	ChunksTable = &schema.Table{
		Name:       "chunks",
		Columns:    ChunksColumns,
		PrimaryKey: []*schema.Column{ChunksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chunks_documents_chunks",
				Columns:    []*schema.Column{ChunksColumns[10]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chunk_document_id_chunk_index",
				Unique:  true,
				Columns: []*schema.Column{ChunksColumns[10], ChunksColumns[2]},
			},
			{
				Name:    "chunk_embedding_status",
				Unique:  false,
				Columns: []*schema.Column{ChunksColumns[8]},
			},
		},
	}
	// CitationsColumns holds the columns for the "citations" table.
	CitationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "citation_type", Type: field.TypeEnum, Enums: []string{"manual", "regulation"}},
		{Name: "reference", Type: field.TypeString},
		{Name: "flag_id", Type: field.TypeInt},
	}
	// CitationsTable holds the schema information for the "citations" table.
	CitationsTable = &schema.Table{
		Name:       "citations",
		Columns:    CitationsColumns,
		PrimaryKey: []*schema.Column{CitationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "citations_flags_citations",
				Columns:    []*schema.Column{CitationsColumns[3]},
				RefColumns: []*schema.Column{FlagsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "citation_flag_id",
				Unique:  false,
				Columns: []*schema.Column{CitationsColumns[3]},
			},
			{
				Name:    "citation_citation_type_reference",
				Unique:  false,
				Columns: []*schema.Column{CitationsColumns[1], CitationsColumns[2]},
			},
		},
	}
	// ComplianceScoresColumns holds the columns for the "compliance_scores" table.
	ComplianceScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "overall_score", Type: field.TypeFloat64},
		{Name: "red_count", Type: field.TypeInt, Default: 0},
		{Name: "yellow_count", Type: field.TypeInt, Default: 0},
		{Name: "green_count", Type: field.TypeInt, Default: 0},
		{Name: "total_flags", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeInt},
	}
	// ComplianceScoresTable holds the schema information for the "compliance_scores" table.
	ComplianceScoresTable = &schema.Table{
		Name:       "compliance_scores",
		Columns:    ComplianceScoresColumns,
		PrimaryKey: []*schema.Column{ComplianceScoresColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "compliance_scores_audits_scores",
				Columns:    []*schema.Column{ComplianceScoresColumns[8]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "compliancescore_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ComplianceScoresColumns[7]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "external_id", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "stored_path", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt64},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"manual", "regulation", "amc", "gm", "evidence"}},
		{Name: "organization", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"uploaded", "processing", "processed", "failed"}, Default: "uploaded"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_source_type",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
			{
				Name:    "document_organization",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[7]},
			},
			{
				Name:    "document_content_hash",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5]},
			},
		},
	}
	// FlagsColumns holds the columns for the "flags" table.
	FlagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "chunk_id", Type: field.TypeString},
		{Name: "flag_type", Type: field.TypeEnum, Enums: []string{"RED", "YELLOW", "GREEN"}},
		{Name: "severity_score", Type: field.TypeInt},
		{Name: "findings", Type: field.TypeString, Size: 2147483647},
		{Name: "gaps", Type: field.TypeJSON, Nullable: true},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "analysis_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeInt},
	}
	// FlagsTable holds the schema information for the "flags" table.
	FlagsTable = &schema.Table{
		Name:       "flags",
		Columns:    FlagsColumns,
		PrimaryKey: []*schema.Column{FlagsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "flags_audits_flags",
				Columns:    []*schema.Column{FlagsColumns[10]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "flag_audit_id_chunk_id",
				Unique:  true,
				Columns: []*schema.Column{FlagsColumns[10], FlagsColumns[1]},
			},
			{
				Name:    "flag_flag_type",
				Unique:  false,
				Columns: []*schema.Column{FlagsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditsTable,
		AuditChunkResultsTable,
		AuditorQuestionsTable,
		ChunksTable,
		CitationsTable,
		ComplianceScoresTable,
		DocumentsTable,
		FlagsTable,
	}
)

func init() {
	AuditsTable.ForeignKeys[0].RefTable = DocumentsTable
	AuditChunkResultsTable.ForeignKeys[0].RefTable = AuditsTable
	AuditorQuestionsTable.ForeignKeys[0].RefTable = AuditsTable
	ChunksTable.ForeignKeys[0].RefTable = DocumentsTable
	CitationsTable.ForeignKeys[0].RefTable = FlagsTable
	ComplianceScoresTable.ForeignKeys[0].RefTable = AuditsTable
	FlagsTable.ForeignKeys[0].RefTable = AuditsTable
}
