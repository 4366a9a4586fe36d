// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/ent/auditchunkresult"
	"github.com/regsentry/regsentry/ent/auditorquestion"
	"github.com/regsentry/regsentry/ent/chunk"
	"github.com/regsentry/regsentry/ent/citation"
	"github.com/regsentry/regsentry/ent/compliancescore"
	"github.com/regsentry/regsentry/ent/document"
	"github.com/regsentry/regsentry/ent/flag"
	"github.com/regsentry/regsentry/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditFields := schema.Audit{}.Fields()
	_ = auditFields
	// auditDescIsDraft is the schema descriptor for is_draft field.
	auditDescIsDraft := auditFields[3].Descriptor()
	// audit.DefaultIsDraft holds the default value on creation for the is_draft field.
	audit.DefaultIsDraft = auditDescIsDraft.Default.(bool)
	// auditDescChunkTotal is the schema descriptor for chunk_total field.
	auditDescChunkTotal := auditFields[4].Descriptor()
	// audit.DefaultChunkTotal holds the default value on creation for the chunk_total field.
	audit.DefaultChunkTotal = auditDescChunkTotal.Default.(int)
	// auditDescChunkCompleted is the schema descriptor for chunk_completed field.
	auditDescChunkCompleted := auditFields[5].Descriptor()
	// audit.DefaultChunkCompleted holds the default value on creation for the chunk_completed field.
	audit.DefaultChunkCompleted = auditDescChunkCompleted.Default.(int)
	// auditDescCreatedAt is the schema descriptor for created_at field.
	auditDescCreatedAt := auditFields[7].Descriptor()
	// audit.DefaultCreatedAt holds the default value on creation for the created_at field.
	audit.DefaultCreatedAt = auditDescCreatedAt.Default.(func() time.Time)
	// auditDescFailureReason is the schema descriptor for failure_reason field.
	auditDescFailureReason := auditFields[11].Descriptor()
	// audit.FailureReasonValidator is a validator for the "failure_reason" field. It is called by the builders before save.
	audit.FailureReasonValidator = auditDescFailureReason.Validators[0].(func(string) error)
	auditchunkresultFields := schema.AuditChunkResult{}.Fields()
	_ = auditchunkresultFields
	// auditchunkresultDescCreatedAt is the schema descriptor for created_at field.
	auditchunkresultDescCreatedAt := auditchunkresultFields[5].Descriptor()
	// auditchunkresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditchunkresult.DefaultCreatedAt = auditchunkresultDescCreatedAt.Default.(func() time.Time)
	auditorquestionFields := schema.AuditorQuestion{}.Fields()
	_ = auditorquestionFields
	// auditorquestionDescRegulationReference is the schema descriptor for regulation_reference field.
	auditorquestionDescRegulationReference := auditorquestionFields[1].Descriptor()
	// auditorquestion.RegulationReferenceValidator is a validator for the "regulation_reference" field. It is called by the builders before save.
	auditorquestion.RegulationReferenceValidator = auditorquestionDescRegulationReference.Validators[0].(func(string) error)
	// auditorquestionDescQuestion is the schema descriptor for question field.
	auditorquestionDescQuestion := auditorquestionFields[2].Descriptor()
	// auditorquestion.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	auditorquestion.QuestionValidator = auditorquestionDescQuestion.Validators[0].(func(string) error)
	// auditorquestionDescPriority is the schema descriptor for priority field.
	auditorquestionDescPriority := auditorquestionFields[3].Descriptor()
	// auditorquestion.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	auditorquestion.PriorityValidator = func() func(int) error {
		validators := auditorquestionDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// auditorquestionDescCreatedAt is the schema descriptor for created_at field.
	auditorquestionDescCreatedAt := auditorquestionFields[6].Descriptor()
	// auditorquestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditorquestion.DefaultCreatedAt = auditorquestionDescCreatedAt.Default.(func() time.Time)
	chunkFields := schema.Chunk{}.Fields()
	_ = chunkFields
	// chunkDescCreatedAt is the schema descriptor for created_at field.
	chunkDescCreatedAt := chunkFields[9].Descriptor()
	// chunk.DefaultCreatedAt holds the default value on creation for the created_at field.
	chunk.DefaultCreatedAt = chunkDescCreatedAt.Default.(func() time.Time)
	citationFields := schema.Citation{}.Fields()
	_ = citationFields
	// citationDescReference is the schema descriptor for reference field.
	citationDescReference := citationFields[2].Descriptor()
	// citation.ReferenceValidator is a validator for the "reference" field. It is called by the builders before save.
	citation.ReferenceValidator = citationDescReference.Validators[0].(func(string) error)
	compliancescoreFields := schema.ComplianceScore{}.Fields()
	_ = compliancescoreFields
	// compliancescoreDescRedCount is the schema descriptor for red_count field.
	compliancescoreDescRedCount := compliancescoreFields[2].Descriptor()
	// compliancescore.DefaultRedCount holds the default value on creation for the red_count field.
	compliancescore.DefaultRedCount = compliancescoreDescRedCount.Default.(int)
	// compliancescoreDescYellowCount is the schema descriptor for yellow_count field.
	compliancescoreDescYellowCount := compliancescoreFields[3].Descriptor()
	// compliancescore.DefaultYellowCount holds the default value on creation for the yellow_count field.
	compliancescore.DefaultYellowCount = compliancescoreDescYellowCount.Default.(int)
	// compliancescoreDescGreenCount is the schema descriptor for green_count field.
	compliancescoreDescGreenCount := compliancescoreFields[4].Descriptor()
	// compliancescore.DefaultGreenCount holds the default value on creation for the green_count field.
	compliancescore.DefaultGreenCount = compliancescoreDescGreenCount.Default.(int)
	// compliancescoreDescTotalFlags is the schema descriptor for total_flags field.
	compliancescoreDescTotalFlags := compliancescoreFields[5].Descriptor()
	// compliancescore.DefaultTotalFlags holds the default value on creation for the total_flags field.
	compliancescore.DefaultTotalFlags = compliancescoreDescTotalFlags.Default.(int)
	// compliancescoreDescCreatedAt is the schema descriptor for created_at field.
	compliancescoreDescCreatedAt := compliancescoreFields[6].Descriptor()
	// compliancescore.DefaultCreatedAt holds the default value on creation for the created_at field.
	compliancescore.DefaultCreatedAt = compliancescoreDescCreatedAt.Default.(func() time.Time)
	// compliancescoreDescUpdatedAt is the schema descriptor for updated_at field.
	compliancescoreDescUpdatedAt := compliancescoreFields[7].Descriptor()
	// compliancescore.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	compliancescore.DefaultUpdatedAt = compliancescoreDescUpdatedAt.Default.(func() time.Time)
	// compliancescore.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	compliancescore.UpdateDefaultUpdatedAt = compliancescoreDescUpdatedAt.UpdateDefault.(func() time.Time)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[8].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[9].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	flagFields := schema.Flag{}.Fields()
	_ = flagFields
	// flagDescFindings is the schema descriptor for findings field.
	flagDescFindings := flagFields[4].Descriptor()
	// flag.FindingsValidator is a validator for the "findings" field. It is called by the builders before save.
	flag.FindingsValidator = flagDescFindings.Validators[0].(func(string) error)
	// flagDescCreatedAt is the schema descriptor for created_at field.
	flagDescCreatedAt := flagFields[8].Descriptor()
	// flag.DefaultCreatedAt holds the default value on creation for the created_at field.
	flag.DefaultCreatedAt = flagDescCreatedAt.Default.(func() time.Time)
	// flagDescUpdatedAt is the schema descriptor for updated_at field.
	flagDescUpdatedAt := flagFields[9].Descriptor()
	// flag.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	flag.DefaultUpdatedAt = flagDescUpdatedAt.Default.(func() time.Time)
	// flag.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	flag.UpdateDefaultUpdatedAt = flagDescUpdatedAt.UpdateDefault.(func() time.Time)
}
