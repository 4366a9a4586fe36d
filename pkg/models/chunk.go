package models

// ChunkRecord is the storage-independent view of a persisted chunk, used by
// retrieval, analysis, and the audit runner.
type ChunkRecord struct {
	ID                 int            `json:"id"`
	ChunkID            string         `json:"chunk_id"`
	DocumentID         int            `json:"document_id"`
	DocumentExternalID string         `json:"document_external_id"`
	ChunkIndex         int            `json:"chunk_index"`
	SectionPath        []string       `json:"section_path,omitempty"`
	ParentHeading      string         `json:"parent_heading,omitempty"`
	Content            string         `json:"content"`
	TokenCount         int            `json:"token_count"`
	Metadata           map[string]any `json:"metadata,omitempty"`
}

// HeadingPath renders the section path as "a > b > c", falling back to the
// parent heading.
func (c *ChunkRecord) HeadingPath() string {
	if len(c.SectionPath) == 0 {
		return c.ParentHeading
	}
	path := c.SectionPath[0]
	for _, part := range c.SectionPath[1:] {
		path += " > " + part
	}
	return path
}
