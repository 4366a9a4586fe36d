package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMarkdownHeadingPaths(t *testing.T) {
	content := `Intro paragraph before any heading.

# Maintenance Manual

General scope text.

## Tooling

Calibration requirements.

### Torque Wrenches

Annual calibration interval.

## Records

Retention is two years.
`

	sections := ExtractSections("manual.md", content)
	require.Len(t, sections, 5)

	assert.Equal(t, "", sections[0].Title)
	assert.Equal(t, "Intro paragraph before any heading.", sections[0].Content)
	assert.Empty(t, sections[0].SectionPath)

	assert.Equal(t, "Maintenance Manual", sections[1].Title)
	assert.Equal(t, []string{"Maintenance Manual"}, sections[1].SectionPath)

	assert.Equal(t, "Torque Wrenches", sections[3].Title)
	assert.Equal(t, []string{"Maintenance Manual", "Tooling", "Torque Wrenches"}, sections[3].SectionPath)

	// Sibling H2 pops the H3 off the path.
	assert.Equal(t, "Records", sections[4].Title)
	assert.Equal(t, []string{"Maintenance Manual", "Records"}, sections[4].SectionPath)

	for i, s := range sections {
		assert.Equal(t, i, s.Index)
	}
}

func TestExtractMarkdownSkipsEmptySections(t *testing.T) {
	content := "# Empty Chapter\n\n## Filled\n\nbody text\n"
	sections := ExtractSections("doc.md", content)
	require.Len(t, sections, 1)
	assert.Equal(t, "Filled", sections[0].Title)
	assert.Equal(t, "body text", sections[0].Content)
}

func TestExtractPlainTextParagraphs(t *testing.T) {
	content := "first paragraph\nstill first\n\n\nsecond paragraph\n"
	sections := ExtractSections("notes.txt", content)
	require.Len(t, sections, 2)
	assert.Equal(t, "first paragraph\nstill first", sections[0].Content)
	assert.Equal(t, "second paragraph", sections[1].Content)
	assert.Empty(t, sections[0].SectionPath)
}

func TestExtractEmptyContent(t *testing.T) {
	assert.Empty(t, ExtractSections("a.md", ""))
	assert.Empty(t, ExtractSections("a.txt", "\n\n\n"))
}
