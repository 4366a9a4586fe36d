package ingest

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/regsentry/regsentry/pkg/models"
)

var headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*#*\s*$`)

// ExtractSections splits document text into ordered sections. Markdown files
// split on ATX headings with the full heading path tracked per section;
// everything else splits on blank-line paragraph groups. This is the only
// extraction format carried; PDF and DOCX are out of scope.
func ExtractSections(filename, content string) []models.Section {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return extractMarkdown(content)
	default:
		return extractPlainText(content)
	}
}

// extractMarkdown walks the lines once, maintaining a heading stack so each
// section carries its full path ("chapter > section > subsection"). Text
// before the first heading becomes an untitled preamble section.
func extractMarkdown(content string) []models.Section {
	var (
		sections []models.Section
		path     []string // heading text per level, index = level-1
		title    string
		body     []string
	)

	flush := func() {
		text := strings.TrimSpace(strings.Join(body, "\n"))
		body = body[:0]
		if text == "" {
			return
		}
		sections = append(sections, models.Section{
			Index:       len(sections),
			Title:       title,
			Content:     text,
			SectionPath: append([]string(nil), path...),
		})
	}

	for _, line := range strings.Split(content, "\n") {
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			body = append(body, line)
			continue
		}
		flush()

		level := len(m[1])
		title = strings.TrimSpace(m[2])
		if level <= len(path) {
			path = path[:level-1]
		}
		for len(path) < level-1 {
			path = append(path, "")
		}
		path = append(path, title)
	}
	flush()

	return sections
}

// extractPlainText groups consecutive non-blank lines into paragraph
// sections with no heading information.
func extractPlainText(content string) []models.Section {
	var (
		sections []models.Section
		body     []string
	)

	flush := func() {
		text := strings.TrimSpace(strings.Join(body, "\n"))
		body = body[:0]
		if text == "" {
			return
		}
		sections = append(sections, models.Section{
			Index:   len(sections),
			Content: text,
		})
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}
