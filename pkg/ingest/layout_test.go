package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regsentry/regsentry/pkg/models"
)

func TestSaveUploadLayout(t *testing.T) {
	layout := NewLayout(t.TempDir())
	require.NoError(t, layout.Ensure())

	content := []byte("# Manual\n\nbody\n")
	path, err := layout.SaveUpload("manual.MD", content)
	require.NoError(t, err)

	sum := sha256.Sum256(content)
	now := time.Now()
	want := filepath.Join(layout.UploadsDir(),
		fmt.Sprintf("%04d", now.Year()),
		fmt.Sprintf("%02d", now.Month()),
		fmt.Sprintf("%02d", now.Day()),
		hex.EncodeToString(sum[:])+".md")
	assert.Equal(t, want, path)

	// Same content stores once and returns the same path.
	again, err := layout.SaveUpload("renamed.md", content)
	require.NoError(t, err)
	assert.Equal(t, path, again)
}

func TestExtractionCacheRoundTrip(t *testing.T) {
	layout := NewLayout(t.TempDir())

	_, ok := layout.LoadExtraction("doc-1")
	assert.False(t, ok)

	sections := []models.Section{
		{Index: 0, Title: "Scope", Content: "text", SectionPath: []string{"Scope"}},
	}
	require.NoError(t, layout.SaveExtraction("doc-1", sections))

	got, ok := layout.LoadExtraction("doc-1")
	require.True(t, ok)
	assert.Equal(t, sections, got)
}
