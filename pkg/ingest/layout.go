// Package ingest handles document intake: upload persistence, section
// extraction from Markdown and plain text, and the background
// chunk-embed-index pipeline that makes a document auditable.
package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/regsentry/regsentry/pkg/models"
)

// Layout is the persisted-state filesystem layout under the data root.
type Layout struct {
	root string
}

// NewLayout creates a Layout rooted at dataRoot.
func NewLayout(dataRoot string) *Layout {
	return &Layout{root: dataRoot}
}

// Ensure creates the layout directories.
func (l *Layout) Ensure() error {
	for _, dir := range []string{
		l.UploadsDir(),
		l.ProcessedDir(),
		l.EmbeddingCacheDir(),
		filepath.Join(l.root, "logs"),
		filepath.Join(l.root, "reports"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}
	return nil
}

// UploadsDir is the root of the date-partitioned original-file store.
func (l *Layout) UploadsDir() string {
	return filepath.Join(l.root, "uploads")
}

// ProcessedDir is the root of per-document cached extractions.
func (l *Layout) ProcessedDir() string {
	return filepath.Join(l.root, "processed")
}

// EmbeddingCacheDir is where the per-text embedding cache lives.
func (l *Layout) EmbeddingCacheDir() string {
	return filepath.Join(l.root, "cache", "embeddings")
}

// SaveUpload persists an original uploaded file under
// uploads/YYYY/MM/DD/<sha256>.<ext> and returns the stored path. Re-uploading
// identical content on the same day is a no-op that returns the same path.
func (l *Layout) SaveUpload(filename string, content []byte) (string, error) {
	sum := sha256.Sum256(content)
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".txt"
	}

	now := time.Now()
	dir := filepath.Join(l.UploadsDir(),
		fmt.Sprintf("%04d", now.Year()),
		fmt.Sprintf("%02d", now.Month()),
		fmt.Sprintf("%02d", now.Day()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(dir, hex.EncodeToString(sum[:])+ext)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return path, nil
}

// extractionPath is the cached-extraction location for one document.
func (l *Layout) extractionPath(docExternalID string) string {
	return filepath.Join(l.ProcessedDir(), docExternalID, "extracted.json")
}

// LoadExtraction returns the cached section extraction for a document, or
// ok=false when none exists or the cache file is unreadable.
func (l *Layout) LoadExtraction(docExternalID string) ([]models.Section, bool) {
	data, err := os.ReadFile(l.extractionPath(docExternalID))
	if err != nil {
		return nil, false
	}
	var sections []models.Section
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, false
	}
	return sections, true
}

// SaveExtraction caches the section extraction for a document.
func (l *Layout) SaveExtraction(docExternalID string, sections []models.Section) error {
	path := l.extractionPath(docExternalID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create extraction directory: %w", err)
	}
	data, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode extraction: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write extraction: %w", err)
	}
	return os.Rename(tmp, path)
}
