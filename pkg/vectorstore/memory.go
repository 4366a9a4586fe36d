package vectorstore

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

// MemoryStore is a brute-force in-memory Store for tests and local runs
// without PostgreSQL. Collections spring into existence on first Upsert.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Record
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Record)}
}

var _ Store = (*MemoryStore)(nil)

// Upsert inserts or replaces records by id.
func (s *MemoryStore) Upsert(_ context.Context, collection string, records []Record) error {
	if err := validCollection(collection); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.collections[collection]
	dim := 0
	if len(existing) > 0 {
		dim = len(existing[0].Embedding)
	} else {
		dim = len(records[0].Embedding)
	}
	for _, r := range records {
		if len(r.Embedding) != dim {
			return &DimensionError{Collection: collection, Want: dim, Got: len(r.Embedding)}
		}
	}

	for _, r := range records {
		replaced := false
		for i := range existing {
			if existing[i].ID == r.ID {
				existing[i] = r
				replaced = true
				break
			}
		}
		if !replaced {
			existing = append(existing, r)
		}
	}
	s.collections[collection] = existing
	return nil
}

// Query returns the topK nearest records by exact L2 distance.
func (s *MemoryStore) Query(_ context.Context, collection string, vector []float32, topK int, filter Filter) ([]Match, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}
	if topK <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.collections[collection]
	if !ok || len(records) == 0 {
		return nil, nil
	}
	if len(vector) != len(records[0].Embedding) {
		return nil, &DimensionError{
			Collection: collection,
			Want:       len(records[0].Embedding),
			Got:        len(vector),
		}
	}

	var matches []Match
	for _, r := range records {
		if !matchesFilter(r.Metadata, filter) {
			continue
		}
		matches = append(matches, Match{
			ID:       r.ID,
			Text:     r.Text,
			Metadata: r.Metadata,
			Distance: l2Distance(vector, r.Embedding),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// Peek returns the collection's dimension, or 0 when empty or missing.
func (s *MemoryStore) Peek(_ context.Context, collection string) (int, error) {
	if err := validCollection(collection); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.collections[collection]
	if len(records) == 0 {
		return 0, nil
	}
	return len(records[0].Embedding), nil
}

func matchesFilter(metadata map[string]any, filter Filter) bool {
	for key, want := range filter {
		got, ok := metadata[key]
		if !ok || fmt.Sprint(got) != want {
			return false
		}
	}
	return true
}

func l2Distance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
