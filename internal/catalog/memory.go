package catalog

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryStore keeps the catalog in process memory. It backs local
// development when no database is configured, and the unit tests. Lookup
// semantics mirror the MongoDB store: unknown and malformed identifiers
// are both ErrNotFound.
type memoryStore struct {
	mu       sync.RWMutex
	products []Product // insertion order, so listings are deterministic
	byID     map[string]int
}

var _ Store = (*memoryStore)(nil)

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{byID: make(map[string]int)}
}

func (s *memoryStore) FindByID(ctx context.Context, id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	p := s.products[i]
	return &p, nil
}

func (s *memoryStore) FindByCategory(ctx context.Context, category string) ([]Product, error) {
	return s.List(ctx, category, "")
}

func (s *memoryStore) Search(ctx context.Context, query string) ([]Product, error) {
	return s.List(ctx, "", query)
}

func (s *memoryStore) List(ctx context.Context, category, query string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *memoryStore) Categories(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.products))
	cats := make([]string, 0)
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		cats = append(cats, p.Category)
	}
	return cats, nil
}

func (s *memoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.products)), nil
}

func (s *memoryStore) InsertMany(ctx context.Context, products []Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range products {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		s.byID[p.ID.Hex()] = len(s.products)
		s.products = append(s.products, p)
	}
	return nil
}

// matchesQuery reports whether the lowercased query is a substring of the
// product's name, description or any of its tags.
func matchesQuery(p Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
