package mem

import (
	"regexp"
	"sync"
)

// VisitedPageStore tracks which normalized page paths each user has
// already seen, to gate first-visit tutorial prompts. Append-only,
// last-writer-wins; single store per process.
type VisitedPageStore interface {
	// Visit records the path for the user and reports whether this was
	// the first visit to it.
	Visit(userID, path string) bool

	// Visited returns the user's visited paths in insertion order.
	Visited(userID string) []string
}

var uuidSegment = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// NormalizePath collapses UUID-shaped path segments to ":id" so per-record
// detail pages don't grow the store without bound.
func NormalizePath(path string) string {
	out := make([]byte, 0, len(path))
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '/' {
			seg := path[start:i]
			if uuidSegment.MatchString(seg) {
				out = append(out, ":id"...)
			} else {
				out = append(out, seg...)
			}
			if i < len(path) {
				out = append(out, '/')
			}
			start = i + 1
		}
	}
	return string(out)
}

type userPages struct {
	order []string
	seen  map[string]struct{}
}

type VisitedPages struct {
	mu   sync.RWMutex
	data map[string]*userPages
}

func NewVisitedPages() *VisitedPages {
	return &VisitedPages{
		data: make(map[string]*userPages),
	}
}

func (s *VisitedPages) Visit(userID, path string) bool {
	key := NormalizePath(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	pages, ok := s.data[userID]
	if !ok {
		pages = &userPages{seen: make(map[string]struct{})}
		s.data[userID] = pages
	}
	if _, visited := pages.seen[key]; visited {
		return false
	}
	pages.seen[key] = struct{}{}
	pages.order = append(pages.order, key)
	return true
}

func (s *VisitedPages) Visited(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pages, ok := s.data[userID]
	if !ok {
		return []string{}
	}
	out := make([]string, len(pages.order))
	copy(out, pages.order)
	return out
}
