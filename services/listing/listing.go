package listing

import (
	"github.com/meghashyamc/finder/logger"
	"github.com/spf13/afero"
)

type Service struct {
	logger     logger.Logger
	enumerator *Enumerator
}

func New(logger logger.Logger, fs afero.Fs) *Service {
	return &Service{
		logger:     logger,
		enumerator: NewEnumerator(logger, fs),
	}
}

// List returns the files and folders directly under path, ranked against query.
// With an empty query every child is returned in enumeration order.
func (s *Service) List(path string, query string) ([]Entry, error) {
	return s.list(path, query, true)
}

// ListFolders is List restricted to folders.
func (s *Service) ListFolders(path string, query string) ([]Entry, error) {
	return s.list(path, query, false)
}

func (s *Service) list(path string, query string, includeFiles bool) ([]Entry, error) {
	entries, err := s.enumerator.Enumerate(path, includeFiles)
	if err != nil {
		return nil, err
	}

	scorer := NewScorer(query)
	scored := make([]ScoredEntry, len(entries))
	for i, entry := range entries {
		relevance, ok := scorer.Score(entry.Name)
		scored[i] = ScoredEntry{Entry: entry.withRelevance(relevance), Matched: ok}
	}

	results := Assemble(scored, query)
	s.logger.Debug("listed directory", "path", path, "query", query, "children", len(entries), "results", len(results))

	return results, nil
}
