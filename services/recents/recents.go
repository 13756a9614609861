package recents

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/meghashyamc/finder/db/kvdb"
	"github.com/meghashyamc/finder/logger"
)

// Store is the subset of the key-value database the recents service needs.
type Store interface {
	Update(bucket string, key string, fn func(current string, found bool) (string, error)) error
	Delete(bucket string, key string) error
	GetAll(bucket string) (map[string]string, error)
	Clear(bucket string) error
}

// Directory is a directory that was listed without a query.
type Directory struct {
	Path        string    `json:"path"`
	Visits      int       `json:"visits"`
	LastVisited time.Time `json:"last_visited"`
}

type Service struct {
	logger     logger.Logger
	store      Store
	maxEntries int
	now        func() time.Time
}

func New(logger logger.Logger, store Store, maxEntries int) *Service {
	return &Service{
		logger:     logger,
		store:      store,
		maxEntries: maxEntries,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Visit records one visit of path and evicts the least recently visited directories
// beyond the configured maximum.
func (s *Service) Visit(path string) error {
	err := s.store.Update(kvdb.RecentsBucket, path, func(current string, found bool) (string, error) {
		directory := Directory{Path: path}
		if found {
			if err := json.Unmarshal([]byte(current), &directory); err != nil {
				s.logger.Warn("discarding unreadable recents record", "path", path, "err", err.Error())
				directory = Directory{Path: path}
			}
		}

		directory.Visits++
		directory.LastVisited = s.now()

		data, err := json.Marshal(directory)
		if err != nil {
			return "", fmt.Errorf("failed to marshal recents record for %s: %w", path, err)
		}
		return string(data), nil
	})
	if err != nil {
		return fmt.Errorf("failed to save recents record for %s: %w", path, err)
	}

	return s.evict()
}

// List returns at most limit directories, most recently visited first.
// A limit of zero or less returns all of them.
func (s *Service) List(limit int) ([]Directory, error) {
	directories, err := s.all()
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(directories) > limit {
		directories = directories[:limit]
	}
	return directories, nil
}

func (s *Service) Clear() error {
	if err := s.store.Clear(kvdb.RecentsBucket); err != nil {
		return fmt.Errorf("failed to clear recents: %w", err)
	}
	return nil
}

func (s *Service) all() ([]Directory, error) {
	values, err := s.store.GetAll(kvdb.RecentsBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to read recents: %w", err)
	}

	directories := make([]Directory, 0, len(values))
	for path, value := range values {
		var directory Directory
		if err := json.Unmarshal([]byte(value), &directory); err != nil {
			s.logger.Warn("skipping unreadable recents record", "path", path, "err", err.Error())
			continue
		}
		directory.Path = path
		directories = append(directories, directory)
	}

	slices.SortFunc(directories, func(a, b Directory) int {
		if c := b.LastVisited.Compare(a.LastVisited); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})

	return directories, nil
}

func (s *Service) evict() error {
	if s.maxEntries <= 0 {
		return nil
	}

	directories, err := s.all()
	if err != nil {
		return err
	}

	for _, directory := range directories[min(s.maxEntries, len(directories)):] {
		if err := s.store.Delete(kvdb.RecentsBucket, directory.Path); err != nil {
			s.logger.Error("failed to evict recents record", "path", directory.Path, "err", err.Error())
			return fmt.Errorf("failed to evict recents record for %s: %w", directory.Path, err)
		}
		s.logger.Debug("evicted recents record", "path", directory.Path)
	}

	return nil
}
