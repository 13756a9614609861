package sidebar

import (
	"path/filepath"

	"github.com/meghashyamc/finder/logger"
	"github.com/spf13/afero"
)

const applicationsPath = "/Applications"

// Location is a well-known folder shown in the sidebar.
type Location struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type Service struct {
	logger  logger.Logger
	fs      afero.Fs
	homeDir string
}

func New(logger logger.Logger, fs afero.Fs, homeDir string) *Service {
	return &Service{logger: logger, fs: fs, homeDir: homeDir}
}

// Locations returns the fixed sidebar folders followed by the optional ones that
// exist on this machine. The fixed folders are returned whether or not they exist.
func (s *Service) Locations() []Location {
	locations := []Location{
		{Name: "Home", Path: s.homeDir},
		{Name: "Desktop", Path: filepath.Join(s.homeDir, "Desktop")},
		{Name: "Documents", Path: filepath.Join(s.homeDir, "Documents")},
		{Name: "Downloads", Path: filepath.Join(s.homeDir, "Downloads")},
		{Name: "Applications", Path: applicationsPath},
		{Name: "Music", Path: filepath.Join(s.homeDir, "Music")},
		{Name: "Pictures", Path: filepath.Join(s.homeDir, "Pictures")},
		{Name: "Movies", Path: filepath.Join(s.homeDir, "Movies")},
	}

	optional := []Location{
		{Name: "Dropbox", Path: filepath.Join(s.homeDir, "Dropbox")},
		{Name: "iCloud Drive", Path: filepath.Join(s.homeDir, "Library", "Mobile Documents", "com~apple~CloudDocs")},
	}
	for _, location := range optional {
		exists, err := afero.Exists(s.fs, location.Path)
		if err != nil {
			s.logger.Warn("could not check sidebar location", "path", location.Path, "err", err.Error())
			continue
		}
		if exists {
			locations = append(locations, location)
		}
	}

	return locations
}
