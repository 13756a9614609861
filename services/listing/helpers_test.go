package listing

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/meghashyamc/finder/logger"
	"github.com/spf13/afero"
)

func newTestLogger() logger.Logger {

	opts := &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}

// orderedFs reports directory children in a fixed order, standing in for the
// unspecified order of a real filesystem.
type orderedFs struct {
	afero.Fs
	order []string
}

func (o orderedFs) Open(name string) (afero.File, error) {
	file, err := o.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return orderedDir{File: file, order: o.order}, nil
}

type orderedDir struct {
	afero.File
	order []string
}

func (d orderedDir) Readdirnames(n int) ([]string, error) {
	if _, err := d.File.Readdirnames(n); err != nil {
		return nil, err
	}
	return d.order, nil
}

// failingStatFs fails Stat for children with the given base name.
type failingStatFs struct {
	afero.Fs
	failing string
}

func (f failingStatFs) Stat(name string) (os.FileInfo, error) {
	if filepath.Base(name) == f.failing {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Stat(name)
}

func entryNames(entries []Entry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names
}
