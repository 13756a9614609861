package listing

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/meghashyamc/finder/logger"
	"github.com/spf13/afero"
)

type Enumerator struct {
	fs     afero.Fs
	logger logger.Logger
}

func NewEnumerator(logger logger.Logger, fs afero.Fs) *Enumerator {
	return &Enumerator{fs: fs, logger: logger}
}

// Enumerate lists the immediate children of dirPath in the order the filesystem
// reports them. When includeFiles is false only folders are returned.
//
// Children that cannot be described are dropped; only a failure on dirPath itself
// is returned as an error.
func (e *Enumerator) Enumerate(dirPath string, includeFiles bool) ([]Entry, error) {
	dir, err := e.fs.Open(dirPath)
	if err != nil {
		e.logger.Warn("could not open directory", "path", dirPath, "err", err.Error())
		return nil, &RootUnavailableError{Path: dirPath, Err: err}
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		e.logger.Warn("could not read directory", "path", dirPath, "err", err.Error())
		return nil, &RootUnavailableError{Path: dirPath, Err: err}
	}

	entries := make([]Entry, 0, len(names))
	for _, rawName := range names {
		entry, ok := e.describe(filepath.Join(dirPath, rawName), rawName)
		if !ok {
			continue
		}
		if entry.Kind() == KindFile && !includeFiles {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (e *Enumerator) describe(childPath string, rawName string) (Entry, bool) {
	entry := Entry{
		Path: strings.ToValidUTF8(childPath, string(utf8.RuneError)),
		Name: rawName,
	}
	if !utf8.ValidString(rawName) {
		e.logger.Debug("child name is not valid UTF-8", "path", entry.Path)
		entry.Name = ""
	}

	info, err := e.fs.Stat(childPath)
	if err != nil {
		if e.existsWithoutTarget(childPath) {
			e.logger.Debug("child target cannot be stat'ed, listing without metadata", "path", entry.Path, "err", err.Error())
			entry.Object = File{}
			return entry, true
		}
		e.logger.Debug("skipping child that cannot be stat'ed", "path", entry.Path, "err", err.Error())
		return Entry{}, false
	}

	entry.Modified = unixSeconds(info.ModTime())
	if info.IsDir() {
		entry.Object = Folder{}
		return entry, true
	}

	// Sockets, pipes and devices are listed as files without a size.
	if !info.Mode().IsRegular() {
		entry.Object = File{}
		return entry, true
	}

	size := info.Size()
	entry.Object = File{Size: &size}
	return entry, true
}

// existsWithoutTarget reports whether the child itself is visible even though following
// it failed, as with a dangling symlink.
func (e *Enumerator) existsWithoutTarget(childPath string) bool {
	lstater, ok := e.fs.(afero.Lstater)
	if !ok {
		return false
	}
	info, lstatCalled, err := lstater.LstatIfPossible(childPath)
	return lstatCalled && err == nil && info.Mode()&os.ModeSymlink != 0
}

func unixSeconds(t time.Time) *string {
	if t.IsZero() || t.Before(time.Unix(0, 0)) {
		return nil
	}
	seconds := strconv.FormatInt(t.Unix(), 10)
	return &seconds
}
