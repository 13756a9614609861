package items

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/meghashyamc/finder/logger"
	"github.com/spf13/afero"
)

var (
	ErrInvalidName  = errors.New("invalid name")
	ErrCopyIntoSelf = errors.New("cannot copy a folder into itself")
)

type Service struct {
	logger logger.Logger
	fs     afero.Fs
}

func New(logger logger.Logger, fs afero.Fs) *Service {
	return &Service{logger: logger, fs: fs}
}

// CreateFolder creates dir/name and returns its path.
func (s *Service) CreateFolder(dir string, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := s.fs.Mkdir(path, 0755); err != nil {
		s.logger.Warn("could not create folder", "path", path, "err", err.Error())
		return "", fmt.Errorf("could not create folder: %w", err)
	}

	return path, nil
}

// CreateFile creates an empty dir/name and returns its path. An existing file is
// left untouched and reported as fs.ErrExist.
func (s *Service) CreateFile(dir string, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	file, err := s.fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		s.logger.Warn("could not create file", "path", path, "err", err.Error())
		return "", fmt.Errorf("could not create file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("could not create file: %w", err)
	}

	return path, nil
}

// Rename gives path the new base name newName within the same parent folder.
func (s *Service) Rename(path string, newName string) (string, error) {
	if err := ValidateName(newName); err != nil {
		return "", err
	}

	newPath := filepath.Join(filepath.Dir(path), newName)
	if newPath == path {
		return path, nil
	}
	if err := s.rename(path, newPath); err != nil {
		return "", fmt.Errorf("could not rename: %w", err)
	}

	return newPath, nil
}

// Delete removes a file, or a folder with everything under it.
func (s *Service) Delete(path string) error {
	info, err := s.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("could not delete: %w", err)
	}

	if info.IsDir() {
		err = s.fs.RemoveAll(path)
	} else {
		err = s.fs.Remove(path)
	}
	if err != nil {
		s.logger.Warn("could not delete", "path", path, "err", err.Error())
		return fmt.Errorf("could not delete: %w", err)
	}

	return nil
}

// Move moves source into the folder destination, keeping its name.
func (s *Service) Move(source string, destination string) (string, error) {
	target := filepath.Join(destination, filepath.Base(source))
	if err := s.rename(source, target); err != nil {
		return "", fmt.Errorf("could not move: %w", err)
	}

	return target, nil
}

// Copy copies source into the folder destination, keeping its name. Folders are
// copied recursively.
func (s *Service) Copy(source string, destination string) (string, error) {
	info, err := s.fs.Stat(source)
	if err != nil {
		return "", fmt.Errorf("could not copy: %w", err)
	}

	target := filepath.Join(destination, filepath.Base(source))
	if err := s.ensureAbsent(target); err != nil {
		return "", fmt.Errorf("could not copy: %w", err)
	}

	if info.IsDir() {
		if isWithin(target, source) {
			return "", ErrCopyIntoSelf
		}
		err = s.copyDir(source, target)
	} else {
		err = s.copyFile(source, target, info.Mode())
	}
	if err != nil {
		s.logger.Warn("could not copy", "source", source, "target", target, "err", err.Error())
		return "", fmt.Errorf("could not copy: %w", err)
	}

	return target, nil
}

func (s *Service) rename(from string, to string) error {
	if _, err := s.fs.Stat(from); err != nil {
		return err
	}
	if err := s.ensureAbsent(to); err != nil {
		return err
	}
	if err := s.fs.Rename(from, to); err != nil {
		s.logger.Warn("could not rename", "from", from, "to", to, "err", err.Error())
		return err
	}
	return nil
}

func (s *Service) ensureAbsent(path string) error {
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return err
	}
	if exists {
		return &fs.PathError{Op: "create", Path: path, Err: fs.ErrExist}
	}
	return nil
}

func (s *Service) copyDir(source string, target string) error {
	info, err := s.fs.Stat(source)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(target, info.Mode().Perm()); err != nil {
		return err
	}

	children, err := afero.ReadDir(s.fs, source)
	if err != nil {
		return err
	}
	for _, child := range children {
		from := filepath.Join(source, child.Name())
		to := filepath.Join(target, child.Name())
		if child.IsDir() {
			err = s.copyDir(from, to)
		} else {
			err = s.copyFile(from, to, child.Mode())
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) copyFile(source string, target string, mode fs.FileMode) error {
	in, err := s.fs.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := s.fs.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode.Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// ValidateName rejects names that would escape the parent folder or that the
// filesystem cannot hold.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	case strings.ContainsAny(name, "/\x00"):
		return fmt.Errorf("%w: %q contains a path separator or null byte", ErrInvalidName, name)
	}
	return nil
}

func isWithin(path string, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
