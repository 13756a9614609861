package listing

import "errors"

var ErrRootUnavailable = errors.New("directory cannot be listed")

// RootUnavailableError is returned when the directory being listed cannot be opened
// or read. Its message is the underlying OS error text.
type RootUnavailableError struct {
	Path string
	Err  error
}

func (e *RootUnavailableError) Error() string {
	return e.Err.Error()
}

func (e *RootUnavailableError) Unwrap() error {
	return e.Err
}

func (e *RootUnavailableError) Is(target error) bool {
	return target == ErrRootUnavailable
}
