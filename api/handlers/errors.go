package handlers

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/meghashyamc/finder/services/items"
	"github.com/meghashyamc/finder/services/listing"
)

// statusForError maps filesystem and service errors to the HTTP status reported to clients.
func statusForError(err error) int {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, fs.ErrPermission):
		return http.StatusForbidden
	case errors.Is(err, fs.ErrExist):
		return http.StatusConflict
	case errors.Is(err, items.ErrInvalidName),
		errors.Is(err, items.ErrCopyIntoSelf),
		errors.Is(err, listing.ErrRootUnavailable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
