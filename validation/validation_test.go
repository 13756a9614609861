package validation

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/meghashyamc/finder/logger"
	"github.com/stretchr/testify/require"
)

func newTestLogger() logger.Logger {

	opts := &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}

type listRequest struct {
	Path  string `form:"path" validate:"required,abs_path"`
	Query string `form:"query" validate:"max=10"`
}

type createRequest struct {
	Path string `json:"path" validate:"required,abs_path"`
	Name string `json:"name" validate:"valid_name"`
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name          string
		request       any
		expectedError string
	}{
		{name: "ValidList", request: listRequest{Path: "/home/user", Query: "doc"}},
		{name: "MissingPath", request: listRequest{}, expectedError: "missing required field 'path'"},
		{name: "RelativePath", request: listRequest{Path: "home/user"}, expectedError: "path must be an absolute path"},
		{name: "BlankPath", request: listRequest{Path: "   "}, expectedError: "path must be an absolute path"},
		{name: "NullBytePath", request: listRequest{Path: "/home/\x00user"}, expectedError: "path must be an absolute path"},
		{name: "QueryTooLong", request: listRequest{Path: "/", Query: strings.Repeat("a", 11)}, expectedError: "value or length of field 'query' is not in the expected range"},
		{name: "ValidCreate", request: createRequest{Path: "/tmp", Name: "untitled folder"}},
		{name: "NameWithSeparator", request: createRequest{Path: "/tmp", Name: "a/b"}, expectedError: "invalid name"},
		{name: "EmptyName", request: createRequest{Path: "/tmp", Name: ""}, expectedError: "invalid name"},
	}

	validator, err := New(newTestLogger())
	require.NoError(t, err)

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			err := validator.Validate(testCase.request)
			if testCase.expectedError == "" {
				assert.NoError(err)
				return
			}
			assert.EqualError(err, testCase.expectedError)
		})
	}
}
