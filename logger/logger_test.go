package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{name: "Empty", input: "", expected: slog.LevelInfo},
		{name: "Debug", input: "debug", expected: slog.LevelDebug},
		{name: "UpperCaseWarn", input: "WARN", expected: slog.LevelWarn},
		{name: "Padded", input: " error ", expected: slog.LevelError},
		{name: "Unknown", input: "verbose", expected: slog.LevelInfo},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			assert.Equal(testCase.expected, parseLevel(testCase.input))
		})
	}
}
