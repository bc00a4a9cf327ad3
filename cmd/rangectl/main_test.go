package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel(t *testing.T) {
	cases := map[string]struct {
		name     string
		verbose  bool
		expected slog.Level
		err      bool
	}{
		"Info":           {name: "info", expected: slog.LevelInfo},
		"Warn":           {name: "WARN", expected: slog.LevelWarn},
		"VerboseWins":    {name: "error", verbose: true, expected: slog.LevelDebug},
		"Unknown":        {name: "loud", err: true},
		"UnknownVerbose": {name: "loud", verbose: true, expected: slog.LevelDebug},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			level, err := logLevel(tc.name, tc.verbose)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}
}
