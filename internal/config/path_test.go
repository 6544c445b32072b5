package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("TALLY_TEST_DIR", "/srv/tally")

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "empty stays empty", path: "", expected: ""},
		{name: "absolute untouched", path: "/var/lib/tally", expected: "/var/lib/tally"},
		{name: "relative untouched", path: "data", expected: "data"},
		{name: "bare tilde", path: "~", expected: home},
		{name: "tilde prefix", path: "~/finance", expected: filepath.Join(home, "finance")},
		{name: "env var", path: "$TALLY_TEST_DIR/data", expected: "/srv/tally/data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.path))
		})
	}
}

func TestDataDir(t *testing.T) {
	assert.Equal(t, ".", DataDir(""))
	assert.Equal(t, "/var/lib/tally", DataDir("/var/lib/tally"))
}
