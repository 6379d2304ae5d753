package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	assert.True(t, boolEnvOrDefault("BOOL_TEST", true))

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true},
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		assert.Equal(t, tc.expected, boolEnvOrDefault("BOOL_TEST", true), "value %q", tc.val)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("DUR_TEST", "45s")
	assert.Equal(t, 45*time.Second, durationEnvOrDefault("DUR_TEST", time.Second))

	t.Setenv("DUR_TEST", "-1s")
	assert.Equal(t, time.Second, durationEnvOrDefault("DUR_TEST", time.Second))

	t.Setenv("DUR_TEST", "soon")
	assert.Equal(t, time.Second, durationEnvOrDefault("DUR_TEST", time.Second))
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestLoadDotEnvPopulatesUnsetVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SCOREBOARD_DOTENV_TEST=from-file\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("SCOREBOARD_DOTENV_TEST") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("SCOREBOARD_DOTENV_TEST"))
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("INT_TEST", "12")
	assert.Equal(t, 12, intEnvOrDefault("INT_TEST", 4))

	t.Setenv("INT_TEST", "0")
	assert.Equal(t, 4, intEnvOrDefault("INT_TEST", 4))

	t.Setenv("INT_TEST", "lots")
	assert.Equal(t, 4, intEnvOrDefault("INT_TEST", 4))
}
