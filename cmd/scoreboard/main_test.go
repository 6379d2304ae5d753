package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestPrintWithFixtureProvider(t *testing.T) {
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("FAVORITE_TEAM_FILE", filepath.Join(t.TempDir(), "favorite_team.txt"))
	t.Setenv("FAVORITE_TEAM_DEFAULT", "NYR")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"print", "--no-color", "--env-file", filepath.Join(t.TempDir(), "missing.env")})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Blues 2 @ Rangers 1 | LIVE P2 05:13")
}

func TestPrintTeamWithoutGame(t *testing.T) {
	t.Setenv("PROVIDER", "fixture")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"print", "--team", "sea", "--no-color", "--env-file", filepath.Join(t.TempDir(), "missing.env")})

	require.NoError(t, root.Execute())
	assert.Equal(t, "No KRAKEN game right now.\n", out.String())
}

func TestPrintNormalizesTeamFlag(t *testing.T) {
	t.Setenv("PROVIDER", "fixture")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"print", "--team", " nyr ", "--no-color", "--env-file", filepath.Join(t.TempDir(), "missing.env")})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Blues 2 @ Rangers 1 | LIVE P2 05:13")
}

func TestPrintRejectsInvalidTeam(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"print", "--team", "blues", "--env-file", filepath.Join(t.TempDir(), "missing.env")})
	require.Error(t, root.Execute())

	root = newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"print", "--team", "zzz", "--env-file", filepath.Join(t.TempDir(), "missing.env")})
	require.Error(t, root.Execute())
}
