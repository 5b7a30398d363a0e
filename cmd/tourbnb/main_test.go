package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbnb/catalog"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()

	return out.String(), err
}

func TestSolve_Flags(t *testing.T) {
	out, err := run(t, "", "solve", "--cities", "5", "--workers", "2", "--verbose=false", "--verify")
	require.NoError(t, err)
	require.Contains(t, out, "Cost: 19")
	require.Contains(t, out, "Route: A → C → B → E → D → A")
	require.Contains(t, out, "Held–Karp: 19 (ok)")
	require.NotContains(t, out, "Popped node")
}

func TestSolve_VerboseFromCatalog(t *testing.T) {
	out, err := run(t, "", "solve", "-n", "5", "--tables=false")
	require.NoError(t, err)
	require.Contains(t, out, "Popped node [0, 0]")
	require.Contains(t, out, "Best route obtained: 19")
	require.NotContains(t, out, "~#1")
}

func TestSolve_Prompt(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	e, err := c.Lookup(7)
	require.NoError(t, err)

	out, err := run(t, "eight\n8\n7\n", "solve", "--verify")
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(out, "Enter the number of cities"))
	require.Contains(t, out, "not a number")
	require.Contains(t, out, "(ok)")
	require.Contains(t, out, e.Name)
}

func TestSolve_PromptEOF(t *testing.T) {
	_, err := run(t, "", "solve")
	require.Error(t, err)
}

func TestSolve_UnknownCities(t *testing.T) {
	_, err := run(t, "", "solve", "--cities", "12")
	require.ErrorIs(t, err, catalog.ErrUnknownCities)
}

func TestSolve_BadWorkers(t *testing.T) {
	_, err := run(t, "", "solve", "--cities", "5", "--workers", "0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "worker count")
}

func TestSolve_CatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
instances:
  - cities: 4
    name: square
    labels: [N, E, S, W]
    matrix:
      - [0, 1, 2, 1]
      - [1, 0, 1, 2]
      - [2, 1, 0, 1]
      - [1, 2, 1, 0]
`), 0o600))

	out, err := run(t, "", "solve", "--catalog", path, "--cities", "4")
	require.NoError(t, err)
	require.Contains(t, out, "Cost: 4")
	require.Contains(t, out, "Route: N → E → S → W → N")
}

func TestList(t *testing.T) {
	out, err := run(t, "", "list")
	require.NoError(t, err)
	for _, name := range []string{"classic-5", "classic-6", "classic-7"} {
		require.Contains(t, out, name)
	}
}

func TestBadLogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "--log-level", "loud"})
	require.Error(t, cmd.Execute())
}
