package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookshelf/internal/store"
	"bookshelf/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LIBRARY_DATA_FILE", "")
	t.Setenv("LIBRARY_ATOMIC_SAVE", "")
	t.Setenv("LIBRARY_VERBOSE", "")

	cfg := loadConfig()
	assert.Equal(t, store.DefaultPath, cfg.DataFile)
	assert.False(t, cfg.AtomicSave)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("LIBRARY_DATA_FILE", "/custom/books.txt")
	t.Setenv("LIBRARY_ATOMIC_SAVE", "true")
	t.Setenv("LIBRARY_VERBOSE", "not-a-bool")

	cfg := loadConfig()
	assert.Equal(t, "/custom/books.txt", cfg.DataFile)
	assert.True(t, cfg.AtomicSave)
	assert.False(t, cfg.Verbose)
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, ".env")

	if err := os.WriteFile(p, []byte("LIBRARY_DATA_FILE=from_file\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("LIBRARY_DATA_FILE", "from_env")
	t.Chdir(tmp)

	loadEnvFiles()

	if got := os.Getenv("LIBRARY_DATA_FILE"); got != "from_env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
}

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(config{DataFile: store.DefaultPath})
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_InteractiveSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.txt")

	out, _, err := run(t, "1\nDune\nFrank Herbert\n0441013597\n3\n4\n", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Starting with an empty library.")
	assert.Contains(t, out, "Goodbye!")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Dune|Frank Herbert|0441013597|3\n", string(data))

	out, _, err = run(t, "4\n", "--file", path, "--atomic")
	require.NoError(t, err)
	assert.Contains(t, out, "1 books loaded from file.")
}

func TestListCmd(t *testing.T) {
	path := testutil.WriteLines(t, t.TempDir(),
		"Dune|Frank Herbert|0441013597|3",
		"broken line",
		"Emma|Jane Austen|emma-1|2",
	)

	out, errOut, err := run(t, "", "list", "--file", path)
	require.NoError(t, err)
	assert.Equal(t,
		"| Title: Dune | Author: Frank Herbert | ISBN: 0441013597 | Quantity: 3 |\n"+
			"| Title: Emma | Author: Jane Austen | ISBN: emma-1 | Quantity: 2 |\n",
		out)
	assert.Equal(t, 1, strings.Count(errOut, "warning:"))
	assert.Contains(t, errOut, "skipped line 2")
	assert.Contains(t, errOut, "malformed record line")
}

func TestSearchCmd_WarnsSkippedLines(t *testing.T) {
	path := testutil.WriteLines(t, t.TempDir(),
		"Dune|Frank Herbert|0441013597|3",
		"Dune again|Frank Herbert|0441013597|1",
		"Emma|Jane Austen|emma-1|x",
	)

	out, errOut, err := run(t, "", "search", "--file", path, "--by", "author", "Herbert")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "| Title:"))
	assert.Contains(t, errOut, "warning: skipped line 2")
	assert.Contains(t, errOut, "already exists")
	assert.Contains(t, errOut, "warning: skipped line 3")
}

func TestSearchCmd(t *testing.T) {
	path := testutil.WriteLines(t, t.TempDir(),
		"Dune|Frank Herbert|0441013597|3",
		"Emma|Jane Austen|emma-1|2",
	)

	out, _, err := run(t, "", "search", "--file", path, "--by", "author", "Austen")
	require.NoError(t, err)
	assert.Contains(t, out, "ISBN: emma-1")
	assert.NotContains(t, out, "Dune")

	out, _, err = run(t, "", "search", "--file", path, "--by", "isbn", "0441")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, _, err = run(t, "", "search", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "| Title:"))

	_, _, err = run(t, "", "search", "--file", path, "--by", "publisher", "x")
	assert.Error(t, err)
}

func TestOpenLibrary_UnreadableFile(t *testing.T) {
	_, _, err := run(t, "", "list", "--file", t.TempDir())
	assert.ErrorIs(t, err, store.ErrIO)
}
