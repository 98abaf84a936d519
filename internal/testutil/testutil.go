package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookshelf/internal/book"

	"github.com/stretchr/testify/require"
)

// Dune is the reference book used across package tests.
var Dune = book.Book{
	Title:    "Dune",
	Author:   "Frank Herbert",
	ISBN:     "0441013597",
	Quantity: 3,
}

// Books returns a small catalog worth of distinct books.
func Books() []book.Book {
	return []book.Book{
		Dune,
		{Title: "The Go Programming Language", Author: "Alan Donovan", ISBN: "978-0-13-419044-0", Quantity: 2},
		{Title: "The Practice of Programming", Author: "Brian Kernighan", ISBN: "978-0-13-468599-1", Quantity: 1},
		{Title: "Le Petit Prince", Author: "Antoine de Saint-Exupéry", ISBN: "978-2-07-061275-8", Quantity: 10},
	}
}

// WriteLines writes lines, each followed by a newline, to a backing file in dir
// and returns its path.
func WriteLines(t testing.TB, dir string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, "library_data.txt")
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644), "write %s", path)
	return path
}
