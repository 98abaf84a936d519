package query

import (
	"errors"
	"strconv"
	"strings"

	"bookshelf/internal/book"
	"bookshelf/internal/catalog"
)

// ErrUnknownMode is returned for a search selector outside 1..3.
var ErrUnknownMode = errors.New("unknown search mode")

// Mode selects which field a search matches against.
type Mode int

const (
	ByTitle Mode = iota + 1
	ByAuthor
	ByISBN
)

func (m Mode) String() string {
	switch m {
	case ByTitle:
		return "title"
	case ByAuthor:
		return "author"
	case ByISBN:
		return "isbn"
	default:
		return "unknown"
	}
}

// ParseMode accepts the menu selector ("1", "2", "3") or the field name.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "title":
		return ByTitle, nil
	case "author":
		return ByAuthor, nil
	case "isbn":
		return ByISBN, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < int(ByTitle) || n > int(ByISBN) {
		return 0, ErrUnknownMode
	}
	return Mode(n), nil
}

// Search dispatches to Title, Author or ISBN.
func Search(c *catalog.Catalog, mode Mode, term string) ([]book.Book, error) {
	switch mode {
	case ByTitle:
		return Title(c, term), nil
	case ByAuthor:
		return Author(c, term), nil
	case ByISBN:
		return ISBN(c, term), nil
	default:
		return nil, ErrUnknownMode
	}
}

// Title returns every book whose title contains term. Matching is
// case-sensitive and an empty term matches everything.
func Title(c *catalog.Catalog, term string) []book.Book {
	return match(c, func(b book.Book) bool { return strings.Contains(b.Title, term) })
}

// Author is Title over the author field.
func Author(c *catalog.Catalog, term string) []book.Book {
	return match(c, func(b book.Book) bool { return strings.Contains(b.Author, term) })
}

// ISBN returns the book whose isbn equals key exactly, if any.
func ISBN(c *catalog.Catalog, key string) []book.Book {
	if b, ok := c.Get(key); ok {
		return []book.Book{b}
	}
	return []book.Book{}
}

func match(c *catalog.Catalog, pred func(book.Book) bool) []book.Book {
	matches := []book.Book{}
	for b := range c.All() {
		if pred(b) {
			matches = append(matches, b)
		}
	}
	return matches
}
