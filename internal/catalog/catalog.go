// Package catalog holds the in-memory ordered collection of books for a session.
//
// Books are kept in insertion order; the order is what List, All and a save
// produce. ISBN is the uniqueness key and is matched exactly (case-sensitive).
package catalog

import (
	"errors"
	"iter"
	"slices"

	"bookshelf/internal/book"
)

// ErrDuplicateKey is returned by Add when a book with the same ISBN is already present.
var ErrDuplicateKey = errors.New("book with this isbn already exists")

// Catalog is an ordered sequence of books unique by ISBN. The zero value is an
// empty catalog ready to use. It is not safe for concurrent use.
type Catalog struct {
	books  []book.Book
	byISBN map[string]int
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{byISBN: make(map[string]int)}
}

// Add appends b unless its ISBN is already present, in which case the existing
// book is left untouched and ErrDuplicateKey is returned. Quantity is the
// caller's responsibility (see book.Validate).
func (c *Catalog) Add(b book.Book) error {
	if _, exists := c.byISBN[b.ISBN]; exists {
		return ErrDuplicateKey
	}
	if c.byISBN == nil {
		c.byISBN = make(map[string]int)
	}
	c.byISBN[b.ISBN] = len(c.books)
	c.books = append(c.books, b)
	return nil
}

// Get returns the book with the exact isbn.
func (c *Catalog) Get(isbn string) (book.Book, bool) {
	i, ok := c.byISBN[isbn]
	if !ok {
		return book.Book{}, false
	}
	return c.books[i], true
}

// List returns a copy of all books in insertion order.
func (c *Catalog) List() []book.Book {
	return slices.Clone(c.books)
}

// All iterates over the books in insertion order.
func (c *Catalog) All() iter.Seq[book.Book] {
	return func(yield func(book.Book) bool) {
		for _, b := range c.books {
			if !yield(b) {
				return
			}
		}
	}
}

// Filter returns a new catalog holding the books for which keep returns true,
// in the same order. Removing books before a save goes through here.
func (c *Catalog) Filter(keep func(book.Book) bool) *Catalog {
	out := New()
	for _, b := range c.books {
		if keep(b) {
			// source is already unique
			_ = out.Add(b)
		}
	}
	return out
}

func (c *Catalog) IsEmpty() bool {
	return len(c.books) == 0
}

func (c *Catalog) Size() int {
	return len(c.books)
}
