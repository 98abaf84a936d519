package book

import (
	"errors"
	"fmt"
)

// ErrMalformedRecordLine is returned when a persisted line cannot be decoded into a Book.
var ErrMalformedRecordLine = errors.New("malformed record line")

// Book represents one catalog entry. ISBN is an opaque key and is not
// checked against the ISBN standard.
type Book struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	ISBN     string `json:"isbn"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

func (b Book) String() string {
	return fmt.Sprintf("| Title: %s | Author: %s | ISBN: %s | Quantity: %d |", b.Title, b.Author, b.ISBN, b.Quantity)
}

// LineError describes a persisted line that was skipped while loading.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
