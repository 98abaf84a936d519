package book

import (
	"fmt"
	"strconv"
	"strings"
)

// Separator delimits fields in a persisted line. It is not escaped, so a
// field value containing it will not survive a save/load cycle.
const Separator = "|"

const fieldCount = 4

// Encode renders a book as one line: title|author|isbn|quantity.
// The returned line has no trailing newline.
func Encode(b Book) string {
	var sb strings.Builder
	sb.WriteString(b.Title)
	sb.WriteString(Separator)
	sb.WriteString(b.Author)
	sb.WriteString(Separator)
	sb.WriteString(b.ISBN)
	sb.WriteString(Separator)
	sb.WriteString(strconv.Itoa(b.Quantity))
	return sb.String()
}

// Decode parses a line produced by Encode. A single trailing separator is
// accepted and whitespace around the quantity is ignored. Any failure wraps
// ErrMalformedRecordLine.
func Decode(line string) (Book, error) {
	fields := strings.Split(line, Separator)
	if len(fields) == fieldCount+1 && fields[fieldCount] == "" {
		fields = fields[:fieldCount]
	}
	if len(fields) != fieldCount {
		return Book{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecordLine, fieldCount, len(fields))
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return Book{}, fmt.Errorf("%w: invalid quantity format %q", ErrMalformedRecordLine, fields[3])
	}
	if quantity < 1 {
		return Book{}, fmt.Errorf("%w: quantity must be positive, got %d", ErrMalformedRecordLine, quantity)
	}

	return Book{
		Title:    fields[0],
		Author:   fields[1],
		ISBN:     fields[2],
		Quantity: quantity,
	}, nil
}
