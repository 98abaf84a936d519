// Package lineio reads newline-terminated text with a cap on line length.
package lineio

import (
	"bufio"
	"errors"
	"io"
)

// ErrLineTooLong is returned for a line longer than the reader's limit. The
// whole line has been consumed, so the next ReadLine starts on the following line.
var ErrLineTooLong = errors.New("line too long")

type Reader struct {
	r   *bufio.Reader
	max int
}

func NewReader(r io.Reader, max int) *Reader {
	return &Reader{r: bufio.NewReader(r), max: max}
}

// ReadLine returns the next line without its "\n" or "\r\n" terminator. A last
// line without a terminator is returned as is; after it ReadLine returns io.EOF.
func (l *Reader) ReadLine() (string, error) {
	var (
		buf     []byte
		tooLong bool
		read    bool
	)
	for {
		chunk, isPrefix, err := l.r.ReadLine()
		if err != nil {
			if read && errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
		read = true

		if !tooLong {
			if len(buf)+len(chunk) > l.max {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", ErrLineTooLong
	}
	return string(buf), nil
}
