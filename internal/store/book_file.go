package store

// Repository implementation (flat file)

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"bookshelf/internal/book"
	"bookshelf/internal/catalog"
	"bookshelf/internal/lineio"

	"github.com/google/uuid"
)

// ErrIO wraps failures to read or write the backing file. A missing file on
// load is not an error.
var ErrIO = errors.New("catalog file i/o failed")

const (
	DefaultPath = "library_data.txt"

	maxLineSize = 1024 * 1024
)

type BookFile struct {
	path   string
	atomic bool
	logger *log.Logger
}

type Option func(*BookFile)

// WithAtomicSave makes Save write a temp file next to the target and rename
// it over the target.
func WithAtomicSave(enabled bool) Option {
	return func(r *BookFile) { r.atomic = enabled }
}

func WithLogger(l *log.Logger) Option {
	return func(r *BookFile) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewBookFile(path string, opts ...Option) *BookFile {
	if path == "" {
		path = DefaultPath
	}
	r := &BookFile{path: path, logger: log.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *BookFile) Path() string {
	return r.path
}

// Load reads the backing file into a new catalog. Lines that fail to decode,
// or repeat an isbn seen earlier, are skipped and returned as LineErrors.
func (r *BookFile) Load(ctx context.Context) (*catalog.Catalog, []book.LineError, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	c := catalog.New()

	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Printf("starting with a fresh library path=%s", r.path)
			return c, nil, nil
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer file.Close()

	var skipped []book.LineError
	lines := lineio.NewReader(file, maxLineSize)

	lineNo := 0
	for {
		line, err := lines.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		lineNo++

		var b book.Book
		switch {
		case errors.Is(err, lineio.ErrLineTooLong):
			err = fmt.Errorf("%w: longer than %d bytes", book.ErrMalformedRecordLine, maxLineSize)
		case err != nil:
			return nil, nil, fmt.Errorf("%w: read %s: %w", ErrIO, r.path, err)
		default:
			b, err = book.Decode(line)
			if err == nil {
				err = c.Add(b)
			}
		}
		if err != nil {
			r.logger.Printf("skipping record path=%s line=%d error=%v", r.path, lineNo, err)
			skipped = append(skipped, book.LineError{Line: lineNo, Text: line, Err: err})
		}
	}

	r.logger.Printf("books loaded path=%s count=%d skipped=%d", r.path, c.Size(), len(skipped))
	return c, skipped, nil
}

// Save rewrites the whole backing file with one line per book, in catalog order.
// The catalog itself is never modified.
func (r *BookFile) Save(ctx context.Context, c *catalog.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var err error
	if r.atomic {
		err = r.saveAtomic(c)
	} else {
		err = r.saveInPlace(c)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	r.logger.Printf("library data saved path=%s count=%d", r.path, c.Size())
	return nil
}

func (r *BookFile) saveInPlace(c *catalog.Catalog) error {
	file, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if err := writeBooks(file, c); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func (r *BookFile) saveAtomic(c *catalog.Catalog) error {
	tempPath := filepath.Join(filepath.Dir(r.path), "."+filepath.Base(r.path)+"."+uuid.NewString()+".tmp")

	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}

	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tempPath)
		}
	}()

	if err := writeBooks(file, c); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	if err := os.Rename(tempPath, r.path); err != nil {
		return err
	}
	renamed = true
	return nil
}

func writeBooks(file *os.File, c *catalog.Catalog) error {
	w := bufio.NewWriter(file)
	for b := range c.All() {
		if _, err := w.WriteString(book.Encode(b)); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
