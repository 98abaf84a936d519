package usecase

import (
	"context"
	"log"

	"bookshelf/internal/book"
	"bookshelf/internal/catalog"
	"bookshelf/internal/query"
)

// CatalogRepository loads and stores the whole catalog.
type CatalogRepository interface {
	// Load returns the persisted catalog and the lines it had to skip.
	Load(ctx context.Context) (*catalog.Catalog, []book.LineError, error)
	// Save replaces the persisted catalog with c.
	Save(ctx context.Context, c *catalog.Catalog) error
}

type OpenResult struct {
	Loaded  int
	Skipped []book.LineError
}

// Library is one session over a catalog. It owns the catalog value from Open
// until the process exits; a failed Save leaves it intact.
type Library struct {
	repo    CatalogRepository
	catalog *catalog.Catalog
	logger  *log.Logger
}

func NewLibrary(repo CatalogRepository, logger *log.Logger) *Library {
	if logger == nil {
		logger = log.Default()
	}
	return &Library{
		repo:    repo,
		catalog: catalog.New(),
		logger:  logger,
	}
}

// Open replaces the session catalog with the persisted one.
func (l *Library) Open(ctx context.Context) (OpenResult, error) {
	c, skipped, err := l.repo.Load(ctx)
	if err != nil {
		return OpenResult{}, err
	}
	l.catalog = c
	return OpenResult{Loaded: c.Size(), Skipped: skipped}, nil
}

// AddBook validates b and appends it. It returns book.ValidationErrors for a
// book that must not enter the catalog and catalog.ErrDuplicateKey when the
// isbn is taken.
func (l *Library) AddBook(b book.Book) error {
	if err := book.Validate(b); err != nil {
		return err
	}
	if err := l.catalog.Add(b); err != nil {
		return err
	}
	l.logger.Printf("book added isbn=%s count=%d", b.ISBN, l.catalog.Size())
	return nil
}

func (l *Library) Books() []book.Book {
	return l.catalog.List()
}

func (l *Library) IsEmpty() bool {
	return l.catalog.IsEmpty()
}

func (l *Library) Size() int {
	return l.catalog.Size()
}

func (l *Library) Search(mode query.Mode, term string) ([]book.Book, error) {
	return query.Search(l.catalog, mode, term)
}

func (l *Library) Save(ctx context.Context) error {
	if err := l.repo.Save(ctx, l.catalog); err != nil {
		l.logger.Printf("failed to save library: %v", err)
		return err
	}
	return nil
}
