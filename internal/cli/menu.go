// Package cli is the terminal front-end: a numbered menu read line by line
// from an io.Reader.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bookshelf/internal/book"
	"bookshelf/internal/catalog"
	"bookshelf/internal/lineio"
	"bookshelf/internal/query"
	"bookshelf/internal/usecase"
)

var errInputClosed = errors.New("input closed")

// maxInputLine bounds a single answer typed at a prompt.
const maxInputLine = 64 * 1024

const (
	choiceAdd = iota + 1
	choiceDisplay
	choiceSearch
	choiceExit
)

type Menu struct {
	lib    *usecase.Library
	in     *lineio.Reader
	out    io.Writer
	styles Styles
}

func NewMenu(lib *usecase.Library, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		lib:    lib,
		in:     lineio.NewReader(in, maxInputLine),
		out:    out,
		styles: NewStyles(out, DefaultTheme),
	}
}

// Welcome reports the outcome of opening the library.
func (m *Menu) Welcome(res usecase.OpenResult) {
	for _, le := range res.Skipped {
		m.println(m.styles.Warning.Render(fmt.Sprintf("Skipped line %d: %v", le.Line, le.Err)))
	}
	if res.Loaded == 0 && len(res.Skipped) == 0 {
		m.println("Starting with an empty library.")
		return
	}
	m.println(fmt.Sprintf("%d books loaded from file.", res.Loaded))
}

// Run shows the menu until Save & Exit succeeds. End of input is treated as
// Save & Exit; its save error, if any, is returned. Any other read error is
// returned after a save attempt.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.showMenu()

		line, err := m.prompt("Enter your choice (1-4): ")
		if err != nil {
			return m.closeOnError(ctx, err)
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			m.println(m.styles.Warning.Render("Invalid input. Please enter a number."))
			continue
		}

		switch choice {
		case choiceAdd:
			err = m.addBook()
		case choiceDisplay:
			m.displayAll()
		case choiceSearch:
			err = m.searchBook()
		case choiceExit:
			if m.save(ctx) == nil {
				m.println("\nGoodbye!")
				return nil
			}
		default:
			m.println(m.styles.Warning.Render("Invalid choice. Please enter a number between 1 and 4."))
		}

		if err != nil {
			return m.closeOnError(ctx, err)
		}
	}
}

func (m *Menu) closeOnError(ctx context.Context, err error) error {
	saveErr := m.save(ctx)
	if errors.Is(err, errInputClosed) {
		return saveErr
	}
	return errors.Join(err, saveErr)
}

func (m *Menu) save(ctx context.Context) error {
	if err := m.lib.Save(ctx); err != nil {
		m.println(m.styles.Error.Render(fmt.Sprintf("Error: could not save library data: %v", err)))
		return err
	}
	m.println(m.styles.Success.Render("Library data saved successfully."))
	return nil
}

func (m *Menu) showMenu() {
	m.println("")
	m.println(m.styles.Title.Render("===== Library Management System (CLI) ====="))
	m.println("1. Add New Book")
	m.println("2. Display All Books")
	m.println("3. Search Book")
	m.println("4. Save & Exit")
}

func (m *Menu) addBook() error {
	m.println("\n--- Add New Book ---")

	title, err := m.prompt("Enter Title: ")
	if err != nil {
		return err
	}
	author, err := m.prompt("Enter Author: ")
	if err != nil {
		return err
	}
	isbn, err := m.prompt("Enter ISBN: ")
	if err != nil {
		return err
	}
	quantity, err := m.promptQuantity()
	if err != nil {
		return err
	}

	b := book.Book{Title: title, Author: author, ISBN: isbn, Quantity: quantity}
	if err := m.lib.AddBook(b); err != nil {
		if errors.Is(err, catalog.ErrDuplicateKey) {
			m.println("")
			m.println(m.styles.Warning.Render(fmt.Sprintf("Book with ISBN %s already exists.", isbn)))
			return nil
		}
		m.println("")
		m.println(m.styles.Error.Render(fmt.Sprintf("Book not added: %v", err)))
		return nil
	}

	m.println("")
	m.println(m.styles.Success.Render("Book added successfully!"))
	return nil
}

func (m *Menu) promptQuantity() (int, error) {
	line, err := m.prompt("Enter Quantity: ")
	for {
		if err != nil {
			return 0, err
		}
		q, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && q >= 1 {
			return q, nil
		}
		line, err = m.prompt("Invalid input. Please enter a positive number for Quantity: ")
	}
}

func (m *Menu) displayAll() {
	if m.lib.IsEmpty() {
		m.println("\nThe library is currently empty.")
		return
	}

	m.println("")
	m.println(m.styles.Title.Render(fmt.Sprintf("--- All Books in Library (%d) ---", m.lib.Size())))
	m.printBooks(m.lib.Books())
	m.println(m.styles.Dim.Render(strings.Repeat("-", 42)))
}

func (m *Menu) searchBook() error {
	if m.lib.IsEmpty() {
		m.println("\nThe library is currently empty. Nothing to search.")
		return nil
	}

	m.println("\n--- Search Book ---")
	line, err := m.prompt("Search by: 1. Title | 2. Author | 3. ISBN : ")
	if err != nil {
		return err
	}
	mode, err := query.ParseMode(line)
	if err != nil {
		m.println(m.styles.Warning.Render("Invalid choice."))
		return nil
	}

	term, err := m.prompt("Enter search term: ")
	if err != nil {
		return err
	}

	results, err := m.lib.Search(mode, term)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		m.println("\nNo books found matching your search term.")
		return nil
	}

	m.println("")
	m.println(m.styles.Success.Render(fmt.Sprintf("Found %d matching book(s):", len(results))))
	m.printBooks(results)
	return nil
}

func (m *Menu) printBooks(books []book.Book) {
	for _, b := range books {
		m.println(b.String())
	}
}

// prompt reads one answer. An over-long answer is discarded and asked again.
func (m *Menu) prompt(label string) (string, error) {
	for {
		fmt.Fprint(m.out, label)
		line, err := m.in.ReadLine()
		switch {
		case err == nil:
			return line, nil
		case errors.Is(err, lineio.ErrLineTooLong):
			m.println("")
			m.println(m.styles.Warning.Render(fmt.Sprintf("Input too long (over %d bytes). Please try again.", maxInputLine)))
		case errors.Is(err, io.EOF):
			return "", errInputClosed
		default:
			return "", err
		}
	}
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}
