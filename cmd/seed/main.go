package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"bookshelf/internal/book"
	"bookshelf/internal/catalog"
	"bookshelf/internal/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var authors = []string{
	"Ursula K. Le Guin", "Frank Herbert", "Jane Austen", "Italo Calvino", "Toni Morrison",
	"Jorge Luis Borges", "Octavia E. Butler", "Haruki Murakami", "Chinua Achebe", "Virginia Woolf",
}

func main() {
	_ = godotenv.Load(".env")

	path := os.Getenv("LIBRARY_DATA_FILE")
	if path == "" {
		path = store.DefaultPath
	}
	count := 1000
	var seed int64 = 1
	var atomic bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write generated books to the backing file, replacing its content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), path, count, seed, atomic)
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", path, "backing file")
	cmd.Flags().IntVarP(&count, "count", "n", count, "number of books to generate")
	cmd.Flags().Int64Var(&seed, "seed", seed, "random seed")
	cmd.Flags().BoolVar(&atomic, "atomic", false, "save through a temp file and rename")

	if err := cmd.Execute(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run(ctx context.Context, path string, count int, seed int64, atomic bool) error {
	if count < 0 {
		return fmt.Errorf("count must not be negative, got %d", count)
	}

	log.Printf("Generating %d books...", count)
	c := generate(rand.New(rand.NewSource(seed)), count)

	if err := store.NewBookFile(path, store.WithAtomicSave(atomic)).Save(ctx, c); err != nil {
		return err
	}

	log.Printf("Successfully wrote %d books to %s", c.Size(), path)
	return nil
}

func generate(r *rand.Rand, count int) *catalog.Catalog {
	c := catalog.New()
	for i := 0; i < count; i++ {
		b := book.Book{
			Title:    fmt.Sprintf("Book Title %d - %s", i+1, randomWord(r)),
			Author:   authors[r.Intn(len(authors))],
			ISBN:     fmt.Sprintf("978-%08d", i+1),
			Quantity: 1 + r.Intn(20),
		}
		// isbn is unique by construction
		_ = c.Add(b)

		if (i+1)%1000 == 0 {
			log.Printf("Generated %d/%d books", i+1, count)
		}
	}
	return c
}

func randomWord(r *rand.Rand) string {
	words := []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	return words[r.Intn(len(words))]
}
