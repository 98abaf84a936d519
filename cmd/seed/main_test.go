package main

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"

	"bookshelf/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	c := generate(rand.New(rand.NewSource(1)), 50)
	require.Equal(t, 50, c.Size())

	for b := range c.All() {
		assert.GreaterOrEqual(t, b.Quantity, 1)
		assert.LessOrEqual(t, b.Quantity, 20)
	}

	again := generate(rand.New(rand.NewSource(1)), 50)
	assert.Equal(t, c.List(), again.List())
}

func TestRun_WritesLoadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.txt")
	require.NoError(t, run(context.Background(), path, 25, 7, true))

	c, skipped, err := store.NewBookFile(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, 25, c.Size())
}

func TestRun_NegativeCount(t *testing.T) {
	assert.Error(t, run(context.Background(), filepath.Join(t.TempDir(), "x.txt"), -1, 1, false))
}
