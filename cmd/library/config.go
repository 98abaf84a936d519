package main

import (
	"os"
	"strconv"

	"bookshelf/internal/store"

	"github.com/joho/godotenv"
)

type config struct {
	DataFile   string
	AtomicSave bool
	Verbose    bool
}

func loadEnvFiles() {
	// Do not override environment provided by the shell.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func loadConfig() config {
	return config{
		DataFile:   getEnv("LIBRARY_DATA_FILE", store.DefaultPath),
		AtomicSave: getEnvBool("LIBRARY_ATOMIC_SAVE", false),
		Verbose:    getEnvBool("LIBRARY_VERBOSE", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
