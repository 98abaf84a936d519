package main

import (
	"fmt"
	"os"
)

func main() {
	loadEnvFiles()

	if err := newRootCmd(loadConfig()).Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
