package main

import (
	"fmt"
	"io"
	"log"

	"bookshelf/internal/cli"
	"bookshelf/internal/query"
	"bookshelf/internal/store"
	"bookshelf/internal/usecase"

	"github.com/spf13/cobra"
)

func newRootCmd(cfg config) *cobra.Command {
	root := &cobra.Command{
		Use:           "library",
		Short:         "Interactive book catalog kept in a flat text file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, res, err := openLibrary(cmd, cfg)
			if err != nil {
				return err
			}

			menu := cli.NewMenu(lib, cmd.InOrStdin(), cmd.OutOrStdout())
			menu.Welcome(res)
			return menu.Run(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&cfg.DataFile, "file", "f", cfg.DataFile, "backing file (env LIBRARY_DATA_FILE)")
	root.PersistentFlags().BoolVar(&cfg.AtomicSave, "atomic", cfg.AtomicSave, "save through a temp file and rename (env LIBRARY_ATOMIC_SAVE)")
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log load/save diagnostics to stderr (env LIBRARY_VERBOSE)")

	root.AddCommand(newListCmd(&cfg))
	root.AddCommand(newSearchCmd(&cfg))
	return root
}

func newListCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every book in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, res, err := openLibrary(cmd, *cfg)
			if err != nil {
				return err
			}
			warnSkipped(cmd, res)
			for _, b := range lib.Books() {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
			return nil
		},
	}
}

func newSearchCmd(cfg *config) *cobra.Command {
	by := query.ByTitle.String()

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Print books matching term by title, author or isbn",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := query.ParseMode(by)
			if err != nil {
				return fmt.Errorf("--by %q: %w", by, err)
			}
			var term string
			if len(args) == 1 {
				term = args[0]
			}

			lib, res, err := openLibrary(cmd, *cfg)
			if err != nil {
				return err
			}
			warnSkipped(cmd, res)
			results, err := lib.Search(mode, term)
			if err != nil {
				return err
			}
			for _, b := range results {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", by, "field to match: title, author or isbn")
	return cmd
}

func openLibrary(cmd *cobra.Command, cfg config) (*usecase.Library, usecase.OpenResult, error) {
	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	}

	repo := store.NewBookFile(cfg.DataFile, store.WithAtomicSave(cfg.AtomicSave), store.WithLogger(logger))
	lib := usecase.NewLibrary(repo, logger)

	res, err := lib.Open(cmd.Context())
	if err != nil {
		return nil, usecase.OpenResult{}, fmt.Errorf("open library %s: %w", cfg.DataFile, err)
	}
	return lib, res, nil
}

// warnSkipped reports lines dropped while loading on stderr, keeping stdout to books only.
func warnSkipped(cmd *cobra.Command, res usecase.OpenResult) {
	for _, le := range res.Skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipped line %d: %v\n", le.Line, le.Err)
	}
}
