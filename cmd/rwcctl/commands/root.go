// AngelaMos | 2026
// root.go

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/carterperez-dev/rwc-wellness/internal/catalog"
	"github.com/carterperez-dev/rwc-wellness/internal/config"
	"github.com/carterperez-dev/rwc-wellness/internal/core"
)

type rootOptions struct {
	configPath string
	seedPath   string
	cfg        *config.Config
}

func Execute() error {
	return NewRootCommand().Execute()
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "rwcctl",
		Short:         "Operator tools for the RWC wellness catalog",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file")
	root.PersistentFlags().StringVar(&opts.seedPath, "seed", "", "read the catalog from this JSON or YAML file")

	root.AddCommand(
		validateCmd(opts),
		referenceCmd(opts),
		quoteCmd(opts),
		formatCmd(opts),
		schemaCmd(),
	)
	return root
}

// source picks the seed file given on the command line, falling back to the
// configured catalog source. The returned cleanup closes any connection.
func (o *rootOptions) source(ctx context.Context) (catalog.Source, func(), error) {
	noop := func() {}

	if o.seedPath != "" {
		return catalog.FileSource{Path: o.seedPath}, noop, nil
	}

	switch o.cfg.Catalog.Source {
	case config.SourceFile:
		return catalog.FileSource{Path: o.cfg.Catalog.Path}, noop, nil
	case config.SourcePostgres:
		db, err := core.NewDatabase(ctx, o.cfg.Database, "rwcctl")
		if err != nil {
			return nil, noop, err
		}
		closeDB := func() {
			_ = db.Close() //nolint:errcheck // best-effort close for a one-shot command
		}
		return catalog.PostgresSource{DB: db.DB}, closeDB, nil
	default:
		return catalog.EmbeddedSource{}, noop, nil
	}
}

// loadCatalog reads and validates the catalog. Issues are fatal only when
// the config asks for a strict catalog.
func (o *rootOptions) loadCatalog(ctx context.Context, w io.Writer) (*catalog.Catalog, error) {
	src, cleanup, err := o.source(ctx)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cat, err := catalog.Load(ctx, src, o.cfg.Catalog.Strict, logger)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}
