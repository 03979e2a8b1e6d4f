package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hsd-hub/ngo-explorer/internal/app"
	"github.com/hsd-hub/ngo-explorer/internal/platform/db"
	"github.com/hsd-hub/ngo-explorer/internal/providers"
)

var loadCmd = &cobra.Command{
	Use:   "load <csv-file>",
	Short: "Import the provider dataset from a CSV file",
	Long: `load reads the NGO providers CSV export and inserts one record per
row, committing every 1000 rows. Re-running load on the same file appends
duplicate records; replace the store file to refresh the dataset instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoad(args[0])
	},
}

func runLoad(csvPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := app.NewLogger(cfg)

	storePath := db.StorePath(cfg.DataDir, cfg.DBFile)
	store, err := db.Open(storePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if err := db.Migrate(ctx, store); err != nil {
		return fmt.Errorf("migrate store: %w", err)
	}

	importer := providers.NewImporter(providers.NewRepository(store), logger)
	count, err := importer.Load(ctx, csvPath)
	if err != nil {
		return fmt.Errorf("import %s: %w", csvPath, err)
	}

	logger.Info("import complete",
		slog.Int("records", count),
		slog.String("store", storePath))
	return nil
}
