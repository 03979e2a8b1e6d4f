package providers

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// BatchSize is the flush boundary: buffered rows are committed every
// BatchSize records to bound memory and transaction size.
const BatchSize = 1000

// Importer loads the provider dataset from a CSV source into the store.
// Re-importing the same file produces duplicate records with new ids;
// replacement, not merge, is the supported way to refresh the dataset.
type Importer struct {
	repo      Repository
	logger    *slog.Logger
	batchSize int
}

func NewImporter(repo Repository, logger *slog.Logger) *Importer {
	return &Importer{repo: repo, logger: logger, batchSize: BatchSize}
}

// Load reads the CSV at path and inserts one record per row, flushing every
// batchSize rows plus a final flush for the remainder. It returns the total
// number of records imported. On failure, rows committed at earlier flush
// boundaries remain in the store.
func (im *Importer) Load(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("providers: open source file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("providers: read header: %w", err)
	}

	var (
		batch = make([]Provider, 0, im.batchSize)
		count = 0
	)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := im.repo.CreateBatch(ctx, batch); err != nil {
			return err
		}
		count += len(batch)
		batch = batch[:0]
		im.logger.Info("imported records", slog.Int("count", count))
		return nil
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, fmt.Errorf("providers: decode row: %w", err)
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		batch = append(batch, FromRow(row))

		if len(batch) >= im.batchSize {
			if err := flush(); err != nil {
				return count, err
			}
		}
	}

	if err := flush(); err != nil {
		return count, err
	}
	return count, nil
}
