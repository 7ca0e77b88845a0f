package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"geohash-api/internal/service"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type batchOptions struct {
	file      string
	latCol    int
	lonCol    int
	precision int
	workers   int
}

func newBatchCmd(svc *service.GeohashService) *cobra.Command {
	var opts batchOptions

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Append a geohash column to every row of a CSV file",
		Long: `Reads a CSV file with a header row, encodes the latitude and longitude
columns of every row and writes the rows to stdout with a trailing geohash column.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.file == "" {
				return errors.New("--file flag is required")
			}
			if !cmd.Flags().Changed("precision") {
				return errors.New("precision is required")
			}
			if opts.workers < 1 {
				return fmt.Errorf("--workers must be at least 1, got %d", opts.workers)
			}

			header, records, err := parseCSV(opts.file)
			if err != nil {
				return err
			}
			zerolog.Ctx(cmd.Context()).Info().
				Str("file", opts.file).
				Int("records", len(records)).
				Msg("parsed records")

			hashes, err := encodeRecords(cmd, svc, records, opts)
			if err != nil {
				return err
			}

			return writeCSV(cmd.OutOrStdout(), header, records, hashes)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to the CSV file to encode")
	cmd.Flags().IntVar(&opts.latCol, "lat-col", 0, "Zero-based index of the latitude column")
	cmd.Flags().IntVar(&opts.lonCol, "lon-col", 1, "Zero-based index of the longitude column")
	cmd.Flags().IntVarP(&opts.precision, "precision", "p", 0, "Geohash length (1-12)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", runtime.GOMAXPROCS(0), "Number of concurrent encoders")

	return cmd
}

func parseCSV(filePath string) ([]string, [][]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("failed to read record: %w", err)
		}
		records = append(records, record)
	}

	return header, records, nil
}

// encodeRecords encodes all records concurrently. hashes[i] belongs to records[i].
func encodeRecords(cmd *cobra.Command, svc *service.GeohashService, records [][]string, opts batchOptions) ([]string, error) {
	hashes := make([]string, len(records))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(opts.workers)

	for i, record := range records {
		i, record := i, record
		// line numbers count the header
		line := i + 2

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			lat, lon, err := coordinates(record, opts)
			if err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}

			cell, err := svc.Encode(ctx, lat, lon, opts.precision)
			if err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}

			hashes[i] = cell.Geohash
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hashes, nil
}

func coordinates(record []string, opts batchOptions) (float64, float64, error) {
	if opts.latCol < 0 || opts.latCol >= len(record) || opts.lonCol < 0 || opts.lonCol >= len(record) {
		return 0, 0, fmt.Errorf("invalid record length: %d", len(record))
	}

	lat, err := strconv.ParseFloat(record[opts.latCol], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude: %s", record[opts.latCol])
	}

	lon, err := strconv.ParseFloat(record[opts.lonCol], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude: %s", record[opts.lonCol])
	}

	return lat, lon, nil
}

func writeCSV(w io.Writer, header []string, records [][]string, hashes []string) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(append(header, "geohash")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(append(record, hashes[i])); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
