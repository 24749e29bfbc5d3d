package catalog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"cafe-pos/internal/model"

	"github.com/rs/zerolog"
)

// Loader reads a catalog from a source.
type Loader interface {
	Load(ctx context.Context, path string) ([]model.CatalogItem, error)
}

// fileLoader implements Loader for JSON catalog files, optionally gzipped.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a JSON array of catalog items. Files ending in .gz are decompressed.
func (l *fileLoader) Load(ctx context.Context, path string) ([]model.CatalogItem, error) {
	l.logger.Info().Str("file", path).Msg("loading catalog file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open catalog file")
		return nil, fmt.Errorf("failed to open catalog file %s: %w", path, err)
	}
	defer file.Close()

	select {
	case <-ctx.Done():
		l.logger.Warn().Str("file", path).Msg("catalog loading cancelled")
		return nil, ctx.Err()
	default:
	}

	items, err := decode(file, strings.HasSuffix(path, ".gz"))
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read catalog file")
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("items_loaded", len(items)).
		Msg("catalog file loaded successfully")

	return items, nil
}

// decode reads a JSON array of catalog items, gunzipping first when gz is set.
func decode(r io.Reader, gz bool) ([]model.CatalogItem, error) {
	if gz {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var items []model.CatalogItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return items, nil
}

// Source describes where a catalog comes from and how it is checked.
type Source struct {
	Path     string
	Seed     func() []model.CatalogItem
	Validate func([]model.CatalogItem) error
}

// LoadSource loads the catalog at src.Path, or the seed when no path is set,
// and validates the result.
func LoadSource(ctx context.Context, loader Loader, src Source) ([]model.CatalogItem, error) {
	var (
		items []model.CatalogItem
		err   error
	)
	if src.Path == "" {
		items = src.Seed()
	} else {
		items, err = loader.Load(ctx, src.Path)
		if err != nil {
			return nil, err
		}
	}

	if src.Validate != nil {
		if err := src.Validate(items); err != nil {
			return nil, fmt.Errorf("invalid catalog: %w", err)
		}
	}
	return items, nil
}

// WriteJSON encodes items as an indented JSON array, gzipped when gz is set.
func WriteJSON(w io.Writer, items []model.CatalogItem, gz bool) error {
	if gz {
		gzipWriter := gzip.NewWriter(w)
		if err := writeIndented(gzipWriter, items); err != nil {
			gzipWriter.Close()
			return err
		}
		return gzipWriter.Close()
	}
	return writeIndented(w, items)
}

func writeIndented(w io.Writer, items []model.CatalogItem) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return nil
}
