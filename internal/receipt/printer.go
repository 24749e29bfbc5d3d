package receipt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Printer delivers a rendered receipt somewhere.
type Printer interface {
	Name() string
	Print(ctx context.Context, r Receipt) error
}

// logPrinter writes receipts to the log. It stands in for a thermal printer.
type logPrinter struct {
	logger zerolog.Logger
}

// NewLogPrinter creates a printer that logs each receipt.
func NewLogPrinter(logger zerolog.Logger) Printer {
	return &logPrinter{
		logger: logger.With().Str("component", "receipt-printer").Logger(),
	}
}

func (p *logPrinter) Name() string { return "log" }

func (p *logPrinter) Print(_ context.Context, r Receipt) error {
	p.logger.Info().
		Str("order_number", r.Number).
		Str("receipt", r.Text).
		Msg("receipt printed")
	return nil
}

// filePrinter spools receipts as receipt_<number>.txt files.
type filePrinter struct {
	dir    string
	logger zerolog.Logger
}

// NewFilePrinter creates a printer writing into dir, creating it if needed.
func NewFilePrinter(dir string, logger zerolog.Logger) (Printer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create receipt spool dir %s: %w", dir, err)
	}
	return &filePrinter{
		dir:    dir,
		logger: logger.With().Str("component", "receipt-spool").Logger(),
	}, nil
}

func (p *filePrinter) Name() string { return "file" }

func (p *filePrinter) Print(ctx context.Context, r Receipt) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(p.dir, FileName(r))
	if err := os.WriteFile(path, []byte(r.Text), 0o644); err != nil {
		p.logger.Error().Err(err).Str("file", path).Msg("failed to write receipt")
		return fmt.Errorf("failed to write receipt %s: %w", path, err)
	}

	p.logger.Debug().Str("file", path).Msg("receipt spooled")
	return nil
}

// FileName is the spool and archive name for a receipt.
func FileName(r Receipt) string {
	name := r.Number
	if name == "" {
		name = r.OrderID
	}
	return "receipt_" + strings.ReplaceAll(name, string(filepath.Separator), "_") + ".txt"
}
