package receipt

import (
	"context"

	"github.com/rs/zerolog"
)

// CashDrawer opens the till.
type CashDrawer interface {
	Open(ctx context.Context, orderNumber string) error
}

// logDrawer is a CashDrawer that only logs. No hardware is attached.
type logDrawer struct {
	logger zerolog.Logger
}

// NewLogDrawer creates a logging cash drawer.
func NewLogDrawer(logger zerolog.Logger) CashDrawer {
	return &logDrawer{
		logger: logger.With().Str("component", "cash-drawer").Logger(),
	}
}

func (d *logDrawer) Open(_ context.Context, orderNumber string) error {
	d.logger.Info().Str("order_number", orderNumber).Msg("cash drawer opened")
	return nil
}
