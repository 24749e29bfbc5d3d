package receipt

import (
	"context"

	"cafe-pos/internal/metrics"
	"cafe-pos/internal/model"

	"github.com/rs/zerolog"
)

// Dispatcher formats an order and sends it to every printer.
// Delivery is best-effort: a failing printer is logged and the rest still run.
type Dispatcher struct {
	formatter Formatter
	printers  []Printer
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewDispatcher creates a dispatcher. m may be nil.
func NewDispatcher(formatter Formatter, printers []Printer, m *metrics.Metrics, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		formatter: formatter,
		printers:  printers,
		metrics:   m,
		logger:    logger.With().Str("component", "receipt-dispatcher").Logger(),
	}
}

// Render formats order without printing it.
func (d *Dispatcher) Render(order model.ConfirmedOrder) Receipt {
	return d.formatter.Format(order)
}

// Dispatch renders order and hands it to every printer. It returns the
// receipt and the number of printers that failed.
func (d *Dispatcher) Dispatch(ctx context.Context, order model.ConfirmedOrder) (Receipt, int) {
	r := d.formatter.Format(order)

	failed := 0
	for _, p := range d.printers {
		err := p.Print(ctx, r)
		if d.metrics != nil {
			d.metrics.ReceiptsPrinted.WithLabelValues(p.Name(), metrics.Result(err)).Inc()
		}
		if err != nil {
			failed++
			d.logger.Warn().
				Err(err).
				Str("printer", p.Name()).
				Str("order_number", order.Number).
				Msg("receipt delivery failed")
		}
	}
	return r, failed
}
