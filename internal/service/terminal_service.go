package service

import (
	"context"
	"sync"
	"time"

	"cafe-pos/internal/cart"
	"cafe-pos/internal/catalog"
	"cafe-pos/internal/metrics"
	"cafe-pos/internal/model"
	"cafe-pos/internal/order"
	"cafe-pos/internal/pricing"
	"cafe-pos/internal/receipt"
	"cafe-pos/internal/scheduler"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ReceiptDispatcher renders and prints receipts.
type ReceiptDispatcher interface {
	Render(order model.ConfirmedOrder) receipt.Receipt
	Dispatch(ctx context.Context, order model.ConfirmedOrder) (receipt.Receipt, int)
}

// TerminalOptions tunes the staff terminal flow.
type TerminalOptions struct {
	TaxRate decimal.Decimal
	// DrawerDelay is the pause between a cash confirmation and the drawer opening.
	DrawerDelay time.Duration
	// AutoPrint prints the receipt as soon as an order is confirmed.
	AutoPrint bool
}

// DefaultTerminalOptions returns the standard terminal settings: no tax,
// auto-print on, drawer after 500ms.
func DefaultTerminalOptions() TerminalOptions {
	return TerminalOptions{
		TaxRate:     decimal.Zero,
		DrawerDelay: 500 * time.Millisecond,
		AutoPrint:   true,
	}
}

// terminalService implements TerminalService.
type terminalService struct {
	menu      catalog.Store
	orders    order.Repository
	receipts  ReceiptDispatcher
	drawer    receipt.CashDrawer
	scheduler scheduler.Scheduler
	calc      pricing.Calculator
	opts      TerminalOptions
	metrics   *metrics.Metrics
	logger    zerolog.Logger

	mu     sync.Mutex
	ticket cart.Collection
}

// NewTerminalService creates a new terminal service. m may be nil.
func NewTerminalService(
	menu catalog.Store,
	orders order.Repository,
	receipts ReceiptDispatcher,
	drawer receipt.CashDrawer,
	sched scheduler.Scheduler,
	opts TerminalOptions,
	m *metrics.Metrics,
	logger zerolog.Logger,
) TerminalService {
	return &terminalService{
		menu:      menu,
		orders:    orders,
		receipts:  receipts,
		drawer:    drawer,
		scheduler: sched,
		calc:      pricing.NewCalculator(opts.TaxRate),
		opts:      opts,
		metrics:   m,
		logger:    logger.With().Str("service", "terminal").Logger(),
	}
}

func (s *terminalService) Menu(ctx context.Context, category string) (*model.MenuView, error) {
	items := s.menu.List()
	filter := catalog.TerminalFilter{}

	if category == "" {
		category = filter.DefaultTag(items)
	}
	return &model.MenuView{
		Category:   category,
		Categories: filter.Tags(items),
		Items:      filter.Apply(items, category),
	}, nil
}

func (s *terminalService) Ticket(ctx context.Context) (*model.TicketView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewOf(), nil
}

func (s *terminalService) AddItem(ctx context.Context, req *model.AddLineRequest) (*model.TicketView, error) {
	item, err := s.menu.Get(req.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.Enabled {
		return nil, model.ErrItemUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var line model.OrderLine
	s.ticket, line = s.ticket.Add(item, model.NewSelection(req.Size))

	if s.metrics != nil {
		s.metrics.LinesAdded.WithLabelValues(string(model.ChannelTerminal)).Inc()
	}
	s.logger.Debug().
		Str("item_id", item.ID).
		Str("size", line.Size).
		Int("quantity", line.Quantity).
		Msg("item added to ticket")

	return s.viewOf(), nil
}

func (s *terminalService) SetQuantity(ctx context.Context, lineID string, qty int) (*model.TicketView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticket = s.ticket.SetQuantity(lineID, qty)
	return s.viewOf(), nil
}

func (s *terminalService) RemoveLine(ctx context.Context, lineID string) (*model.TicketView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticket = s.ticket.Remove(lineID)
	return s.viewOf(), nil
}

func (s *terminalService) ClearTicket(ctx context.Context) (*model.TicketView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticket = s.ticket.Clear()
	return s.viewOf(), nil
}

func (s *terminalService) Confirm(ctx context.Context, method model.PaymentMethod) (*model.ConfirmedOrder, error) {
	if !method.Valid() {
		return nil, model.ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	if s.ticket.IsEmpty() {
		s.mu.Unlock()
		return nil, model.ErrEmptyOrder
	}

	totals := s.calc.Totals(s.ticket.Lines())
	confirmed := s.orders.Append(model.ConfirmedOrder{
		Channel:       model.ChannelTerminal,
		Lines:         s.ticket.Snapshot(),
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		Status:        model.StatusPending,
		PaymentMethod: method,
	})
	s.ticket = s.ticket.Clear()
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.OrdersConfirmed.WithLabelValues(string(model.ChannelTerminal)).Inc()
		s.metrics.OrderValue.WithLabelValues(string(model.ChannelTerminal)).Observe(confirmed.Total.InexactFloat64())
	}
	s.logger.Info().
		Str("order_id", confirmed.ID.String()).
		Str("order_number", confirmed.Number).
		Str("payment_method", string(method)).
		Str("total", confirmed.Total.StringFixed(2)).
		Msg("terminal order confirmed")

	// Hardware effects run after the order is recorded and never fail it.
	if s.opts.AutoPrint {
		s.receipts.Dispatch(context.WithoutCancel(ctx), confirmed)
	}
	if method == model.PaymentCash {
		number := confirmed.Number
		s.scheduler.After(s.opts.DrawerDelay, func() {
			if err := s.drawer.Open(context.Background(), number); err != nil {
				s.logger.Warn().Err(err).Str("order_number", number).Msg("failed to open cash drawer")
			}
		})
	}

	out := confirmed.Clone()
	return &out, nil
}

func (s *terminalService) Orders(ctx context.Context) ([]model.ConfirmedOrder, error) {
	return s.orders.List(), nil
}

func (s *terminalService) ChangeStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.ConfirmedOrder, error) {
	updated, err := s.orders.UpdateStatus(id, status)
	if s.metrics != nil {
		s.metrics.StatusChanges.WithLabelValues(string(status), metrics.Result(err)).Inc()
	}
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("order_id", id.String()).
			Str("status", string(status)).
			Msg("status change rejected")
		return nil, err
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("order_number", updated.Number).
		Str("status", string(updated.Status)).
		Msg("order status changed")
	return &updated, nil
}

func (s *terminalService) Receipt(ctx context.Context, id uuid.UUID) (*receipt.Receipt, error) {
	o, err := s.orders.Get(id)
	if err != nil {
		return nil, err
	}
	r := s.receipts.Render(o)
	return &r, nil
}

func (s *terminalService) Print(ctx context.Context, id uuid.UUID) (*receipt.Receipt, error) {
	o, err := s.orders.Get(id)
	if err != nil {
		return nil, err
	}
	r, failed := s.receipts.Dispatch(ctx, o)
	if failed > 0 {
		s.logger.Warn().Str("order_number", o.Number).Int("failed_printers", failed).Msg("receipt reprint incomplete")
	}
	return &r, nil
}

// viewOf must be called with mu held.
func (s *terminalService) viewOf() *model.TicketView {
	lines := s.ticket.Snapshot()
	return &model.TicketView{
		Lines:     lines,
		ItemCount: s.ticket.ItemCount(),
		Totals:    pricing.RoundTotals(s.calc.Totals(lines)),
	}
}
