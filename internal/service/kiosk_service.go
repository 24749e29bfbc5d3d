package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"cafe-pos/internal/cart"
	"cafe-pos/internal/catalog"
	"cafe-pos/internal/metrics"
	"cafe-pos/internal/model"
	"cafe-pos/internal/order"
	"cafe-pos/internal/pricing"
	"cafe-pos/internal/scheduler"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// KioskOptions tunes the kiosk flow.
type KioskOptions struct {
	TaxRate decimal.Decimal
	// AddedIndicator is how long the "added to cart" badge stays lit.
	AddedIndicator time.Duration
	// ReturnToMenu is the pause on the confirmation screen.
	ReturnToMenu time.Duration
}

// DefaultKioskOptions returns the standard kiosk timings and the 8% tax rate.
func DefaultKioskOptions() KioskOptions {
	return KioskOptions{
		TaxRate:        pricing.KioskTaxRate,
		AddedIndicator: 800 * time.Millisecond,
		ReturnToMenu:   2 * time.Second,
	}
}

type kioskSession struct {
	id          string
	lines       cart.Collection
	view        string
	fulfilment  model.Fulfilment
	tableNumber string
	lastOrder   *model.ConfirmedOrder

	justAdded  bool
	addedGen   int
	addedToken scheduler.Token
	navGen     int
	navToken   scheduler.Token
}

func (s *kioskSession) cancelTimers() {
	if s.addedToken != nil {
		s.addedToken.Cancel()
		s.addedToken = nil
	}
	if s.navToken != nil {
		s.navToken.Cancel()
		s.navToken = nil
	}
}

// kioskService implements KioskService.
type kioskService struct {
	catalog   catalog.Store
	orders    order.Repository
	scheduler scheduler.Scheduler
	calc      pricing.Calculator
	opts      KioskOptions
	metrics   *metrics.Metrics
	logger    zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]*kioskSession
}

// NewKioskService creates a new kiosk service. m may be nil.
func NewKioskService(
	store catalog.Store,
	orders order.Repository,
	sched scheduler.Scheduler,
	opts KioskOptions,
	m *metrics.Metrics,
	logger zerolog.Logger,
) KioskService {
	return &kioskService{
		catalog:   store,
		orders:    orders,
		scheduler: sched,
		calc:      pricing.NewCalculator(opts.TaxRate),
		opts:      opts,
		metrics:   m,
		logger:    logger.With().Str("service", "kiosk").Logger(),
		sessions:  make(map[string]*kioskSession),
	}
}

func (s *kioskService) OpenSession(ctx context.Context) (*model.KioskView, error) {
	sess := &kioskSession{
		id:         uuid.NewString(),
		view:       model.ViewMenu,
		fulfilment: model.FulfilmentDineIn,
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	count := len(s.sessions)
	view := s.viewOf(sess)
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.ActiveSessions.Set(float64(count))
	}
	s.logger.Debug().Str("session_id", sess.id).Msg("kiosk session opened")
	return view, nil
}

func (s *kioskService) CloseSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return model.ErrSessionNotFound
	}
	sess.cancelTimers()
	delete(s.sessions, sessionID)
	count := len(s.sessions)
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.ActiveSessions.Set(float64(count))
	}
	s.logger.Debug().Str("session_id", sessionID).Msg("kiosk session closed")
	return nil
}

func (s *kioskService) Menu(ctx context.Context, category string) (*model.MenuView, error) {
	items := s.catalog.List()
	filter := catalog.KioskFilter{}

	if category == "" {
		category = filter.DefaultTag(items)
	}
	if category != model.CategoryAll && !model.IsKioskCategory(category) {
		return nil, model.ErrInvalidCategory
	}

	return &model.MenuView{
		Category:   category,
		Categories: filter.Tags(items),
		Items:      filter.Apply(items, category),
	}, nil
}

func (s *kioskService) View(ctx context.Context, sessionID string) (*model.KioskView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return s.viewOf(sess), nil
}

func (s *kioskService) AddItem(ctx context.Context, sessionID string, req *model.AddLineRequest) (*model.KioskView, error) {
	item, err := s.catalog.Get(req.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.Enabled {
		return nil, model.ErrItemUnavailable
	}

	size := req.Size
	if size == "" {
		size = item.DefaultSize()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}

	var line model.OrderLine
	sess.lines, line = sess.lines.Add(item, model.NewSelection(size, req.Addons...))

	// A new order started on the confirmation screen stays on the menu.
	if sess.navToken != nil {
		sess.navToken.Cancel()
		sess.navToken = nil
		sess.navGen++
	}
	if sess.view == model.ViewConfirmed {
		sess.view = model.ViewMenu
	}
	sess.lastOrder = nil

	s.flashAdded(sess)

	if s.metrics != nil {
		s.metrics.LinesAdded.WithLabelValues(string(model.ChannelKiosk)).Inc()
	}
	s.logger.Debug().
		Str("session_id", sessionID).
		Str("item_id", item.ID).
		Str("line_id", line.ID).
		Int("quantity", line.Quantity).
		Msg("item added to cart")

	return s.viewOf(sess), nil
}

// flashAdded lights the added indicator and re-arms its timer. mu must be held.
func (s *kioskService) flashAdded(sess *kioskSession) {
	if sess.addedToken != nil {
		sess.addedToken.Cancel()
	}
	sess.justAdded = true
	sess.addedGen++

	id, gen := sess.id, sess.addedGen
	sess.addedToken = s.scheduler.After(s.opts.AddedIndicator, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if cur, ok := s.sessions[id]; ok && cur.addedGen == gen {
			cur.justAdded = false
			cur.addedToken = nil
		}
	})
}

func (s *kioskService) AdjustLine(ctx context.Context, sessionID, lineID string, delta int) (*model.KioskView, error) {
	return s.mutate(sessionID, func(sess *kioskSession) {
		sess.lines = sess.lines.AdjustQuantity(lineID, delta)
	})
}

func (s *kioskService) RemoveLine(ctx context.Context, sessionID, lineID string) (*model.KioskView, error) {
	return s.mutate(sessionID, func(sess *kioskSession) {
		sess.lines = sess.lines.Remove(lineID)
	})
}

func (s *kioskService) ClearCart(ctx context.Context, sessionID string) (*model.KioskView, error) {
	return s.mutate(sessionID, func(sess *kioskSession) {
		sess.lines = sess.lines.Clear()
	})
}

func (s *kioskService) SetFulfilment(ctx context.Context, sessionID string, req *model.FulfilmentRequest) (*model.KioskView, error) {
	if !req.Type.Valid() {
		return nil, model.ErrInvalidFulfilment
	}
	return s.mutate(sessionID, func(sess *kioskSession) {
		sess.fulfilment = req.Type
		sess.tableNumber = strings.TrimSpace(req.TableNumber)
		if req.Type == model.FulfilmentTakeaway {
			sess.tableNumber = ""
		}
	})
}

func (s *kioskService) Navigate(ctx context.Context, sessionID, view string) (*model.KioskView, error) {
	if view != model.ViewMenu && view != model.ViewCart {
		return nil, model.NewDomainError(model.ErrCodeValidation, "View must be menu or cart")
	}
	return s.mutate(sessionID, func(sess *kioskSession) {
		if sess.navToken != nil {
			sess.navToken.Cancel()
			sess.navToken = nil
			sess.navGen++
		}
		sess.view = view
	})
}

func (s *kioskService) Confirm(ctx context.Context, sessionID string) (*model.ConfirmedOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	if sess.lines.IsEmpty() {
		return nil, model.ErrEmptyOrder
	}
	if !sess.fulfilment.Valid() {
		return nil, model.ErrInvalidFulfilment
	}
	if sess.fulfilment == model.FulfilmentDineIn && sess.tableNumber == "" {
		s.logger.Debug().Str("session_id", sessionID).Msg("dine-in confirmation without table number")
		return nil, model.ErrTableNumberRequired
	}

	totals := s.calc.Totals(sess.lines.Lines())
	confirmed := s.orders.Append(model.ConfirmedOrder{
		Channel:     model.ChannelKiosk,
		Lines:       sess.lines.Snapshot(),
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		Total:       totals.Total,
		Status:      model.StatusPending,
		Fulfilment:  sess.fulfilment,
		TableNumber: sess.tableNumber,
	})

	sess.lines = sess.lines.Clear()
	sess.view = model.ViewConfirmed
	sess.lastOrder = &confirmed
	sess.fulfilment = model.FulfilmentDineIn
	sess.tableNumber = ""
	s.scheduleReturnToMenu(sess)

	if s.metrics != nil {
		s.metrics.OrdersConfirmed.WithLabelValues(string(model.ChannelKiosk)).Inc()
		s.metrics.OrderValue.WithLabelValues(string(model.ChannelKiosk)).Observe(confirmed.Total.InexactFloat64())
	}
	s.logger.Info().
		Str("session_id", sessionID).
		Str("order_id", confirmed.ID.String()).
		Str("order_number", confirmed.Number).
		Str("fulfilment", string(confirmed.Fulfilment)).
		Str("total", confirmed.Total.StringFixed(2)).
		Msg("kiosk order confirmed")

	out := confirmed.Clone()
	return &out, nil
}

// scheduleReturnToMenu arms the post-confirmation navigation. mu must be held.
func (s *kioskService) scheduleReturnToMenu(sess *kioskSession) {
	if sess.navToken != nil {
		sess.navToken.Cancel()
	}
	sess.navGen++

	id, gen := sess.id, sess.navGen
	sess.navToken = s.scheduler.After(s.opts.ReturnToMenu, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if cur, ok := s.sessions[id]; ok && cur.navGen == gen && cur.view == model.ViewConfirmed {
			cur.view = model.ViewMenu
			cur.navToken = nil
		}
	})
}

// mutate applies fn to a session under the write lock and returns the new view.
func (s *kioskService) mutate(sessionID string, fn func(*kioskSession)) (*model.KioskView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	fn(sess)
	return s.viewOf(sess), nil
}

// viewOf must be called with mu held.
func (s *kioskService) viewOf(sess *kioskSession) *model.KioskView {
	lines := sess.lines.Snapshot()
	view := &model.KioskView{
		SessionID:   sess.id,
		View:        sess.view,
		Lines:       lines,
		ItemCount:   sess.lines.ItemCount(),
		Totals:      pricing.RoundTotals(s.calc.Totals(lines)),
		Fulfilment:  sess.fulfilment,
		TableNumber: sess.tableNumber,
		JustAdded:   sess.justAdded,
	}
	if sess.lastOrder != nil {
		o := sess.lastOrder.Clone()
		view.LastOrder = &o
	}
	return view
}
