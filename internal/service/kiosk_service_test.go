package service

import (
	"context"
	"testing"
	"time"

	"cafe-pos/internal/catalog"
	"cafe-pos/internal/metrics"
	"cafe-pos/internal/model"
	"cafe-pos/internal/order"
	"cafe-pos/internal/scheduler"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kioskFixture struct {
	svc     KioskService
	menu    *catalog.Menu
	history *order.History
	sched   *scheduler.Manual
	metrics *metrics.Metrics
}

func newKioskFixture(t *testing.T) *kioskFixture {
	t.Helper()
	f := &kioskFixture{
		menu:    catalog.NewKioskMenu(catalog.KioskSeed()),
		history: order.NewHistory(),
		sched:   scheduler.NewManual(),
		metrics: metrics.New(),
	}
	f.svc = NewKioskService(f.menu, f.history, f.sched, DefaultKioskOptions(), f.metrics, zerolog.Nop())
	return f
}

func (f *kioskFixture) open(t *testing.T) string {
	t.Helper()
	view, err := f.svc.OpenSession(context.Background())
	require.NoError(t, err)
	return view.SessionID
}

func (f *kioskFixture) add(t *testing.T, sid, itemID, size string, addons ...string) *model.KioskView {
	t.Helper()
	view, err := f.svc.AddItem(context.Background(), sid, &model.AddLineRequest{ItemID: itemID, Size: size, Addons: addons})
	require.NoError(t, err)
	return view
}

func TestKioskService_OpenSession(t *testing.T) {
	f := newKioskFixture(t)

	view, err := f.svc.OpenSession(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, model.ViewMenu, view.View)
	assert.Equal(t, model.FulfilmentDineIn, view.Fulfilment)
	assert.Empty(t, view.Lines)
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.ActiveSessions))
}

func TestKioskService_Menu(t *testing.T) {
	f := newKioskFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		category string
		want     string
		count    int
	}{
		{name: "default is All", category: "", want: model.CategoryAll, count: 12},
		{name: "all", category: model.CategoryAll, want: model.CategoryAll, count: 12},
		{name: "snacks", category: model.CategorySnacks, want: model.CategorySnacks, count: 4},
		{name: "desserts", category: model.CategoryDesserts, want: model.CategoryDesserts, count: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := f.svc.Menu(ctx, tt.category)

			require.NoError(t, err)
			assert.Equal(t, tt.want, view.Category)
			assert.Len(t, view.Items, tt.count)
			assert.Equal(t, []string{"All", "Beverages", "Snacks", "Desserts"}, view.Categories)
		})
	}

	_, err := f.svc.Menu(ctx, "Hot Coffee")
	assert.ErrorIs(t, err, model.ErrInvalidCategory)
}

func TestKioskService_AddItem_MergesAndPrices(t *testing.T) {
	f := newKioskFixture(t)
	sid := f.open(t)

	f.add(t, sid, "latte", "Large", "Oat Milk", "Extra Shot")
	view := f.add(t, sid, "latte", "Large", "Extra Shot", "Oat Milk")

	require.Len(t, view.Lines, 1)
	line := view.Lines[0]
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "Café Latte", line.Name)
	assert.Equal(t, "8.25", line.UnitPrice.StringFixed(2))
	assert.Equal(t, 2, view.ItemCount)
	assert.Equal(t, "16.50", view.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, "1.32", view.Totals.Tax.StringFixed(2))
	assert.Equal(t, "17.82", view.Totals.Total.StringFixed(2))
	assert.True(t, view.JustAdded)
}

func TestKioskService_AddItem_DefaultsToFirstSize(t *testing.T) {
	f := newKioskFixture(t)
	sid := f.open(t)

	f.add(t, sid, "cappuccino", "")
	view := f.add(t, sid, "cappuccino", "Small")

	require.Len(t, view.Lines, 1)
	assert.Equal(t, "Small", view.Lines[0].Size)
	assert.Equal(t, 2, view.Lines[0].Quantity)
}

func TestKioskService_AddItem_Errors(t *testing.T) {
	f := newKioskFixture(t)
	sid := f.open(t)
	ctx := context.Background()

	_, err := f.svc.AddItem(ctx, sid, &model.AddLineRequest{ItemID: "unknown"})
	assert.ErrorIs(t, err, model.ErrMenuItemNotFound)

	_, err = f.svc.AddItem(ctx, "missing", &model.AddLineRequest{ItemID: "latte"})
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	_, err = f.menu.Toggle("bagel")
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, sid, &model.AddLineRequest{ItemID: "bagel"})
	assert.ErrorIs(t, err, model.ErrItemUnavailable)
}

func TestKioskService_AddedIndicatorRearms(t *testing.T) {
	f := newKioskFixture(t)
	sid := f.open(t)
	ctx := context.Background()

	f.add(t, sid, "croissant", "")
	f.sched.Advance(500 * time.Millisecond)
	f.add(t, sid, "muffin", "")

	// The first timer was cancelled, so 800ms after the first add it is still lit.
	f.sched.Advance(400 * time.Millisecond)
	view, err := f.svc.View(ctx, sid)
	require.NoError(t, err)
	assert.True(t, view.JustAdded)

	f.sched.Advance(400 * time.Millisecond)
	view, err = f.svc.View(ctx, sid)
	require.NoError(t, err)
	assert.False(t, view.JustAdded)
}

func TestKioskService_AdjustRemoveClear(t *testing.T) {
	f := newKioskFixture(t)
	sid := f.open(t)
	ctx := context.Background()

	view := f.add(t, sid, "croissant", "")
	croissant := view.Lines[0].ID
	view = f.add(t, sid, "sandwich", "")
	sandwich := view.Lines[1].ID

	view, err := f.svc.AdjustLine(ctx, sid, croissant, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Lines[0].Quantity)

	view, err = f.svc.AdjustLine(ctx, sid, croissant, -3)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, sandwich, view.Lines[0].ID)

	view, err = f.svc.AdjustLine(ctx, sid, "unknown", 1)
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)

	view, err = f.svc.RemoveLine(ctx, sid, sandwich)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)

	f.add(t, sid, "muffin", "")
	view, err = f.svc.ClearCart(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, "0.00", view.Totals.Total.StringFixed(2))
}

func TestKioskService_Confirm_DineInNeedsTable(t *testing.T) {
	f := newKioskFixture(t)
	sid := f.open(t)
	ctx := context.Background()
	f.add(t, sid, "croissant", "")

	_, err := f.svc.SetFulfilment(ctx, sid, &model.FulfilmentRequest{Type: model.FulfilmentDineIn, TableNumber: "   "})
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, sid)

	assert.ErrorIs(t, err, model.ErrTableNumberRequired)
	assert.Equal(t, 0, f.history.Len())
	view, err := f.svc.View(ctx, sid)
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)
	assert.Equal(t, model.ViewMenu, view.View)
}

func TestKioskService_Confirm_Empty(t *testing.T) {
	f := newKioskFixture(t)
	sid := f.open(t)

	_, err := f.svc.Confirm(context.Background(), sid)

	assert.ErrorIs(t, err, model.ErrEmptyOrder)
}

func TestKioskService_Confirm_Success(t *testing.T) {
	f := newKioskFixture(t)
	sid := f.open(t)
	ctx := context.Background()

	// A prior order from another session stays intact.
	other := f.open(t)
	f.add(t, other, "tiramisu", "")
	_, err := f.svc.SetFulfilment(ctx, other, &model.FulfilmentRequest{Type: model.FulfilmentTakeaway})
	require.NoError(t, err)
	prior, err := f.svc.Confirm(ctx, other)
	require.NoError(t, err)

	f.add(t, sid, "cappuccino", "Small")
	f.add(t, sid, "croissant", "")
	f.add(t, sid, "chocolate-cake", "")
	_, err = f.svc.SetFulfilment(ctx, sid, &model.FulfilmentRequest{Type: model.FulfilmentDineIn, TableNumber: " 7 "})
	require.NoError(t, err)

	confirmed, err := f.svc.Confirm(ctx, sid)

	require.NoError(t, err)
	assert.Equal(t, model.ChannelKiosk, confirmed.Channel)
	assert.Equal(t, model.StatusPending, confirmed.Status)
	assert.Equal(t, "7", confirmed.TableNumber)
	assert.Equal(t, "14.75", confirmed.Subtotal.StringFixed(2))
	assert.Equal(t, "1.18", confirmed.Tax.StringFixed(2))
	assert.Equal(t, "15.93", confirmed.Total.StringFixed(2))
	assert.True(t, confirmed.Total.Equal(confirmed.Subtotal.Mul(decimal.RequireFromString("1.08"))))
	require.Len(t, confirmed.Lines, 3)

	orders := f.history.List()
	require.Len(t, orders, 2)
	assert.Equal(t, confirmed.ID, orders[0].ID)
	assert.Equal(t, prior.ID, orders[1].ID)
	assert.Len(t, orders[1].Lines, 1)

	view, err := f.svc.View(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, model.ViewConfirmed, view.View)
	require.NotNil(t, view.LastOrder)
	assert.Equal(t, confirmed.Number, view.LastOrder.Number)
	assert.Equal(t, model.FulfilmentDineIn, view.Fulfilment)
	assert.Empty(t, view.TableNumber)

	f.sched.Advance(2 * time.Second)
	view, err = f.svc.View(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, model.ViewMenu, view.View)

	assert.Equal(t, float64(2), testutil.ToFloat64(f.metrics.OrdersConfirmed.WithLabelValues("kiosk")))
}

func TestKioskService_AddAfterConfirmCancelsReturn(t *testing.T) {
	f := newKioskFixture(t)
	sid := f.open(t)
	ctx := context.Background()

	f.add(t, sid, "muffin", "")
	_, err := f.svc.SetFulfilment(ctx, sid, &model.FulfilmentRequest{Type: model.FulfilmentTakeaway})
	require.NoError(t, err)
	_, err = f.svc.Confirm(ctx, sid)
	require.NoError(t, err)

	f.sched.Advance(time.Second)
	view := f.add(t, sid, "bagel", "", "Avocado")
	assert.Equal(t, model.ViewMenu, view.View)
	assert.Nil(t, view.LastOrder)

	_, err = f.svc.Navigate(ctx, sid, model.ViewCart)
	require.NoError(t, err)

	f.sched.Advance(2 * time.Second)
	view, err = f.svc.View(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, model.ViewCart, view.View)
	assert.Len(t, view.Lines, 1)
}

func TestKioskService_Navigate(t *testing.T) {
	f := newKioskFixture(t)
	sid := f.open(t)
	ctx := context.Background()

	view, err := f.svc.Navigate(ctx, sid, model.ViewCart)
	require.NoError(t, err)
	assert.Equal(t, model.ViewCart, view.View)

	_, err = f.svc.Navigate(ctx, sid, "checkout")
	assert.Error(t, err)
}

func TestKioskService_SetFulfilment(t *testing.T) {
	f := newKioskFixture(t)
	sid := f.open(t)
	ctx := context.Background()

	view, err := f.svc.SetFulfilment(ctx, sid, &model.FulfilmentRequest{Type: model.FulfilmentTakeaway, TableNumber: "4"})
	require.NoError(t, err)
	assert.Equal(t, model.FulfilmentTakeaway, view.Fulfilment)
	assert.Empty(t, view.TableNumber)

	_, err = f.svc.SetFulfilment(ctx, sid, &model.FulfilmentRequest{Type: "delivery"})
	assert.ErrorIs(t, err, model.ErrInvalidFulfilment)
}

func TestKioskService_CloseSession(t *testing.T) {
	f := newKioskFixture(t)
	sid := f.open(t)
	ctx := context.Background()
	f.add(t, sid, "croissant", "")

	require.NoError(t, f.svc.CloseSession(ctx, sid))

	_, err := f.svc.View(ctx, sid)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	assert.ErrorIs(t, f.svc.CloseSession(ctx, sid), model.ErrSessionNotFound)
	assert.Equal(t, 0, f.sched.Pending())
	assert.Equal(t, float64(0), testutil.ToFloat64(f.metrics.ActiveSessions))
}
