package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"cafe-pos/internal/catalog"
	"cafe-pos/internal/handler"
	"cafe-pos/internal/metrics"
	"cafe-pos/internal/order"
	"cafe-pos/internal/receipt"
	"cafe-pos/internal/router"
	"cafe-pos/internal/scheduler"
	"cafe-pos/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// TestServer is the full HTTP stack over the built-in menus, with a manual
// clock for delayed effects and receipts spooled to a temp directory.
type TestServer struct {
	Handler   http.Handler
	Scheduler *scheduler.Manual
	History   *order.History
	Drawer    *RecordingDrawer
	Metrics   *metrics.Metrics
	SpoolDir  string
}

// RecordingDrawer remembers which orders opened the cash drawer.
type RecordingDrawer struct {
	mu     sync.Mutex
	opened []string
}

// Open records orderNumber.
func (d *RecordingDrawer) Open(_ context.Context, orderNumber string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opened = append(d.opened, orderNumber)
	return nil
}

// Opened returns the recorded order numbers.
func (d *RecordingDrawer) Opened() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.opened...)
}

// SetupTestServer wires every layer the way cmd/api does.
func SetupTestServer(t *testing.T) *TestServer {
	t.Helper()

	logger := zerolog.Nop()
	ctx := context.Background()

	kioskItems, err := catalog.LoadSource(ctx, catalog.NewFileLoader(logger), catalog.Source{
		Seed:     catalog.KioskSeed,
		Validate: catalog.ValidateKiosk,
	})
	require.NoError(t, err)
	terminalItems, err := catalog.LoadSource(ctx, catalog.NewFileLoader(logger), catalog.Source{
		Seed:     catalog.TerminalSeed,
		Validate: catalog.ValidateTerminal,
	})
	require.NoError(t, err)

	spool := t.TempDir()
	filePrinter, err := receipt.NewFilePrinter(spool, logger)
	require.NoError(t, err)

	ts := &TestServer{
		Scheduler: scheduler.NewManual(),
		History:   order.NewHistory(),
		Drawer:    &RecordingDrawer{},
		Metrics:   metrics.New(),
		SpoolDir:  spool,
	}

	terminalMenu := catalog.NewMenu(terminalItems, catalog.ValidateItem)
	dispatcher := receipt.NewDispatcher(
		receipt.DefaultFormatter(),
		[]receipt.Printer{receipt.NewLogPrinter(logger), filePrinter},
		ts.Metrics,
		logger,
	)

	kioskService := service.NewKioskService(catalog.NewKioskMenu(kioskItems), ts.History, ts.Scheduler,
		service.DefaultKioskOptions(), ts.Metrics, logger)
	terminalService := service.NewTerminalService(terminalMenu, ts.History, dispatcher, ts.Drawer, ts.Scheduler,
		service.DefaultTerminalOptions(), ts.Metrics, logger)
	menuService := service.NewMenuService(terminalMenu, logger)

	ts.Handler = router.New(router.Handlers{
		Kiosk:    handler.NewKioskHandler(kioskService, logger),
		Terminal: handler.NewTerminalHandler(terminalService, logger),
		Menu:     handler.NewMenuHandler(menuService, logger),
	}, ts.Metrics, logger)

	return ts
}

// Do sends a JSON request through the router and decodes the response into out
// when out is non-nil.
func (ts *TestServer) Do(t *testing.T, method, path string, body, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.Handler.ServeHTTP(w, req)

	if out != nil && w.Code < http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}
