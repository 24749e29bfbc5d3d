package receipt

import (
	"context"
	"errors"
	"testing"

	"cafe-pos/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPrinter is a mock implementation of Printer.
type MockPrinter struct {
	mock.Mock
	name string
}

func (m *MockPrinter) Name() string { return m.name }

func (m *MockPrinter) Print(ctx context.Context, r Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func TestDispatcher_BestEffort(t *testing.T) {
	broken := &MockPrinter{name: "broken"}
	broken.On("Print", mock.Anything, mock.Anything).Return(errors.New("paper jam"))
	working := &MockPrinter{name: "working"}
	working.On("Print", mock.Anything, mock.MatchedBy(func(r Receipt) bool {
		return r.Number == "ORD-000007"
	})).Return(nil)

	m := metrics.New()
	d := NewDispatcher(testFormatter(), []Printer{broken, working}, m, zerolog.Nop())

	r, failed := d.Dispatch(context.Background(), terminalOrder())

	assert.Equal(t, 1, failed)
	assert.Equal(t, "ORD-000007", r.Number)
	assert.Contains(t, r.Text, "Latte")
	broken.AssertExpectations(t)
	working.AssertExpectations(t)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ReceiptsPrinted.WithLabelValues("broken", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ReceiptsPrinted.WithLabelValues("working", "ok")))
}

func TestDispatcher_RenderDoesNotPrint(t *testing.T) {
	p := &MockPrinter{name: "p"}
	d := NewDispatcher(testFormatter(), []Printer{p}, nil, zerolog.Nop())

	r := d.Render(terminalOrder())

	assert.Equal(t, "ORD-000007", r.Number)
	p.AssertNotCalled(t, "Print", mock.Anything, mock.Anything)
}
