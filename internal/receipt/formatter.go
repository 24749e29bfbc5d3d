// Package receipt renders confirmed orders as printable text and delivers
// them to printers, a spool directory or an S3 archive.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"cafe-pos/internal/model"
	"cafe-pos/internal/pricing"

	"github.com/shopspring/decimal"
)

// Receipt is the rendered text for one order.
type Receipt struct {
	OrderID string `json:"orderId"`
	Number  string `json:"number"`
	Text    string `json:"text"`
}

// Formatter renders fixed-width receipts.
type Formatter struct {
	StoreName string
	Tagline   string
	Footer    string
	Width     int
	Location  *time.Location
	// Currency is the suffix per channel, e.g. "EGP". Missing channels print bare amounts.
	Currency map[model.Channel]string
}

// DefaultFormatter returns the formatter used when nothing is configured.
func DefaultFormatter() Formatter {
	return Formatter{
		StoreName: "Hook",
		Tagline:   "Premium Café",
		Footer:    "Thank you for choosing Hook",
		Width:     40,
		Location:  time.Local,
		Currency: map[model.Channel]string{
			model.ChannelKiosk:    "USD",
			model.ChannelTerminal: "EGP",
		},
	}
}

// Format renders order. Amounts are the values stored on the order; nothing
// is recomputed.
func (f Formatter) Format(order model.ConfirmedOrder) Receipt {
	width := f.Width
	if width <= 0 {
		width = 40
	}
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	currency := f.Currency[order.Channel]
	money := func(d decimal.Decimal) string {
		return pricing.Format(d, currency)
	}

	var lines []string
	lines = append(lines, strings.Repeat("═", width))
	lines = append(lines, center(f.StoreName, width))
	if f.Tagline != "" {
		lines = append(lines, center(f.Tagline, width))
	}
	lines = append(lines, strings.Repeat("═", width))
	lines = append(lines, fmt.Sprintf("Order #: %s", order.Number))
	lines = append(lines, fmt.Sprintf("Date: %s", order.CreatedAt.In(loc).Format("01/02/2006, 03:04 PM")))
	if order.PaymentMethod != "" {
		lines = append(lines, fmt.Sprintf("Payment: %s", order.PaymentMethod))
	}
	switch order.Fulfilment {
	case model.FulfilmentDineIn:
		lines = append(lines, fmt.Sprintf("Dine in, table %s", order.TableNumber))
	case model.FulfilmentTakeaway:
		lines = append(lines, "Takeaway")
	}
	lines = append(lines, strings.Repeat("─", width))

	for _, l := range order.Lines {
		lines = append(lines, l.Name)
		detail := fmt.Sprintf("%d", l.Quantity)
		if l.Size != "" {
			detail = fmt.Sprintf("%s × %d", l.Size, l.Quantity)
		}
		lines = append(lines, columns("  "+detail, money(l.LineTotal()), width))
		if len(l.Addons) > 0 {
			lines = append(lines, "  + "+strings.Join(l.Addons, ", "))
		}
	}

	lines = append(lines, strings.Repeat("─", width))
	if !order.Tax.IsZero() {
		lines = append(lines, columns("Subtotal", money(order.Subtotal), width))
		lines = append(lines, columns("Tax", money(order.Tax), width))
	}
	lines = append(lines, columns("TOTAL", money(order.Total), width))
	lines = append(lines, strings.Repeat("═", width))
	if f.Footer != "" {
		lines = append(lines, center(f.Footer, width))
		lines = append(lines, strings.Repeat("═", width))
	}

	return Receipt{
		OrderID: order.ID.String(),
		Number:  order.Number,
		Text:    strings.Join(lines, "\n") + "\n",
	}
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

func columns(left, right string, width int) string {
	gap := width - len([]rune(left)) - len([]rune(right))
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
