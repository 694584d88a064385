package render

import (
	"strconv"
	"strings"

	"github.com/pawansinha0612/indian-stock-api/internal/domain/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const currencySymbol = "₹"

// inr formats numbers with Indian digit grouping (lakh/crore style),
// e.g. 1234567.89 renders as 12,34,567.89.
var inr = message.NewPrinter(language.MustParse("en-IN"))

// formatCurrency renders a price in INR with locale grouping and two
// fraction digits. The upstream reports missing prices as null, and some
// feeds as 0; both mean "not provided" and collapse to the placeholder.
func formatCurrency(v *float64) string {
	if v == nil || *v == 0 {
		return Placeholder
	}
	return currencySymbol + inr.Sprint(number.Decimal(*v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// formatNearness renders a percentage in its shortest decimal form
// ("12.5%", "0%"). Unknown nearness renders the placeholder.
func formatNearness(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return formatFloat(*v) + "%"
}

// formatEvents joins upcoming events as "{type} on {date}" pairs,
// comma-separated, preserving order.
func formatEvents(events []models.StockEvent) string {
	if len(events) == 0 {
		return NoEvents
	}
	parts := make([]string, 0, len(events))
	for _, ev := range events {
		parts = append(parts, ev.Type+" on "+ev.Date)
	}
	return strings.Join(parts, ", ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
