package render

import (
	"fmt"

	"github.com/pawansinha0612/indian-stock-api/internal/domain/models"
)

// Display constants of the dashboard contract. The threshold appears in
// the status line text, so it is fixed at build time rather than loaded
// from the environment.
const (
	// NearLowThreshold is the lowNearnessPercentage value at or below
	// which a stock is flagged as trading near its 52-week low.
	NearLowThreshold float64 = 20

	// Placeholder stands in for any value the upstream could not provide.
	Placeholder = "N/A"

	// NoEvents is shown when a stock has no upcoming corporate events.
	NoEvents = "None"
)

// CardView is the fully formatted projection of one StockSnapshot.
// All fields are display-ready strings; formatting decisions never leak
// into the templates.
type CardView struct {
	Symbol     string
	Name       string
	LastPrice  string
	High52Week string
	Low52Week  string
	Nearness   string
	Events     string
	DetailLink string
	NearLow    bool
}

// PageView is the complete view model for one dashboard page.
//
// A non-empty ErrMessage switches the page to its error variant: the card
// grid is replaced by the message and Cards is ignored. The two states are
// mutually exclusive so a failed cycle can never mix cards with errors.
type PageView struct {
	Title      string
	IndexID    string
	Status     string
	Cards      []CardView
	ErrMessage string
}

// BuildPage projects an index envelope into a renderable page view.
// Cards follow the envelope's data order exactly, one per record.
func BuildPage(index models.Index, env *models.IndexEnvelope) PageView {
	total := env.TotalConstituents
	if total == 0 {
		total = len(env.Data)
	}

	cards := make([]CardView, 0, len(env.Data))
	for _, s := range env.Data {
		cards = append(cards, buildCard(s))
	}

	return PageView{
		Title:   pageTitle(index),
		IndexID: index.ID,
		Status:  statusLine(total, env.Index),
		Cards:   cards,
	}
}

// BuildErrorPage projects a failed fetch into the error variant of the
// page. The message embeds the failure reason verbatim so upstream status
// codes stay visible to the reader.
func BuildErrorPage(index models.Index, err error) PageView {
	return PageView{
		Title:      pageTitle(index),
		IndexID:    index.ID,
		Status:     "Error loading data.",
		ErrMessage: fmt.Sprintf("Failed to load stock data: %v", err),
	}
}

func pageTitle(index models.Index) string {
	return index.Label + " Stock Dashboard"
}

// statusLine reports how many constituents are displayed and the highlight
// threshold. Without an index name the subject falls back to the generic
// "Stocks", e.g. "Displaying data for 3 Stocks. (Near-Low Threshold: 20%
// of range)".
func statusLine(total int, indexName string) string {
	subject := "Stocks"
	if indexName != "" {
		subject = indexName + " stocks"
	}
	return fmt.Sprintf("Displaying data for %d %s. (Near-Low Threshold: %s%% of range)",
		total, subject, formatFloat(NearLowThreshold))
}

func buildCard(s models.StockSnapshot) CardView {
	return CardView{
		Symbol:     s.Symbol,
		Name:       s.Name,
		LastPrice:  formatCurrency(s.LastPrice),
		High52Week: formatCurrency(s.High52Week),
		Low52Week:  formatCurrency(s.Low52Week),
		Nearness:   formatNearness(s.LowNearnessPercentage),
		Events:     formatEvents(s.UpcomingEvents),
		DetailLink: s.DetailLink,
		NearLow:    nearLow(s.LowNearnessPercentage),
	}
}

// nearLow applies the highlight rule: nearness known and at or below the
// threshold. The boundary value itself counts as near.
func nearLow(v *float64) bool {
	return v != nil && *v <= NearLowThreshold
}
