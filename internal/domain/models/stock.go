package models

// StockEvent is a single upcoming corporate event attached to a stock,
// as delivered by the market-data API.
type StockEvent struct {
	Type string `json:"type" example:"Dividend"`
	Date string `json:"date" example:"12-Sep-2025"`
}

// StockSnapshot represents one constituent row of an index envelope.
//
// Numeric fields are pointers because the upstream API emits null when a
// value could not be computed (missing quote, price outside the 52-week
// band, zero range). Consumers must treat nil as "not available".
//
// Fields:
//   - Symbol: exchange ticker symbol (e.g., "RELIANCE").
//   - Name: company display name.
//   - LastPrice: last traded price in INR, nil when unknown.
//   - High52Week / Low52Week: 52-week band in INR, nil when unknown.
//   - LowNearnessPercentage: position of LastPrice inside the band as a
//     percentage of the range (0 = at the low), nil when not computable.
//   - UpcomingEvents: ordered corporate events, possibly empty.
//   - DetailLink: absolute URL of the exchange quote page for the symbol.
type StockSnapshot struct {
	Symbol                string       `json:"symbol" example:"RELIANCE"`
	Name                  string       `json:"name" example:"Reliance Industries Limited"`
	LastPrice             *float64     `json:"lastPrice" example:"2850.55"`
	High52Week            *float64     `json:"high52Week" example:"3217.60"`
	Low52Week             *float64     `json:"low52Week" example:"2220.30"`
	LowNearnessPercentage *float64     `json:"lowNearnessPercentage" example:"18.75"`
	UpcomingEvents        []StockEvent `json:"upcomingEvents"`
	DetailLink            string       `json:"detailLink" example:"https://www.nseindia.com/get-quotes/equity?symbol=RELIANCE"`
}

// IndexEnvelope is the top-level JSON document served by the market-data
// API for one index.
//
// TotalConstituents may be absent in older API responses; zero means
// "not reported" and consumers fall back to len(Data). Status and
// TotalFetched are informational and carried through unchanged.
type IndexEnvelope struct {
	Status            string          `json:"status" example:"success"`
	Index             string          `json:"index" example:"NIFTY50"`
	TotalConstituents int             `json:"total_constituents" example:"50"`
	TotalFetched      int             `json:"total_stocks_fetched" example:"50"`
	Data              []StockSnapshot `json:"data"`
}
