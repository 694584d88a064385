package models

// Index identifies one stock index the dashboard renders.
//
// Fields:
//   - ID: canonical identifier, also used for export file names.
//   - Label: display name shown in page titles and the status line.
//   - DataPath: upstream API path serving the index envelope.
//   - PagePath: route under which the rendered dashboard page is served.
type Index struct {
	ID       string
	Label    string
	DataPath string
	PagePath string
}

// Registered indices. The upstream market-data API serves one envelope
// per index under /api/historical/{id}.
var (
	Nifty50 = Index{
		ID:       "NIFTY50",
		Label:    "NIFTY50",
		DataPath: "/api/historical/NIFTY50",
		PagePath: "/",
	}

	Sensex = Index{
		ID:       "SENSEX",
		Label:    "SENSEX",
		DataPath: "/api/historical/SENSEX",
		PagePath: "/sensex",
	}
)

// Indices returns all registered indices in display order.
func Indices() []Index {
	return []Index{Nifty50, Sensex}
}
