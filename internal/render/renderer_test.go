package render

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/pawansinha0612/indian-stock-api/internal/domain/models"
)

func testEnvelope() *models.IndexEnvelope {
	return &models.IndexEnvelope{
		Index:             "NIFTY50",
		TotalConstituents: 2,
		Data: []models.StockSnapshot{
			{
				Symbol:                "RELIANCE",
				Name:                  "Reliance Industries Limited",
				LastPrice:             f64(2850.55),
				High52Week:            f64(3217.6),
				Low52Week:             f64(2220.3),
				LowNearnessPercentage: f64(18.75),
				UpcomingEvents:        []models.StockEvent{{Type: "Dividend", Date: "12-Sep-2025"}},
				DetailLink:            "https://www.nseindia.com/get-quotes/equity?symbol=RELIANCE",
			},
			{
				Symbol:     "TCS",
				Name:       "Tata Consultancy Services",
				DetailLink: "https://www.nseindia.com/get-quotes/equity?symbol=TCS",
			},
		},
	}
}

func TestNew_DefaultBundle(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestNew_MissingTarget(t *testing.T) {
	cases := []struct {
		name    string
		bundle  fstest.MapFS
		missing string
	}{
		{
			name: "no status target",
			bundle: fstest.MapFS{
				"templates/dashboard.html.tmpl": &fstest.MapFile{
					Data: []byte(`{{define "stock-card-grid"}}{{end}}<html></html>`),
				},
			},
			missing: TargetStatus,
		},
		{
			name: "no grid target",
			bundle: fstest.MapFS{
				"templates/dashboard.html.tmpl": &fstest.MapFile{
					Data: []byte(`{{define "status-message"}}{{end}}<html></html>`),
				},
			},
			missing: TargetCardGrid,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(WithTemplatesFS(c.bundle))
			if err == nil {
				t.Fatalf("expected construction to fail")
			}
			if !strings.Contains(err.Error(), c.missing) {
				t.Fatalf("error %q does not name missing target %q", err.Error(), c.missing)
			}
		})
	}
}

func TestRender_Dashboard(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := r.Render(BuildPage(models.Nifty50, testEnvelope()))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`id="stock-card-grid"`,
		`id="status-message"`,
		"Displaying data for 2 NIFTY50 stocks. (Near-Low Threshold: 20% of range)",
		`class="stock-card near-low"`,
		"₹2,850.55",
		"₹3,217.60",
		"18.75%",
		"Dividend on 12-Sep-2025",
		`href="https://www.nseindia.com/get-quotes/equity?symbol=RELIANCE"`,
		"N/A",
		"None",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered page missing %q:\n%s", want, html)
		}
	}

	if got := strings.Count(html, `<article class="stock-card`); got != 2 {
		t.Fatalf("expected 2 cards, found %d", got)
	}
	if strings.Index(html, "RELIANCE") > strings.Index(html, "TCS") {
		t.Fatalf("cards out of order")
	}
	// only the first card qualifies for the highlight
	if got := strings.Count(html, "near-low"); got != 1 {
		t.Fatalf("expected exactly 1 highlighted card, found %d", got)
	}
}

func TestRender_ErrorPage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view := BuildErrorPage(models.Nifty50, errors.New("upstream returned status 500 for http://host/api/historical/NIFTY50"))
	out, err := r.Render(view)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, `class="error-message"`) {
		t.Fatalf("error page missing error element:\n%s", html)
	}
	if !strings.Contains(html, "500") {
		t.Fatalf("error page must surface the upstream status code:\n%s", html)
	}
	if !strings.Contains(html, "Error loading data.") {
		t.Fatalf("status element missing error indicator:\n%s", html)
	}
	if strings.Contains(html, "<article") {
		t.Fatalf("error page must not contain stock cards:\n%s", html)
	}
}

func TestRender_EscapesUntrustedFields(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	env := &models.IndexEnvelope{
		Index: "NIFTY50",
		Data: []models.StockSnapshot{
			{
				Symbol:     "EVIL",
				Name:       `<script>alert("x")</script>`,
				DetailLink: "javascript:alert(1)",
			},
		},
	}

	out, err := r.Render(BuildPage(models.Nifty50, env))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	html := string(out)

	if strings.Contains(html, "<script>alert") {
		t.Fatalf("company name not escaped:\n%s", html)
	}
	if strings.Contains(html, `href="javascript:`) {
		t.Fatalf("unsafe URL scheme not neutralized:\n%s", html)
	}
}
