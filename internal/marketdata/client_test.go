package marketdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pawansinha0612/indian-stock-api/config"
	"github.com/pawansinha0612/indian-stock-api/internal/domain/models"
)

func newTestClient(baseURL string) Client {
	return NewHTTPClient(config.UpstreamConfig{BaseURL: baseURL, Timeout: 2 * time.Second})
}

const envelopeJSON = `{
  "status": "success",
  "index": "NIFTY50",
  "total_constituents": 50,
  "total_stocks_fetched": 2,
  "data": [
    {
      "symbol": "RELIANCE",
      "name": "Reliance Industries Limited",
      "lastPrice": 2850.55,
      "high52Week": 3217.6,
      "low52Week": 2220.3,
      "lowNearnessPercentage": 63.2,
      "upcomingEvents": [{"type": "Dividend", "date": "12-Sep-2025"}],
      "detailLink": "https://www.nseindia.com/get-quotes/equity?symbol=RELIANCE"
    },
    {
      "symbol": "TCS",
      "name": "Tata Consultancy Services",
      "lastPrice": null,
      "high52Week": null,
      "low52Week": null,
      "lowNearnessPercentage": null,
      "upcomingEvents": [],
      "detailLink": "https://www.nseindia.com/get-quotes/equity?symbol=TCS"
    }
  ]
}`

func TestIndexSnapshot_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != models.Nifty50.DataPath {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("unexpected Accept header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(envelopeJSON))
	}))
	defer srv.Close()

	env, err := newTestClient(srv.URL).IndexSnapshot(context.Background(), models.Nifty50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Index != "NIFTY50" || env.TotalConstituents != 50 || env.Status != "success" {
		t.Fatalf("unexpected envelope header: %+v", env)
	}
	if len(env.Data) != 2 {
		t.Fatalf("expected 2 records, got %d", len(env.Data))
	}

	first := env.Data[0]
	if first.LastPrice == nil || *first.LastPrice != 2850.55 {
		t.Fatalf("unexpected lastPrice: %+v", first.LastPrice)
	}
	if len(first.UpcomingEvents) != 1 || first.UpcomingEvents[0].Type != "Dividend" {
		t.Fatalf("unexpected events: %+v", first.UpcomingEvents)
	}

	second := env.Data[1]
	if second.LastPrice != nil || second.High52Week != nil || second.LowNearnessPercentage != nil {
		t.Fatalf("null numerics should decode to nil pointers: %+v", second)
	}
}

func TestIndexSnapshot_UpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).IndexSnapshot(context.Background(), models.Nifty50)
	if err == nil {
		t.Fatalf("expected error for 500 response")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T: %v", err, err)
	}
	if statusErr.Code != http.StatusInternalServerError {
		t.Fatalf("expected code 500, got %d", statusErr.Code)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("error message should carry the status code: %q", err.Error())
	}
}

func TestIndexSnapshot_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"index": "NIFTY50", "data": [`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).IndexSnapshot(context.Background(), models.Nifty50)
	if err == nil {
		t.Fatalf("expected decode error for truncated body")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Fatalf("decode failure must not be a StatusError: %v", err)
	}
}

func TestIndexSnapshot_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before the call

	_, err := newTestClient(srv.URL).IndexSnapshot(context.Background(), models.Nifty50)
	if err == nil {
		t.Fatalf("expected transport error against closed server")
	}
}

func TestPing(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"ok", http.StatusOK, false},
		{"client error still reachable", http.StatusNotFound, false},
		{"server error", http.StatusServiceUnavailable, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
			}))
			defer srv.Close()

			err := newTestClient(srv.URL).Ping(context.Background())
			if c.wantErr && err == nil {
				t.Fatalf("expected error for status %d", c.status)
			}
			if !c.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPing_Down(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	if err := newTestClient(srv.URL).Ping(context.Background()); err == nil {
		t.Fatalf("expected error when upstream is down")
	}
}
