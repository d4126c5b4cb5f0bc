package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/dnldd/timing/shared"
	"github.com/peterldowns/testy/assert"
)

func TestFormURL(t *testing.T) {
	cfg := &FMPConfig{
		APIKey:  "key",
		BaseURL: "http://base",
	}

	fc := NewFMPClient(cfg)

	// Ensure urls can be formed accurately.
	params := url.Values{}
	params.Add("a", "bbb")
	params.Add("b", "ccc")

	formedURL := fc.formURL("/path", params.Encode())
	assert.Equal(t, formedURL, "http://base/path?a=bbb&b=ccc")
}

func TestFetchDailyHistory(t *testing.T) {
	payload := `[{"symbol":"SPY","date":"2025-02-05","open":12,"high":13,"low":10,"close":11,"volume":300},
	{"symbol":"SPY","date":"2025-02-04","open":10,"high":15,"low":8,"close":12,"volume":500}]`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("symbol") {
		case "SPY":
			w.Write([]byte(payload))
		default:
			w.Write([]byte("[]"))
		}
	}))
	defer srv.Close()

	fc := NewFMPClient(&FMPConfig{APIKey: "key", BaseURL: srv.URL})

	start := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.February, 6, 0, 0, 0, 0, time.UTC)

	// Ensure fetched bars are parsed and ordered by ascending date.
	candles, err := fc.FetchDailyHistory(context.Background(), "SPY", start, end)
	assert.NoError(t, err)
	assert.Equal(t, len(candles), 2)
	assert.Equal(t, candles[0].Date.Day(), 4)
	assert.Equal(t, candles[1].Date.Day(), 5)
	assert.Equal(t, candles[0].Close, float64(12))
	assert.Equal(t, candles[0].Symbol, "SPY")

	// Ensure an empty payload surfaces as the no data condition.
	_, err = fc.FetchDailyHistory(context.Background(), "UNKNOWN", start, end)
	assert.Error(t, err)
	assert.Equal(t, errors.Is(err, shared.ErrNoData), true)
}

func TestFormURLConcurrent(t *testing.T) {
	fc := NewFMPClient(&FMPConfig{APIKey: "key", BaseURL: "http://base"})

	// Ensure concurrent callers form their urls independently.
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := 0; idx < 50; idx++ {
				formedURL := fc.formURL("/path", "a=bbb")
				if formedURL != "http://base/path?a=bbb" {
					t.Errorf("malformed url: %s", formedURL)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestFetchDailyHistoryStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "limit reached", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	fc := NewFMPClient(&FMPConfig{APIKey: "key", BaseURL: srv.URL})

	// Ensure a provider error status surfaces as an error, not a crash.
	_, err := fc.FetchDailyHistory(context.Background(), "SPY", time.Time{}, time.Time{})
	assert.Error(t, err)
}
