package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dnldd/timing/shared"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the default FMP service endpoint.
	DefaultBaseURL = "https://financialmodelingprep.com/stable"
	// requestsPerMinute caps outbound requests to respect the provider's
	// rate limits.
	requestsPerMinute = 30
	// requestBurst is the number of requests allowed in quick succession.
	requestBurst = 5
)

// FMPConfig represents the configuration for the FMP client.
type FMPConfig struct {
	// APIKey is the FMP service API Key.
	APIKey string
	// BaseURL is the FMP service endpoint.
	BaseURL string
}

// FMPClient represents the Financial Modeling Preparation (FMP) API client.
// It is safe for concurrent use.
type FMPClient struct {
	cfg     *FMPConfig
	httpc   http.Client
	limiter *rate.Limiter
}

// Ensure the FMPClient implements the HistoryFetcher interface.
var _ shared.HistoryFetcher = (*FMPClient)(nil)

// NewFMPClient instantiates a new FMP client.
func NewFMPClient(cfg *FMPConfig) *FMPClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return &FMPClient{
		cfg:     cfg,
		httpc:   http.Client{Timeout: time.Second * 5},
		limiter: rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), requestBurst),
	}
}

// formURL creates full urls including parameters for the api.
func (c *FMPClient) formURL(path string, params string) string {
	var buf strings.Builder
	buf.WriteString(c.cfg.BaseURL)
	buf.WriteString(path)
	buf.WriteString("?")
	buf.WriteString(params)

	return buf.String()
}

// FetchDailyHistory fetches daily historical bars for the provided symbol
// over the provided time range, ordered by ascending date. An empty payload
// from the provider surfaces as the no data condition.
func (c *FMPClient) FetchDailyHistory(ctx context.Context, symbol string, start time.Time, end time.Time) ([]shared.Candlestick, error) {
	const dailyHistoricalPath = "/historical-price-eod/full"

	err := c.limiter.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("awaiting rate limiter: %w", err)
	}

	params := url.Values{}
	params.Add("symbol", symbol)
	params.Add("apikey", c.cfg.APIKey)
	params.Add("from", start.Format(shared.DateLayout))
	if !end.IsZero() {
		params.Add("to", end.Format(shared.DateLayout))
	}

	formedURL := c.formURL(dailyHistoricalPath, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, formedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating daily history request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching daily history for %s: %w", symbol, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching daily history for %s: unexpected status %s", symbol, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	data := gjson.ParseBytes(body).Array()
	if len(data) == 0 {
		return nil, fmt.Errorf("fetching daily history for %s: %w", symbol, shared.ErrNoData)
	}

	candles, err := shared.ParseCandlesticks(data, symbol)
	if err != nil {
		return nil, fmt.Errorf("parsing candlesticks for %s: %w", symbol, err)
	}

	// The provider returns most recent bars first.
	shared.SortCandlesticks(candles)

	err = shared.ValidateSeries(candles)
	if err != nil {
		return nil, fmt.Errorf("validating series for %s: %w", symbol, err)
	}

	return candles, nil
}
