package shared

import (
	"context"
	"time"
)

// HistoryFetcher defines the requirements for fetching daily market history.
type HistoryFetcher interface {
	// FetchDailyHistory fetches daily historical bars for the provided
	// symbol over the provided time range, ordered by ascending date.
	FetchDailyHistory(ctx context.Context, symbol string, start time.Time, end time.Time) ([]Candlestick, error)
}
