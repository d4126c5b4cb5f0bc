package fetch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dnldd/timing/shared"
	"github.com/tidwall/gjson"
)

// FileSource serves daily history from a json file keyed by symbol, letting
// the service run offline against captured data.
type FileSource struct {
	histories map[string][]shared.Candlestick
}

// Ensure the FileSource implements the HistoryFetcher interface.
var _ shared.HistoryFetcher = (*FileSource)(nil)

// NewFileSource loads daily history from the json file at the provided
// path. The file holds an object keyed by symbol, each value an array of
// daily bars.
func NewFileSource(path string) (*FileSource, error) {
	readb, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading history from file with path '%s': %w", path, err)
	}

	b := gjson.ParseBytes(readb)

	source := &FileSource{
		histories: make(map[string][]shared.Candlestick),
	}

	var parseErr error
	b.ForEach(func(key gjson.Result, value gjson.Result) bool {
		symbol := key.String()

		candles, err := shared.ParseCandlesticks(value.Array(), symbol)
		if err != nil {
			parseErr = fmt.Errorf("parsing candlesticks for %s: %w", symbol, err)
			return false
		}

		shared.SortCandlesticks(candles)

		err = shared.ValidateSeries(candles)
		if err != nil {
			parseErr = fmt.Errorf("validating series for %s: %w", symbol, err)
			return false
		}

		source.histories[symbol] = candles
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return source, nil
}

// FetchDailyHistory serves the captured history for the provided symbol,
// clipped to the provided time range.
func (f *FileSource) FetchDailyHistory(ctx context.Context, symbol string, start time.Time, end time.Time) ([]shared.Candlestick, error) {
	candles := f.histories[symbol]

	clipped := make([]shared.Candlestick, 0, len(candles))
	for idx := range candles {
		if candles[idx].Date.Before(start) {
			continue
		}
		if !end.IsZero() && candles[idx].Date.After(end) {
			continue
		}
		clipped = append(clipped, candles[idx])
	}

	if len(clipped) == 0 {
		return nil, fmt.Errorf("fetching daily history for %s: %w", symbol, shared.ErrNoData)
	}

	return clipped, nil
}
