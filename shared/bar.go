package shared

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// DateLayout is the format layout for parsing daily bar dates.
	DateLayout = "2006-01-02"
)

// ErrNoData indicates a market data source returned no usable history.
var ErrNoData = errors.New("no market data")

// Candlestick represents a unit daily candlestick for a symbol.
type Candlestick struct {
	Open   float64
	Low    float64
	High   float64
	Close  float64
	Volume float64
	Date   time.Time

	// Metadata.
	Symbol string
}

// ParseCandlesticks parses daily candlesticks from the provided json data.
func ParseCandlesticks(data []gjson.Result, symbol string) ([]Candlestick, error) {
	candles := make([]Candlestick, len(data))

	for idx := range data {
		var candle Candlestick

		candle.Open = data[idx].Get("open").Float()
		candle.Low = data[idx].Get("low").Float()
		candle.High = data[idx].Get("high").Float()
		candle.Close = data[idx].Get("close").Float()
		candle.Volume = data[idx].Get("volume").Float()
		candle.Symbol = symbol

		dt, err := time.Parse(DateLayout, data[idx].Get("date").String())
		if err != nil {
			return nil, fmt.Errorf("parsing candlestick date: %w", err)
		}

		candle.Date = dt
		candles[idx] = candle
	}

	return candles, nil
}

// SortCandlesticks orders the provided candlesticks by ascending date.
func SortCandlesticks(candles []Candlestick) {
	slices.SortFunc(candles, func(a, b Candlestick) int {
		return a.Date.Compare(b.Date)
	})
}

// ValidateSeries asserts the provided series is ordered by strictly
// increasing dates, with no two bars sharing a date.
func ValidateSeries(candles []Candlestick) error {
	for idx := 1; idx < len(candles); idx++ {
		if !candles[idx].Date.After(candles[idx-1].Date) {
			return fmt.Errorf("series dates must be strictly increasing, got %s after %s",
				candles[idx].Date.Format(DateLayout), candles[idx-1].Date.Format(DateLayout))
		}
	}

	return nil
}
