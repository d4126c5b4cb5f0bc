package score

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dnldd/timing/indicator"
	"github.com/dnldd/timing/shared"
)

const (
	// buyCallPercentileLimit is the percentile at or above which a call
	// entry is signalled.
	buyCallPercentileLimit = 80
	// holdPercentileLimit is the percentile at or above which holding is
	// signalled.
	holdPercentileLimit = 50
)

// TradeSignal represents the trade classification of the latest bar.
type TradeSignal int

const (
	Avoid TradeSignal = iota
	Hold
	BuyCall
)

// String stringifies the provided trade signal.
func (s TradeSignal) String() string {
	switch s {
	case BuyCall:
		return "Buy Call"
	case Hold:
		return "Hold"
	case Avoid:
		return "Avoid"
	default:
		return "unknown"
	}
}

// MarshalJSON marshals the trade signal as its display string.
func (s TradeSignal) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON unmarshals the trade signal from its display string.
func (s *TradeSignal) UnmarshalJSON(b []byte) error {
	var str string
	err := json.Unmarshal(b, &str)
	if err != nil {
		return fmt.Errorf("unmarshalling trade signal: %w", err)
	}

	switch str {
	case "Buy Call":
		*s = BuyCall
	case "Hold":
		*s = Hold
	case "Avoid":
		*s = Avoid
	default:
		return fmt.Errorf("unknown trade signal %q", str)
	}

	return nil
}

// classify returns the trade signal for the provided percentile. Both
// boundaries are inclusive.
func classify(percentile float64) TradeSignal {
	switch {
	case percentile >= buyCallPercentileLimit:
		return BuyCall
	case percentile >= holdPercentileLimit:
		return Hold
	default:
		return Avoid
	}
}

// Config represents the scoring configuration.
type Config struct {
	// Weights are the signal weights for the composite timing score.
	Weights Weights
	// RankMode selects the percentile rank population for the ATR
	// percentile and the score percentile.
	RankMode indicator.RankMode
}

// Row represents one scored bar, keyed by its trading date.
type Row struct {
	Date        time.Time `json:"date"`
	TimingScore float64   `json:"timingScore"`
	Percentile  float64   `json:"percentile"`
}

// Snapshot represents the latest scored bar and its classification.
type Snapshot struct {
	Date        time.Time   `json:"date"`
	TimingScore float64     `json:"timingScore"`
	Percentile  float64     `json:"percentile"`
	Signal      TradeSignal `json:"signal"`
}

// ScoredSeries is the scored history for a symbol in a stable, serializable
// shape for presentation consumers.
type ScoredSeries struct {
	Symbol   string   `json:"symbol"`
	RankMode string   `json:"rankMode"`
	Rows     []Row    `json:"rows"`
	Latest   Snapshot `json:"latest"`
}

// timingScore combines the provided bar signals into the composite score,
// scaled to [0,100]. A bar with every signal raised scores exactly 100 and
// a bar with none scores exactly 0.
func timingScore(weights *Weights, signals *Signals, idx int) float64 {
	score := float64(0)
	if signals.EMA[idx] {
		score += 100 * weights.EMA
	}
	if signals.RSI[idx] {
		score += 100 * weights.RSI
	}
	if signals.Stoch[idx] {
		score += 100 * weights.Stoch
	}
	if signals.VWAP[idx] {
		score += 100 * weights.VWAP
	}
	if signals.IVP[idx] {
		score += 100 * weights.IVP
	}
	if signals.PC[idx] {
		score += 100 * weights.PC
	}

	return score
}

// Compute derives indicators and signals from the provided daily history
// and scores every bar. It is a pure function of its inputs: recomputing on
// identical input yields identical output.
func Compute(candles []shared.Candlestick, cfg *Config) (*ScoredSeries, error) {
	err := cfg.Weights.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating weights: %w", err)
	}

	set, err := indicator.Derive(candles, cfg.RankMode)
	if err != nil {
		return nil, fmt.Errorf("deriving indicators: %w", err)
	}

	signals := deriveSignals(set)

	scores := make(indicator.Series, len(candles))
	for idx := range scores {
		scores[idx] = timingScore(&cfg.Weights, signals, idx)
	}
	percentiles := indicator.PercentileRank(scores, cfg.RankMode)

	rows := make([]Row, len(candles))
	for idx := range rows {
		rows[idx] = Row{
			Date:        set.Dates[idx],
			TimingScore: scores[idx],
			Percentile:  percentiles[idx],
		}
	}

	last := len(rows) - 1
	scored := &ScoredSeries{
		Symbol:   set.Symbol,
		RankMode: cfg.RankMode.String(),
		Rows:     rows,
		Latest: Snapshot{
			Date:        rows[last].Date,
			TimingScore: rows[last].TimingScore,
			Percentile:  rows[last].Percentile,
			Signal:      classify(rows[last].Percentile),
		},
	}

	return scored, nil
}
