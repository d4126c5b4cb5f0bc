package indicator

import "fmt"

// RankMode selects the population a percentile rank is computed against.
type RankMode int

const (
	// RankGlobal ranks each value against the entire series, including bars
	// that occur after it. A bar's rank depends on future values, which
	// makes this mode suitable for historical review only.
	RankGlobal RankMode = iota
	// RankCausal ranks each value against bars up to and including itself,
	// so ranks only ever depend on already-observed values.
	RankCausal
)

// String stringifies the provided rank mode.
func (m RankMode) String() string {
	switch m {
	case RankGlobal:
		return "global"
	case RankCausal:
		return "causal"
	default:
		return "unknown"
	}
}

// ParseRankMode parses a rank mode from the provided string.
func ParseRankMode(mode string) (RankMode, error) {
	switch mode {
	case "global":
		return RankGlobal, nil
	case "causal":
		return RankCausal, nil
	default:
		return 0, fmt.Errorf("unknown rank mode provided: %s", mode)
	}
}

// PercentileRank replaces each defined value with its percentile rank
// (0-100) within the population selected by the provided mode. Tied values
// receive their average rank. Undefined values are excluded from the
// population and stay undefined.
func PercentileRank(s Series, mode RankMode) Series {
	out := NewSeries(len(s))

	for idx := range s {
		if !s.Defined(idx) {
			continue
		}

		limit := len(s)
		if mode == RankCausal {
			limit = idx + 1
		}

		var population, below, equal float64
		for k := 0; k < limit; k++ {
			if !s.Defined(k) {
				continue
			}

			population++
			switch {
			case s[k] < s[idx]:
				below++
			case s[k] == s[idx]:
				equal++
			}
		}

		out[idx] = 100 * (below + (equal+1)/2) / population
	}

	return out
}
