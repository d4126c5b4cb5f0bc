package score

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// weightSumTolerance is the allowed deviation of the weight sum from one.
const weightSumTolerance = 1e-9

// Weights represents the contribution of each signal to the composite
// timing score. Weights must be non-negative and sum to one.
type Weights struct {
	// EMA weighs the moving average alignment signal.
	EMA float64 `yaml:"ema"`
	// RSI weighs the relative strength pullback signal.
	RSI float64 `yaml:"rsi"`
	// Stoch weighs the stochastic oversold crossover signal.
	Stoch float64 `yaml:"stoch"`
	// VWAP weighs the close above volume weighted average price signal.
	VWAP float64 `yaml:"vwap"`
	// IVP weighs the implied volatility proxy (ATR percentile band) signal.
	IVP float64 `yaml:"ivp"`
	// PC weighs the participation confirmation (volume ratio) signal.
	PC float64 `yaml:"pc"`
}

// DefaultWeights returns the default signal weights.
func DefaultWeights() Weights {
	return Weights{
		EMA:   0.3,
		RSI:   0.2,
		Stoch: 0.2,
		VWAP:  0.1,
		IVP:   0.1,
		PC:    0.1,
	}
}

// Validate asserts the weights sane inputs.
func (w *Weights) Validate() error {
	var errs error

	named := []struct {
		name  string
		value float64
	}{
		{"ema", w.EMA},
		{"rsi", w.RSI},
		{"stoch", w.Stoch},
		{"vwap", w.VWAP},
		{"ivp", w.IVP},
		{"pc", w.PC},
	}

	sum := float64(0)
	for idx := range named {
		if named[idx].value < 0 {
			errs = errors.Join(errs, fmt.Errorf("%s weight cannot be negative", named[idx].name))
		}
		sum += named[idx].value
	}

	if math.Abs(sum-1) > weightSumTolerance {
		errs = errors.Join(errs, fmt.Errorf("weights must sum to 1, got %f", sum))
	}

	return errs
}

// LoadWeights loads signal weights from the yaml file at the provided path,
// starting from the defaults so a partial file only overrides what it names.
func LoadWeights(path string) (Weights, error) {
	weights := DefaultWeights()

	b, err := os.ReadFile(path)
	if err != nil {
		return weights, fmt.Errorf("reading weights file: %w", err)
	}

	err = yaml.Unmarshal(b, &weights)
	if err != nil {
		return weights, fmt.Errorf("unmarshaling weights: %w", err)
	}

	err = weights.Validate()
	if err != nil {
		return weights, fmt.Errorf("validating weights: %w", err)
	}

	return weights, nil
}
