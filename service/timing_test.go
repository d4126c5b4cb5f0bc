package service

import (
	"context"
	"testing"
	"time"

	"github.com/dnldd/timing/score"
)

func TestTimingConfigValidate(t *testing.T) {
	cancel := context.CancelFunc(func() {})

	tests := []struct {
		name    string
		cfg     TimingConfig
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: TimingConfig{
				Symbols:         []string{"SPY", "QQQ"},
				FMPAPIKey:       "apikey",
				ListenAddr:      ":8080",
				RefreshInterval: time.Minute * 15,
				Weights:         score.DefaultWeights(),
				Cancel:          cancel,
			},
			wantErr: false,
		},
		{
			name: "offline history source needs no api key",
			cfg: TimingConfig{
				Symbols:         []string{"SPY"},
				HistoryPath:     "/tmp/history.json",
				ListenAddr:      ":8080",
				RefreshInterval: time.Minute * 15,
				Weights:         score.DefaultWeights(),
				Cancel:          cancel,
			},
			wantErr: false,
		},
		{
			name: "missing symbols",
			cfg: TimingConfig{
				FMPAPIKey:       "apikey",
				ListenAddr:      ":8080",
				RefreshInterval: time.Minute * 15,
				Weights:         score.DefaultWeights(),
				Cancel:          cancel,
			},
			wantErr: true,
		},
		{
			name: "missing api key and listen address",
			cfg: TimingConfig{
				Symbols:         []string{"SPY"},
				RefreshInterval: time.Minute * 15,
				Weights:         score.DefaultWeights(),
				Cancel:          cancel,
			},
			wantErr: true,
		},
		{
			name: "unbalanced weights",
			cfg: TimingConfig{
				Symbols:         []string{"SPY"},
				FMPAPIKey:       "apikey",
				ListenAddr:      ":8080",
				RefreshInterval: time.Minute * 15,
				Weights:         score.Weights{EMA: 0.9},
				Cancel:          cancel,
			},
			wantErr: true,
		},
		{
			name: "missing cancel function",
			cfg: TimingConfig{
				Symbols:         []string{"SPY"},
				FMPAPIKey:       "apikey",
				ListenAddr:      ":8080",
				RefreshInterval: time.Minute * 15,
				Weights:         score.DefaultWeights(),
			},
			wantErr: true,
		},
	}

	for _, test := range tests {
		err := test.cfg.Validate()
		if test.wantErr && err == nil {
			t.Errorf("%s: expected a config validation error", test.name)
		}
		if !test.wantErr && err != nil {
			t.Errorf("%s: unexpected config validation error: %v", test.name, err)
		}
	}
}
