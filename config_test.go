package main

import (
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Symbols:        []string{"SPY", "QQQ"},
				FMPAPIKey:      "apikey",
				ListenAddr:     "127.0.0.1:8080",
				RankMode:       "global",
				RefreshMinutes: 15,
			},
			wantErr: false,
		},
		{
			name: "valid causal rank mode",
			cfg: Config{
				Symbols:        []string{"SPY"},
				FMPAPIKey:      "apikey",
				ListenAddr:     "127.0.0.1:8080",
				RankMode:       "causal",
				RefreshMinutes: 15,
			},
			wantErr: false,
		},
		{
			name: "offline history source needs no api key",
			cfg: Config{
				Symbols:        []string{"SPY"},
				HistoryPath:    "/tmp/history.json",
				RankMode:       "global",
				RefreshMinutes: 15,
			},
			wantErr: false,
		},
		{
			name: "missing symbols",
			cfg: Config{
				FMPAPIKey:      "apikey",
				RankMode:       "global",
				RefreshMinutes: 15,
			},
			wantErr: true,
		},
		{
			name: "missing FMPAPIKey",
			cfg: Config{
				Symbols:        []string{"SPY"},
				RankMode:       "global",
				RefreshMinutes: 15,
			},
			wantErr: true,
		},
		{
			name: "unknown rank mode",
			cfg: Config{
				Symbols:        []string{"SPY"},
				FMPAPIKey:      "apikey",
				RankMode:       "windowed",
				RefreshMinutes: 15,
			},
			wantErr: true,
		},
		{
			name: "non-positive refresh interval",
			cfg: Config{
				Symbols:   []string{"SPY"},
				FMPAPIKey: "apikey",
				RankMode:  "global",
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
