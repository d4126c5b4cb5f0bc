package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/dnldd/timing/indicator"
	"github.com/dnldd/timing/score"
	"github.com/dnldd/timing/service"
)

// handleTermination processes context cancellation signals or interrupt signals from the OS.
func handleTermination(ctx context.Context, cancel context.CancelFunc) {
	// Listen for interrupt signals.
	signals := []os.Signal{os.Interrupt}
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, signals...)

	// Wait for the context to be cancelled or an interrupt signal.
	for {
		select {
		case <-ctx.Done():
			return

		case <-interrupt:
			cancel()
		}
	}
}

func main() {
	var cfg Config
	err := loadConfig(&cfg, "")
	if err != nil {
		log.Printf("loading config: %v", err)
		return
	}

	rankMode, err := indicator.ParseRankMode(cfg.RankMode)
	if err != nil {
		log.Printf("parsing rank mode: %v", err)
		return
	}

	weights := score.DefaultWeights()
	if cfg.WeightsPath != "" {
		weights, err = score.LoadWeights(cfg.WeightsPath)
		if err != nil {
			log.Printf("loading weights: %v", err)
			return
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	timingCfg := service.TimingConfig{
		Symbols:         cfg.Symbols,
		FMPAPIKey:       cfg.FMPAPIKey,
		HistoryPath:     cfg.HistoryPath,
		ListenAddr:      cfg.ListenAddr,
		RefreshInterval: time.Duration(cfg.RefreshMinutes) * time.Minute,
		Weights:         weights,
		RankMode:        rankMode,
		Cancel:          cancel,
	}
	timing, err := service.NewTiming(&timingCfg)
	if err != nil {
		log.Printf("creating timing service: %v", err)
		return
	}

	go handleTermination(ctx, cancel)
	timing.Run(ctx)
}
