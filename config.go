package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/dnldd/timing/indicator"
	"github.com/joho/godotenv"
)

const (
	// defaultListenAddr is the default dashboard listen address.
	defaultListenAddr = "127.0.0.1:8080"
	// defaultRefreshMinutes is the default interval between history
	// refreshes, in minutes.
	defaultRefreshMinutes = 15
)

// defaultSymbols are the tracked symbols when none are configured.
var defaultSymbols = []string{"SPY", "QQQ"}

// Config is the configuration struct for the service.
type Config struct {
	// Symbols represents the tracked symbols.
	Symbols []string
	// FMPAPIKey is the FMP service API Key.
	FMPAPIKey string
	// HistoryPath is an optional filepath to captured daily history,
	// replacing the live provider when set.
	HistoryPath string
	// ListenAddr is the address the dashboard listens on.
	ListenAddr string
	// RankMode selects the percentile rank population (global or causal).
	RankMode string
	// WeightsPath is an optional filepath to a yaml signal weights file.
	WeightsPath string
	// RefreshMinutes is the interval between history refreshes, in minutes.
	RefreshMinutes int

	registeredFlags map[string]bool
}

// Validate asserts the config sane inputs.
func (cfg *Config) Validate() error {
	var errs error

	if len(cfg.Symbols) == 0 {
		errs = errors.Join(errs, fmt.Errorf("no symbols provided for timing service"))
	}
	if cfg.HistoryPath == "" && cfg.FMPAPIKey == "" {
		errs = errors.Join(errs, fmt.Errorf("fmp api key cannot be an empty string"))
	}
	if cfg.RefreshMinutes <= 0 {
		errs = errors.Join(errs, fmt.Errorf("refresh minutes must be positive"))
	}
	if _, err := indicator.ParseRankMode(cfg.RankMode); err != nil {
		errs = errors.Join(errs, err)
	}

	return errs
}

// registerFlag registers command line arguments of any type and tracks them to avoid reregistration.
func (cfg *Config) registerFlag(name string, value interface{}, usage string) error {
	if cfg.registeredFlags == nil {
		cfg.registeredFlags = make(map[string]bool)
	}

	if cfg.registeredFlags[name] {
		return nil
	}

	cfg.registeredFlags[name] = true

	defValue := os.Getenv(name)
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("%s: value must be a non-nil pointer", name)
	}

	switch val.Elem().Kind() {
	case reflect.String:
		flag.StringVar(value.(*string), name, defValue, usage)
	case reflect.Bool:
		var def bool
		if defValue != "" {
			def, _ = strconv.ParseBool(defValue)
		}
		flag.BoolVar(value.(*bool), name, def, usage)
	case reflect.Int:
		var def int
		if defValue != "" {
			def, _ = strconv.Atoi(defValue)
		}
		flag.IntVar(value.(*int), name, def, usage)
	case reflect.Slice:
		// Only handle []string
		if val.Elem().Type().Elem().Kind() == reflect.String {
			var def []string
			if defValue != "" {
				def = strings.Split(defValue, ",")
			}
			flag.Func(name, usage, func(s string) error {
				*value.(*[]string) = strings.Split(s, ",")
				return nil
			})
			// Set default if not provided via flag
			if len(def) > 0 {
				*value.(*[]string) = def
			}
		} else {
			return fmt.Errorf("%s: unsupported slice type", name)
		}
	default:
		return fmt.Errorf("%s: unsupported type", name)
	}

	return nil
}

// loadConfig loads the configuration from environment variables and command line flags.
func loadConfig(cfg *Config, path string) error {
	if path == "" {
		path = ".env"
	}

	// Check if the expected .env file exists before loading it.
	_, err := os.Stat(path)
	if err == nil {
		err := godotenv.Load(path)
		if err != nil {
			return fmt.Errorf("loading .env file: %w", err)
		}
	}

	// Register command line arguments using loaded environment variables as defaults.
	err = cfg.registerFlag("symbols", &cfg.Symbols, "the tracked symbols")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("fmpapikey", &cfg.FMPAPIKey, "the FMP api key")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("historypath", &cfg.HistoryPath, "the filepath to captured daily history")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("listenaddr", &cfg.ListenAddr, "the dashboard listen address")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("rankmode", &cfg.RankMode, "the percentile rank mode (global or causal)")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("weightspath", &cfg.WeightsPath, "the filepath to a yaml signal weights file")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("refreshminutes", &cfg.RefreshMinutes, "the interval between history refreshes in minutes")
	if err != nil {
		return err
	}

	// Parse command-line flags.
	flag.Parse()

	// Apply defaults for unset optional fields.
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = defaultSymbols
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	if cfg.RankMode == "" {
		cfg.RankMode = indicator.RankGlobal.String()
	}
	if cfg.RefreshMinutes == 0 {
		cfg.RefreshMinutes = defaultRefreshMinutes
	}

	return cfg.Validate()
}
