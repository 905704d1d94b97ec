package main

import (
	"fmt"
	"runtime"
	"strconv"
)

const (
	envWorkers = "BRC_WORKERS"
	envTiming  = "BRC_TIMING"
)

type config struct {
	// workers is the number of chunks, and so parsing goroutines.
	workers int
	// timing prints elapsed time and record totals to stderr after the output.
	timing bool
}

func loadConfig(getenv func(string) string) (config, error) {
	cfg := config{workers: runtime.NumCPU()}

	if v := getenv(envWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("%s: want a positive integer, got %q", envWorkers, v)
		}
		cfg.workers = n
	}

	if v := getenv(envTiming); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envTiming, err)
		}
		cfg.timing = on
	}

	return cfg, nil
}
