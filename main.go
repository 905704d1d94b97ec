package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, os.Getenv))
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	if len(args) != 2 {
		_, _ = fmt.Fprintf(stderr, "Usage: %s <measurements.txt>\n", programName(args))
		return 1
	}

	cfg, err := loadConfig(getenv)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	start := time.Now()
	diag := newDiagnostics(stderr)

	stations, err := execute(args[1], cfg, stdout, diag)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if cfg.timing {
		_, _ = fmt.Fprintf(stderr, "%dms records=%d malformed=%d stations=%d workers=%d\n",
			time.Since(start).Milliseconds(), diag.recordCount(), diag.malformedCount(), stations, cfg.workers)
	}

	return 0
}

// execute maps fileName, aggregates it with cfg.workers goroutines and writes
// the sorted summary to w. It returns the number of stations written.
func execute(fileName string, cfg config, w io.Writer, diag *diagnostics) (int, error) {
	r, err := openRegion(fileName)
	if err != nil {
		return 0, err
	}
	// Station keys alias the mapping; it is released only after emit.
	defer r.Close()

	data := r.Bytes()
	p := &parser{diag: diag}

	stations, err := reduce(context.Background(), data, partition(data, cfg.workers), p)
	if err != nil {
		return 0, err
	}

	if err := emit(w, stations); err != nil {
		return 0, err
	}

	return stations.len(), nil
}

func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "brc"
	}
	return filepath.Base(args[0])
}
