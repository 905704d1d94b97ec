package main

import (
	"bytes"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/exp/maps"
)

var testStations = []string{
	"Abha", "Abidjan", "Bulawayo", "Cracow", "Hamburg", "İzmir", "Istanbul",
	"Palembang", "São Paulo", "St. John's", "Zürich", "Ürümqi", "a", "ab",
}

func writeInput(tb testing.TB, content string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "measurements.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		tb.Fatalf("write input: %v", err)
	}
	return path
}

// genMeasurements builds lines well-formed records with one fractional digit.
func genMeasurements(seed int64, lines int) []byte {
	rng := rand.New(rand.NewSource(seed))

	var buf bytes.Buffer
	for i := 0; i < lines; i++ {
		tenths := rng.Intn(1999) - 999
		buf.WriteString(testStations[rng.Intn(len(testStations))])
		buf.WriteByte(';')
		buf.WriteString(strconv.FormatFloat(float64(tenths)/10, 'f', 1, 64))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// naiveAggregate is a line-by-line reference with no shared code paths.
func naiveAggregate(tb testing.TB, data []byte) map[string]stats {
	tb.Helper()

	out := make(map[string]stats)
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		station, raw, ok := strings.Cut(line, ";")
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		s, ok := out[station]
		if !ok {
			out[station] = stats{min: v, max: v, sum: v, count: 1}
			continue
		}
		s.add(v)
		out[station] = s
	}
	return out
}

func snapshot(m *stationMap) map[string]stats {
	out := make(map[string]stats, m.len())
	m.m.Iter(func(k string, v *stats) bool {
		out[k] = *v
		return false
	})
	return out
}

func sortedKeys(m map[string]stats) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// assertSameStats requires identical keys, min, max and count, and sums within
// tolerance of each other.
func assertSameStats(tb testing.TB, want, got map[string]stats, tolerance float64) {
	tb.Helper()

	if !slices.Equal(sortedKeys(want), sortedKeys(got)) {
		tb.Fatalf("stations differ:\nwant %q\ngot  %q", sortedKeys(want), sortedKeys(got))
	}
	for station, w := range want {
		g := got[station]
		if w.min != g.min || w.max != g.max || w.count != g.count {
			tb.Errorf("%s: want min=%v max=%v count=%d, got min=%v max=%v count=%d",
				station, w.min, w.max, w.count, g.min, g.max, g.count)
		}
		if diff := w.sum - g.sum; diff > tolerance || diff < -tolerance {
			tb.Errorf("%s: sum %v differs from %v by more than %v", station, g.sum, w.sum, tolerance)
		}
	}
}

func newTestParser(w io.Writer) *parser {
	return &parser{diag: newDiagnostics(w)}
}
