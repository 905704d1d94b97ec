package main

import (
	"io"
	"log"

	"github.com/puzpuzpuz/xsync/v3"
)

// diagnostics reports malformed records on a shared writer and keeps run-wide
// totals. log.Logger issues one Write per line, so workers never interleave
// inside a line.
type diagnostics struct {
	log       *log.Logger
	records   *xsync.Counter
	malformed *xsync.Counter
}

func newDiagnostics(w io.Writer) *diagnostics {
	return &diagnostics{
		log:       log.New(w, "", 0),
		records:   xsync.NewCounter(),
		malformed: xsync.NewCounter(),
	}
}

func (d *diagnostics) invalidLine(line []byte) {
	d.log.Printf("skipping invalid line: %q", line)
}

func (d *diagnostics) invalidMeasurement(station, measurement []byte) {
	d.log.Printf("invalid measurement %q for station %q", measurement, station)
}

// publish adds one worker's totals.
func (d *diagnostics) publish(records, malformed int64) {
	d.records.Add(records)
	d.malformed.Add(malformed)
}

func (d *diagnostics) recordCount() int64 {
	return d.records.Value()
}

func (d *diagnostics) malformedCount() int64 {
	return d.malformed.Value()
}
