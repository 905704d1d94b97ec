package main

import (
	"bytes"
	"strconv"
	"unsafe"
)

// maxFastDigits keeps integer tenths below 10^15, where float64 is still
// exact; longer values go through strconv.
const maxFastDigits = 14

type parser struct {
	diag *diagnostics
}

func (p *parser) parseChunk(data []byte) *stationMap {
	m := newStationMap(expectedStations)
	p.parseInto(m, data)
	return m
}

// parseInto folds every record of data into m. data starts at a line start and
// its last line may lack a terminator.
func (p *parser) parseInto(m *stationMap, data []byte) {
	var records, malformed int64

	for len(data) > 0 {
		var line []byte
		if nl := bytes.IndexByte(data, '\n'); nl == -1 {
			line, data = data, nil
		} else {
			line, data = data[:nl], data[nl+1:]
		}

		if len(line) == 0 {
			continue
		}

		semi := bytes.IndexByte(line, ';')
		if semi == -1 {
			p.diag.invalidLine(line)
			malformed++
			continue
		}

		station, measurement := line[:semi], line[semi+1:]
		v, ok := parseMeasurement(measurement)
		if !ok {
			p.diag.invalidMeasurement(station, measurement)
			malformed++
			continue
		}

		m.add(station, v)
		records++
	}

	p.diag.publish(records, malformed)
}

// parseMeasurement accepts ["-"] digit+ ("." digit+)?. The common one
// fractional digit form is computed from integer tenths, which rounds exactly
// like strconv.ParseFloat would.
func parseMeasurement(b []byte) (float64, bool) {
	digits := b
	neg := len(digits) > 0 && digits[0] == '-'
	if neg {
		digits = digits[1:]
	}

	var whole int64
	i := 0
	for ; i < len(digits) && isDigit(digits[i]); i++ {
		whole = whole*10 + int64(digits[i]-'0')
	}
	if i == 0 {
		return 0, false
	}
	fast := i <= maxFastDigits

	var v float64
	switch {
	case i == len(digits):
		if !fast {
			return parseSlow(b)
		}
		v = float64(whole)
	case digits[i] == '.':
		frac := digits[i+1:]
		if len(frac) == 0 {
			return 0, false
		}
		for _, c := range frac {
			if !isDigit(c) {
				return 0, false
			}
		}
		if !fast || len(frac) != 1 {
			return parseSlow(b)
		}
		v = float64(whole*10+int64(frac[0]-'0')) / 10
	default:
		return 0, false
	}

	if neg {
		v = -v
	}
	return v, true
}

// parseSlow handles input already checked against the measurement grammar.
func parseSlow(b []byte) (float64, bool) {
	v, err := strconv.ParseFloat(unsafe.String(unsafe.SliceData(b), len(b)), 64)
	return v, err == nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
