package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// emit writes "<station>;<min>;<mean>;<max>" lines sorted by station bytes.
func emit(w io.Writer, m *stationMap) error {
	stations := m.keys()
	slices.Sort(stations)

	bw := bufio.NewWriterSize(w, 1<<16)
	line := make([]byte, 0, 128)
	for _, station := range stations {
		s, _ := m.get(station)
		line = appendStation(line[:0], station, s)
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func appendStation(buf []byte, station string, s *stats) []byte {
	buf = append(buf, station...)
	buf = append(buf, ';')
	buf = strconv.AppendFloat(buf, s.min, 'f', 1, 64)
	buf = append(buf, ';')
	buf = strconv.AppendFloat(buf, s.mean(), 'f', 1, 64)
	buf = append(buf, ';')
	buf = strconv.AppendFloat(buf, s.max, 'f', 1, 64)
	return append(buf, '\n')
}
