package main

import (
	"unsafe"

	"github.com/dolthub/swiss"
)

// expectedStations sizes fresh local maps; the reference workload has around
// ten thousand distinct stations.
const expectedStations = 10_000

type stats struct {
	min   float64
	max   float64
	sum   float64
	count uint64
}

func newStats(v float64) *stats {
	return &stats{min: v, max: v, sum: v, count: 1}
}

func (s *stats) add(v float64) {
	s.min = min(s.min, v)
	s.max = max(s.max, v)
	s.sum += v
	s.count++
}

func (s *stats) mean() float64 {
	return s.sum / float64(s.count)
}

// stationMap maps station names to their running stats. Keys inserted through
// add alias the parsed bytes rather than copying them.
type stationMap struct {
	m *swiss.Map[string, *stats]
}

func newStationMap(size int) *stationMap {
	return &stationMap{m: swiss.NewMap[string, *stats](uint32(size))}
}

func (m *stationMap) add(station []byte, v float64) {
	key := unsafe.String(unsafe.SliceData(station), len(station))
	if s, ok := m.m.Get(key); ok {
		s.add(v)
		return
	}
	m.m.Put(key, newStats(v))
}

func (m *stationMap) get(station string) (*stats, bool) {
	return m.m.Get(station)
}

func (m *stationMap) len() int {
	return m.m.Count()
}

func (m *stationMap) keys() []string {
	keys := make([]string, 0, m.m.Count())
	m.m.Iter(func(k string, _ *stats) bool {
		keys = append(keys, k)
		return false
	})
	return keys
}
