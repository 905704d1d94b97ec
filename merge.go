package main

func (s *stats) merge(o *stats) {
	s.min = min(s.min, o.min)
	s.max = max(s.max, o.max)
	s.sum += o.sum
	s.count += o.count
}

// mergeMaps folds the smaller map into the larger one and returns it. Both
// inputs are consumed: records only present in the smaller map are moved, not
// copied.
func mergeMaps(a, b *stationMap) *stationMap {
	if a.len() < b.len() {
		a, b = b, a
	}

	b.m.Iter(func(station string, o *stats) bool {
		if s, ok := a.m.Get(station); ok {
			s.merge(o)
		} else {
			a.m.Put(station, o)
		}
		return false
	})

	return a
}
