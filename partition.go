package main

import "bytes"

// chunkRange is the half-open byte range [start, end) of the mapped file one
// worker folds. start is 0 or follows a '\n'; end is len(data) or follows a '\n'.
type chunkRange struct {
	start int
	end   int
}

func (c chunkRange) len() int {
	return c.end - c.start
}

// partition splits data into n line-aligned chunks. Every tentative boundary is
// pushed forward to just past the next newline, so a chunk may end up empty
// when the one before it swallowed the rest of the file.
func partition(data []byte, n int) []chunkRange {
	if n < 1 {
		n = 1
	}
	size := len(data)
	if size == 0 {
		return []chunkRange{{}}
	}

	step := size / n
	chunks := make([]chunkRange, 0, n)

	start := 0
	for i := 0; i < n; i++ {
		end := start + step
		switch {
		case end >= size || i == n-1:
			end = size
		default:
			nl := bytes.IndexByte(data[end:], '\n')
			if nl == -1 {
				end = size
			} else {
				end += nl + 1
			}
		}

		chunks = append(chunks, chunkRange{start: start, end: end})
		start = end
	}

	return chunks
}
