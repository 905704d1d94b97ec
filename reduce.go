package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// reduce parses every chunk on its own goroutine and folds the local maps into
// one. Merging is a pairwise tree: in each round the map at i absorbs the map
// at i+stride, so no map is touched by two goroutines at once.
func reduce(ctx context.Context, data []byte, chunks []chunkRange, p *parser) (*stationMap, error) {
	maps := make([]*stationMap, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range chunks {
		i, c := i, c
		g.Go(func() (err error) {
			defer recoverWorker(&err)

			if err := gctx.Err(); err != nil {
				return err
			}
			maps[i] = p.parseChunk(data[c.start:c.end])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeTree(ctx, maps)
}

func mergeTree(ctx context.Context, maps []*stationMap) (*stationMap, error) {
	if len(maps) == 0 {
		return newStationMap(0), nil
	}

	for stride := 1; stride < len(maps); stride *= 2 {
		g, gctx := errgroup.WithContext(ctx)
		for i := 0; i+stride < len(maps); i += 2 * stride {
			i := i
			g.Go(func() (err error) {
				defer recoverWorker(&err)

				if err := gctx.Err(); err != nil {
					return err
				}
				maps[i] = mergeMaps(maps[i], maps[i+stride])
				maps[i+stride] = nil
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return maps[0], nil
}

func recoverWorker(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("worker panicked: %v", r)
	}
}
