package models

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxLookups bounds the number of reference lookups in flight for one call.
const maxLookups = 8

// fanOut runs fn for every index in [0, n) concurrently. fn writes its result
// into a caller-owned slot, so output order always matches input order.
func fanOut(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxLookups)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			return fn(gctx, i)
		})
	}
	return g.Wait()
}
