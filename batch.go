package tracker

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatchSummaries computes the summary of every property in parallel. Each
// property is an independent work item: the engine is stateless, so the only
// coordination needed is collecting results in input order.
func BatchSummaries(ctx context.Context, properties []PropertyFacts, rates RateSet, on Date, horizonYears int) ([]*Summary, error) {
	summaries := make([]*Summary, len(properties))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range properties {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := NewSummary(p, rates.For(p.Country), on, horizonYears)
			if err != nil {
				return err
			}
			summaries[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// BatchProjections produces the per-year ledger of every property in
// parallel, in input order.
func BatchProjections(ctx context.Context, properties []PropertyFacts, rates RateSet, horizonYears int, presentValue bool, on Date) ([][]ProjectionRow, error) {
	projections := make([][]ProjectionRow, len(properties))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range properties {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			projections[i] = Project(p, rates.For(p.Country), horizonYears, presentValue, on)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return projections, nil
}
