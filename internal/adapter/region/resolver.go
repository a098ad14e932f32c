// Package region resolves distributor identifiers from the campaign
// creation form into region (city) names.
package region

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"carry-ads/internal/core/port"
)

// DirectoryResolver resolves distributor ids against the distributor
// directory table.
type DirectoryResolver struct {
	pool *pgxpool.Pool
}

// NewDirectoryResolver returns a resolver backed by the distributor
// directory.
func NewDirectoryResolver(pool *pgxpool.Pool) *DirectoryResolver {
	return &DirectoryResolver{pool: pool}
}

// Resolve returns the cities of the distributors with the given ids.
// Ids with no matching row are simply absent from the result.
func (r *DirectoryResolver) Resolve(ctx context.Context, distributorIDs []int64) ([]string, error) {
	if len(distributorIDs) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT city FROM distributors WHERE id = ANY($1) ORDER BY array_position($1, id)`,
		distributorIDs)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var city string
		err := row.Scan(&city)
		return city, err
	})
}

// staticRegions is the reference list of known regions, keyed by the
// distributor ids the creation form ships with.
var staticRegions = map[int64]string{
	1: "Monastir",
	2: "Tunis",
	3: "Sousse",
	4: "Nabeul",
	5: "Sfax",
}

// StaticResolver resolves against the static reference list. It is the
// availability fallback: campaign creation must not hard-fail just
// because distributor records are temporarily absent, at the cost of
// possibly admitting stale region names.
type StaticResolver struct{}

// Resolve maps the given ids through the static list; unknown ids are
// dropped.
func (StaticResolver) Resolve(_ context.Context, distributorIDs []int64) ([]string, error) {
	names := make([]string, 0, len(distributorIDs))
	for _, id := range distributorIDs {
		if name, ok := staticRegions[id]; ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// FallbackResolver tries the primary resolver and falls back to the
// secondary when the primary returns no names at all. A primary error
// is returned as is; the fallback only papers over absent rows.
type FallbackResolver struct {
	primary  port.RegionResolver
	fallback port.RegionResolver
}

// NewFallbackResolver chains two resolvers.
func NewFallbackResolver(primary, fallback port.RegionResolver) *FallbackResolver {
	return &FallbackResolver{primary: primary, fallback: fallback}
}

// Resolve implements port.RegionResolver.
func (r *FallbackResolver) Resolve(ctx context.Context, distributorIDs []int64) ([]string, error) {
	if len(distributorIDs) == 0 {
		return nil, nil
	}
	names, err := r.primary.Resolve(ctx, distributorIDs)
	if err != nil {
		return nil, err
	}
	if len(names) > 0 {
		return names, nil
	}
	return r.fallback.Resolve(ctx, distributorIDs)
}
