package port

import "context"

// RegionResolver maps distributor identifiers picked in the campaign
// creation form to region (city) names. The production wiring chains a
// directory-backed resolver with a static fallback list so that
// campaign creation never hard-fails purely because distributor
// records are temporarily absent. The fallback can admit stale region
// names; the trade-off is kept visible behind this interface.
type RegionResolver interface {
	Resolve(ctx context.Context, distributorIDs []int64) ([]string, error)
}
