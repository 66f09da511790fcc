package system

import "context"

// Graph is the read-only star map consumed by routing, transit and procurement.
// Population and recharge time are answered by the PlanetarySystem snapshots it returns.
type Graph interface {
	Get(id string) (*PlanetarySystem, bool)
	All() []*PlanetarySystem
	Distance(a, b *PlanetarySystem) float64
	NeighborsWithin(origin *PlanetarySystem, radius float64) []*PlanetarySystem
}

// CatalogLoader loads the star map from an external source (YAML file, database)
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) (*Catalog, error)
}

var _ Graph = (*Catalog)(nil)
