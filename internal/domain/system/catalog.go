package system

import (
	"fmt"
	"math"
	"sort"
)

// gridCellSize is the edge length in light-years of one spatial index cell
const gridCellSize = 30.0

type cellKey struct {
	cx int
	cy int
}

// Catalog is the in-memory, read-only star map.
// Systems keep the order in which they were added; every enumeration follows it.
type Catalog struct {
	systems []*PlanetarySystem
	byID    map[string]int
	grid    map[cellKey][]int
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		systems: []*PlanetarySystem{},
		byID:    make(map[string]int),
		grid:    make(map[cellKey][]int),
	}
}

// NewCatalogFrom builds a catalog from systems in the given order
func NewCatalogFrom(systems []*PlanetarySystem) (*Catalog, error) {
	c := NewCatalog()
	for _, s := range systems {
		if err := c.Add(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add inserts a system. Duplicate ids are rejected.
func (c *Catalog) Add(s *PlanetarySystem) error {
	if s == nil {
		return fmt.Errorf("cannot add nil system")
	}
	if _, exists := c.byID[s.ID()]; exists {
		return fmt.Errorf("system %s already in catalog", s.ID())
	}
	index := len(c.systems)
	c.systems = append(c.systems, s)
	c.byID[s.ID()] = index
	key := cellFor(s.X(), s.Y())
	c.grid[key] = append(c.grid[key], index)
	return nil
}

// Get retrieves a system by id
func (c *Catalog) Get(id string) (*PlanetarySystem, bool) {
	index, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return c.systems[index], true
}

// All returns every system in insertion order
func (c *Catalog) All() []*PlanetarySystem {
	return append([]*PlanetarySystem(nil), c.systems...)
}

// Len returns the number of systems in the catalog
func (c *Catalog) Len() int {
	return len(c.systems)
}

// Distance returns the straight-line distance between two systems
func (c *Catalog) Distance(a, b *PlanetarySystem) float64 {
	return a.DistanceTo(b)
}

// NeighborsWithin returns all systems other than origin within radius light-years,
// in catalog order.
func (c *Catalog) NeighborsWithin(origin *PlanetarySystem, radius float64) []*PlanetarySystem {
	if origin == nil || radius < 0 {
		return nil
	}

	span := int(math.Ceil(radius / gridCellSize))
	center := cellFor(origin.X(), origin.Y())

	var indexes []int
	for dx := -span; dx <= span; dx++ {
		for dy := -span; dy <= span; dy++ {
			for _, index := range c.grid[cellKey{cx: center.cx + dx, cy: center.cy + dy}] {
				candidate := c.systems[index]
				if candidate.ID() == origin.ID() {
					continue
				}
				if origin.DistanceTo(candidate) <= radius {
					indexes = append(indexes, index)
				}
			}
		}
	}

	sort.Ints(indexes)
	neighbors := make([]*PlanetarySystem, len(indexes))
	for i, index := range indexes {
		neighbors[i] = c.systems[index]
	}
	return neighbors
}

func cellFor(x, y float64) cellKey {
	return cellKey{
		cx: int(math.Floor(x / gridCellSize)),
		cy: int(math.Floor(y / gridCellSize)),
	}
}
