package routing

import (
	"sort"
	"time"

	"github.com/andrescamacho/starlane-logistics/internal/domain/system"
)

// NearbySystem is a populated system within a jump radius of an origin
type NearbySystem struct {
	System   *system.PlanetarySystem
	Jumps    int
	Distance float64
}

// NearbySystems returns every populated system reachable from origin in at most
// maxJumps hops of ExplorationRadius, origin included, ordered by jumps, then
// distance, then id. Unpopulated systems are neither returned nor traversed.
func (r *Router) NearbySystems(origin *system.PlanetarySystem, maxJumps int, date time.Time) []NearbySystem {
	if origin == nil || maxJumps < 0 {
		return nil
	}

	jumps := map[string]int{origin.ID(): 0}
	queue := []*system.PlanetarySystem{origin}
	var found []NearbySystem
	if origin.IsPopulated(date) {
		found = append(found, NearbySystem{System: origin})
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		depth := jumps[current.ID()]
		if depth >= maxJumps {
			continue
		}
		for _, neighbor := range r.graph.NeighborsWithin(current, ExplorationRadius) {
			if _, visited := jumps[neighbor.ID()]; visited {
				continue
			}
			if !neighbor.IsPopulated(date) {
				continue
			}
			jumps[neighbor.ID()] = depth + 1
			queue = append(queue, neighbor)
			found = append(found, NearbySystem{
				System:   neighbor,
				Jumps:    depth + 1,
				Distance: origin.DistanceTo(neighbor),
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].Jumps != found[j].Jumps {
			return found[i].Jumps < found[j].Jumps
		}
		if found[i].Distance != found[j].Distance {
			return found[i].Distance < found[j].Distance
		}
		return found[i].System.ID() < found[j].System.ID()
	})
	return found
}
