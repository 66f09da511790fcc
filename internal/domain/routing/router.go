package routing

import (
	"github.com/andrescamacho/starlane-logistics/internal/domain/system"
)

const (
	// ExplorationRadius is the farthest a single jump can reach, in light-years
	ExplorationRadius = 30.0

	// MaxExpansions caps the number of nodes a single search may dequeue
	MaxExpansions = 10000
)

// Router computes jump paths over the star map with A*.
//
// Cost is the accumulated recharge wait of every system jumped out of. The heuristic
// is straight-line distance to the destination in light-years; units differ from the
// cost so it is not guaranteed admissible.
type Router struct {
	graph   system.Graph
	access  AccessChecker
	options Options
}

// NewRouter creates a router over graph gated by access
func NewRouter(graph system.Graph, access AccessChecker, options Options) *Router {
	return &Router{graph: graph, access: access, options: options}
}

// Route returns the path from start to end. Callers must check Reached (or an empty
// path) before using it as a complete route.
func (r *Router) Route(q Query, start, end *system.PlanetarySystem, bypassAccessCheck, bypassEmptySystemCheck bool) JumpPath {
	return r.Search(q, start, end, bypassAccessCheck, bypassEmptySystemCheck).Path
}

// Search is Route with diagnostics
func (r *Router) Search(q Query, start, end *system.PlanetarySystem, bypassAccessCheck, bypassEmptySystemCheck bool) SearchResult {
	if start == nil {
		return SearchResult{Path: EmptyJumpPath(), Reason: StopNoStart}
	}
	if end == nil || end.ID() == start.ID() {
		return SearchResult{
			Path:   NewJumpPath([]*system.PlanetarySystem{start}, true),
			Reason: StopTrivial,
		}
	}

	avoidEmpty := r.options.AvoidEmptySystems && !bypassEmptySystemCheck
	if avoidEmpty && !end.IsPopulated(q.Date) {
		return SearchResult{Path: EmptyJumpPath(), Reason: StopEmptyDestination}
	}

	useCommandCircuit := r.access.UseCommandCircuit(q.Date, q.Contracts)
	escaping := !bypassAccessCheck && !r.access.CanEnter(start, start, q.Date, q.Contracts)

	scoreH := make(map[string]float64)
	for _, s := range r.graph.All() {
		scoreH[s.ID()] = end.DistanceTo(s)
	}
	heuristic := func(s *system.PlanetarySystem) float64 {
		if h, ok := scoreH[s.ID()]; ok {
			return h
		}
		return end.DistanceTo(s)
	}

	scoreG := map[string]float64{start.ID(): 0}
	parent := make(map[string]*system.PlanetarySystem)
	closed := map[string]bool{start.ID(): true}
	open := newOpenSet()

	current := start
	reason := StopExpansionCap
	expansions := 0

	for expansions < MaxExpansions {
		expansions++

		currentG := scoreG[current.ID()] + current.RechargeTime(q.Date, useCommandCircuit)
		skipAccess := bypassAccessCheck || (escaping && current.ID() == start.ID())

		for _, neighbor := range r.graph.NeighborsWithin(current, ExplorationRadius) {
			id := neighbor.ID()
			if closed[id] {
				continue
			}
			if avoidEmpty && !neighbor.IsPopulated(q.Date) {
				continue
			}
			if !skipAccess && !r.access.CanEnter(current, neighbor, q.Date, q.Contracts) {
				continue
			}

			if open.contains(id) {
				if currentG < scoreG[id] {
					scoreG[id] = currentG
					parent[id] = current
					open.update(id, currentG+heuristic(neighbor))
				}
				continue
			}

			scoreG[id] = currentG
			parent[id] = current
			open.push(neighbor, currentG+heuristic(neighbor))
		}

		next := open.popBest()
		if next == nil {
			reason = StopExhausted
			break
		}
		current = next
		closed[current.ID()] = true
		if current.ID() == end.ID() {
			reason = StopReached
			break
		}
	}

	return SearchResult{
		Path:       NewJumpPath(reconstruct(current, parent), reason == StopReached),
		Reason:     reason,
		Expansions: expansions,
		Escaping:   escaping,
	}
}

func reconstruct(last *system.PlanetarySystem, parent map[string]*system.PlanetarySystem) []*system.PlanetarySystem {
	var reversed []*system.PlanetarySystem
	for node := last; node != nil; node = parent[node.ID()] {
		reversed = append(reversed, node)
	}
	path := make([]*system.PlanetarySystem, len(reversed))
	for i, s := range reversed {
		path[len(reversed)-1-i] = s
	}
	return path
}
