package routing

import (
	"strings"
	"time"

	"github.com/andrescamacho/starlane-logistics/internal/domain/system"
)

// JumpPath is an ordered list of systems from a query's start toward its destination.
//
// Invariants:
// - The first system is always the query's start (unless the path is empty)
// - Consecutive systems were adjacent under the access rules used to build it
// - Reached is false when the search stopped before the destination; the last
//   system is then the last node the search dequeued
type JumpPath struct {
	systems []*system.PlanetarySystem
	reached bool
}

// NewJumpPath creates a path from an ordered system list
func NewJumpPath(systems []*system.PlanetarySystem, reached bool) JumpPath {
	return JumpPath{
		systems: append([]*system.PlanetarySystem(nil), systems...),
		reached: reached && len(systems) > 0,
	}
}

// EmptyJumpPath returns the "cannot reach" path
func EmptyJumpPath() JumpPath {
	return JumpPath{}
}

// Systems returns a copy of the ordered systems
func (p JumpPath) Systems() []*system.PlanetarySystem {
	return append([]*system.PlanetarySystem(nil), p.systems...)
}

// Reached reports whether the last system is the requested destination
func (p JumpPath) Reached() bool { return p.reached }

// IsEmpty reports whether the path has no systems at all
func (p JumpPath) IsEmpty() bool { return len(p.systems) == 0 }

// Len returns the number of systems on the path
func (p JumpPath) Len() int { return len(p.systems) }

// Jumps returns the number of hops along the path
func (p JumpPath) Jumps() int {
	if len(p.systems) == 0 {
		return 0
	}
	return len(p.systems) - 1
}

// First returns the start system or nil for an empty path
func (p JumpPath) First() *system.PlanetarySystem {
	if len(p.systems) == 0 {
		return nil
	}
	return p.systems[0]
}

// Last returns the final system or nil for an empty path
func (p JumpPath) Last() *system.PlanetarySystem {
	if len(p.systems) == 0 {
		return nil
	}
	return p.systems[len(p.systems)-1]
}

// Contains reports whether a system id lies on the path
func (p JumpPath) Contains(id string) bool {
	for _, s := range p.systems {
		if s.ID() == id {
			return true
		}
	}
	return false
}

// IDs returns the system ids in order
func (p JumpPath) IDs() []string {
	ids := make([]string, len(p.systems))
	for i, s := range p.systems {
		ids[i] = s.ID()
	}
	return ids
}

// TotalRechargeDays sums the recharge wait at every system that is jumped out of,
// which is the router's cost function.
func (p JumpPath) TotalRechargeDays(date time.Time, useCommandCircuit bool) float64 {
	total := 0.0
	for i := 0; i < len(p.systems)-1; i++ {
		total += p.systems[i].RechargeTime(date, useCommandCircuit)
	}
	return total
}

// TotalDistance sums the light-years between consecutive systems
func (p JumpPath) TotalDistance() float64 {
	total := 0.0
	for i := 1; i < len(p.systems); i++ {
		total += p.systems[i-1].DistanceTo(p.systems[i])
	}
	return total
}

func (p JumpPath) String() string {
	if len(p.systems) == 0 {
		return "JumpPath(empty)"
	}
	path := strings.Join(p.IDs(), " -> ")
	if !p.reached {
		return "JumpPath(" + path + " [partial])"
	}
	return "JumpPath(" + path + ")"
}
