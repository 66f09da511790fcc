package routing

import (
	"time"

	"github.com/andrescamacho/starlane-logistics/internal/domain/access"
	"github.com/andrescamacho/starlane-logistics/internal/domain/system"
)

// AccessChecker gates every edge the router considers.
// access.Policy is the production implementation.
type AccessChecker interface {
	CanEnter(from, to *system.PlanetarySystem, date time.Time, contracts []access.Contract) bool
	UseCommandCircuit(date time.Time, contracts []access.Contract) bool
}

// Query carries the per-search context that access and cost depend on
type Query struct {
	Date      time.Time
	Contracts []access.Contract
}

// Options are the campaign options that affect routing
type Options struct {
	AvoidEmptySystems bool
}

// StopReason explains why a search ended
type StopReason string

const (
	StopReached          StopReason = "reached"
	StopTrivial          StopReason = "trivial"
	StopNoStart          StopReason = "no_start"
	StopEmptyDestination StopReason = "empty_destination"
	StopExhausted        StopReason = "exhausted"
	StopExpansionCap     StopReason = "expansion_cap"
)

// SearchResult is a path plus diagnostics about how it was found
type SearchResult struct {
	Path       JumpPath
	Reason     StopReason
	Expansions int
	Escaping   bool
}

var _ AccessChecker = (*access.Policy)(nil)
