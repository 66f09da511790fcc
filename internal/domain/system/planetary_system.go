package system

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
)

// StationKind identifies a recharge station at a system's jump points
type StationKind string

const (
	StationZenith StationKind = "zenith"
	StationNadir  StationKind = "nadir"
)

// PopulationEvent records the population of a system from a date onward
type PopulationEvent struct {
	Date       time.Time
	Population int64
}

// OwnershipEvent records the factions controlling a system from a date onward
type OwnershipEvent struct {
	Date     time.Time
	Factions []string
}

// StationEvent records a recharge station coming online
type StationEvent struct {
	Date time.Time
	Kind StationKind
}

// SocioIndustrial holds the letter ratings used by planetary acquisition
type SocioIndustrial struct {
	Tech     shared.Rating
	Industry shared.Rating
	Output   shared.Rating
}

// PlanetarySystem is an immutable star system snapshot owned by the catalog
type PlanetarySystem struct {
	id              string
	name            string
	x               float64
	y               float64
	rechargeHours   float64
	stationHours    float64
	jumpPointDays   float64
	commandCircuit  *time.Time
	population      []PopulationEvent
	ownership       []OwnershipEvent
	stations        []StationEvent
	socioIndustrial SocioIndustrial
}

// SystemSpec carries the data needed to build a PlanetarySystem
type SystemSpec struct {
	ID              string
	Name            string
	X               float64
	Y               float64
	RechargeHours   float64
	StationHours    float64
	JumpPointDays   float64
	CommandCircuit  *time.Time
	Population      []PopulationEvent
	Ownership       []OwnershipEvent
	Stations        []StationEvent
	SocioIndustrial SocioIndustrial
}

// NewPlanetarySystem creates a system snapshot with validation
func NewPlanetarySystem(spec SystemSpec) (*PlanetarySystem, error) {
	if spec.ID == "" {
		return nil, shared.NewValidationError("id", "cannot be empty")
	}
	if spec.RechargeHours < 0 || spec.StationHours < 0 {
		return nil, shared.NewValidationError("recharge_hours", "cannot be negative")
	}
	if spec.JumpPointDays < 0 {
		return nil, shared.NewValidationError("jump_point_days", "cannot be negative")
	}

	name := spec.Name
	if name == "" {
		name = spec.ID
	}

	population := append([]PopulationEvent(nil), spec.Population...)
	sort.SliceStable(population, func(i, j int) bool { return population[i].Date.Before(population[j].Date) })
	ownership := append([]OwnershipEvent(nil), spec.Ownership...)
	sort.SliceStable(ownership, func(i, j int) bool { return ownership[i].Date.Before(ownership[j].Date) })
	stations := append([]StationEvent(nil), spec.Stations...)
	sort.SliceStable(stations, func(i, j int) bool { return stations[i].Date.Before(stations[j].Date) })

	return &PlanetarySystem{
		id:              spec.ID,
		name:            name,
		x:               spec.X,
		y:               spec.Y,
		rechargeHours:   spec.RechargeHours,
		stationHours:    spec.StationHours,
		jumpPointDays:   spec.JumpPointDays,
		commandCircuit:  spec.CommandCircuit,
		population:      population,
		ownership:       ownership,
		stations:        stations,
		socioIndustrial: spec.SocioIndustrial,
	}, nil
}

func (s *PlanetarySystem) ID() string   { return s.id }
func (s *PlanetarySystem) Name() string { return s.name }
func (s *PlanetarySystem) X() float64   { return s.x }
func (s *PlanetarySystem) Y() float64   { return s.y }

// SocioIndustrial returns the acquisition-relevant ratings of the primary planet
func (s *PlanetarySystem) SocioIndustrial() SocioIndustrial {
	return s.socioIndustrial
}

// DistanceTo returns the straight-line distance in light-years
func (s *PlanetarySystem) DistanceTo(other *PlanetarySystem) float64 {
	dx := other.x - s.x
	dy := other.y - s.y
	return math.Sqrt(dx*dx + dy*dy)
}

// Population returns the population on date (0 if nothing recorded yet)
func (s *PlanetarySystem) Population(date time.Time) int64 {
	var population int64
	for _, event := range s.population {
		if event.Date.After(date) {
			break
		}
		population = event.Population
	}
	return population
}

// IsPopulated reports whether anyone lives in the system on date
func (s *PlanetarySystem) IsPopulated(date time.Time) bool {
	return s.Population(date) > 0
}

// Factions returns the faction codes controlling the system on date
func (s *PlanetarySystem) Factions(date time.Time) []string {
	var factions []string
	for _, event := range s.ownership {
		if event.Date.After(date) {
			break
		}
		factions = event.Factions
	}
	return append([]string(nil), factions...)
}

// HasRechargeStation reports whether any recharge station is operating on date
func (s *PlanetarySystem) HasRechargeStation(date time.Time) bool {
	for _, station := range s.stations {
		if !station.Date.After(date) {
			return true
		}
	}
	return false
}

// HasCommandCircuit reports whether the system is part of the command circuit on date
func (s *PlanetarySystem) HasCommandCircuit(date time.Time) bool {
	return s.commandCircuit != nil && !s.commandCircuit.After(date)
}

// RechargeTime returns the days a jump drive must wait in this system before jumping again.
func (s *PlanetarySystem) RechargeTime(date time.Time, useCommandCircuit bool) float64 {
	if useCommandCircuit && s.HasCommandCircuit(date) {
		return 0
	}
	hours := s.rechargeHours
	if s.HasRechargeStation(date) && s.stationHours < hours {
		hours = s.stationHours
	}
	return hours / 24.0
}

// TimeToJumpPoint returns the days needed to travel between the primary planet and a
// jump point at the given acceleration in G
func (s *PlanetarySystem) TimeToJumpPoint(acceleration float64) float64 {
	if acceleration <= 0 {
		acceleration = 1
	}
	return s.jumpPointDays / math.Sqrt(acceleration)
}

func (s *PlanetarySystem) String() string {
	return fmt.Sprintf("PlanetarySystem(%s)", s.id)
}
