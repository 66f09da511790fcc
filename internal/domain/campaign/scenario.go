package campaign

import (
	"context"
	"time"

	"github.com/andrescamacho/starlane-logistics/internal/domain/access"
	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	"github.com/andrescamacho/starlane-logistics/internal/domain/personnel"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/system"
	"github.com/andrescamacho/starlane-logistics/internal/domain/warehouse"
)

// Scenario is the campaign state the logistics engine starts from
type Scenario struct {
	Date      time.Time
	Faction   string
	Balance   int64
	Catalog   *system.Catalog
	Location  *system.PlanetarySystem
	Standings access.Standings
	Contracts []access.Contract
	Roster    *personnel.Roster
	Shopping  *acquisition.ShoppingList
	Stock     []*warehouse.Part
	AmmoTypes map[string]warehouse.AmmoType
}

// ScenarioLoader reads a scenario from storage
type ScenarioLoader interface {
	LoadScenario(ctx context.Context) (*Scenario, error)
}

// System looks a system up by id
func (s *Scenario) System(id string) (*system.PlanetarySystem, error) {
	found, ok := s.Catalog.Get(id)
	if !ok {
		return nil, shared.NewSystemNotFoundError(id)
	}
	return found, nil
}

// AmmoType looks an ammunition type up by name
func (s *Scenario) AmmoType(name string) (warehouse.AmmoType, bool) {
	t, ok := s.AmmoTypes[name]
	return t, ok
}

// ActiveContracts returns the contracts running on the scenario date
func (s *Scenario) ActiveContracts() []access.Contract {
	return access.ActiveOn(s.Contracts, s.Date)
}
