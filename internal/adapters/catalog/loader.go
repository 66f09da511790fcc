package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/starlane-logistics/internal/domain/access"
	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	"github.com/andrescamacho/starlane-logistics/internal/domain/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/domain/personnel"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/system"
	"github.com/andrescamacho/starlane-logistics/internal/domain/warehouse"
)

const dateLayout = "2006-01-02"

// YAMLScenarioLoader reads a scenario from a YAML file
type YAMLScenarioLoader struct {
	path string
}

var (
	_ campaign.ScenarioLoader = (*YAMLScenarioLoader)(nil)
	_ system.CatalogLoader    = (*YAMLScenarioLoader)(nil)
)

// NewYAMLScenarioLoader creates a loader for the file at path
func NewYAMLScenarioLoader(path string) *YAMLScenarioLoader {
	return &YAMLScenarioLoader{path: path}
}

// LoadScenario reads and builds the scenario
func (l *YAMLScenarioLoader) LoadScenario(ctx context.Context) (*campaign.Scenario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", l.path, err)
	}
	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", l.path, err)
	}
	return scenario, nil
}

// LoadCatalog reads only the star map
func (l *YAMLScenarioLoader) LoadCatalog(ctx context.Context) (*system.Catalog, error) {
	scenario, err := l.LoadScenario(ctx)
	if err != nil {
		return nil, err
	}
	return scenario.Catalog, nil
}

// ParseScenario decodes, validates and builds a scenario from YAML
func ParseScenario(data []byte) (*campaign.Scenario, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validator.New().Struct(&doc); err != nil {
		return nil, formatValidationError(err)
	}
	return build(&doc)
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("field '%s' failed validation: %s (value: '%v')", e.Namespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
}

func build(doc *Document) (*campaign.Scenario, error) {
	date, err := parseDate(doc.Date)
	if err != nil {
		return nil, err
	}

	systems, err := buildCatalog(doc.Systems)
	if err != nil {
		return nil, err
	}
	location, ok := systems.Get(doc.Location)
	if !ok {
		return nil, shared.NewSystemNotFoundError(doc.Location)
	}

	contracts, err := buildContracts(doc.Contracts)
	if err != nil {
		return nil, err
	}
	roster, err := buildRoster(doc.Personnel)
	if err != nil {
		return nil, err
	}

	ammoTypes := make(map[string]warehouse.AmmoType, len(doc.AmmoTypes))
	for _, a := range doc.AmmoTypes {
		ammoTypes[a.Name] = warehouse.AmmoType{Name: a.Name, Family: a.Family, RackSize: a.RackSize}
	}

	shopping, err := buildShoppingList(doc.Shopping, ammoTypes)
	if err != nil {
		return nil, err
	}
	stock, err := buildStock(doc.Stock, ammoTypes)
	if err != nil {
		return nil, err
	}

	standings := make(access.Standings, len(doc.Standings))
	for faction, value := range doc.Standings {
		standings[faction] = value
	}

	return &campaign.Scenario{
		Date:      date,
		Faction:   doc.Faction,
		Balance:   doc.Balance,
		Catalog:   systems,
		Location:  location,
		Standings: standings,
		Contracts: contracts,
		Roster:    roster,
		Shopping:  shopping,
		Stock:     stock,
		AmmoTypes: ammoTypes,
	}, nil
}

func buildCatalog(docs []SystemDoc) (*system.Catalog, error) {
	systems := make([]*system.PlanetarySystem, 0, len(docs))
	for _, d := range docs {
		spec := system.SystemSpec{
			ID:            d.ID,
			Name:          d.Name,
			X:             d.X,
			Y:             d.Y,
			RechargeHours: d.RechargeHours,
			StationHours:  d.StationHours,
			JumpPointDays: d.JumpPointDays,
		}
		if d.CommandCircuit != "" {
			since, err := parseDate(d.CommandCircuit)
			if err != nil {
				return nil, err
			}
			spec.CommandCircuit = &since
		}
		for _, p := range d.Population {
			at, err := parseDate(p.Date)
			if err != nil {
				return nil, err
			}
			spec.Population = append(spec.Population, system.PopulationEvent{Date: at, Population: p.Population})
		}
		for _, o := range d.Ownership {
			at, err := parseDate(o.Date)
			if err != nil {
				return nil, err
			}
			spec.Ownership = append(spec.Ownership, system.OwnershipEvent{Date: at, Factions: o.Factions})
		}
		for _, s := range d.Stations {
			at, err := parseDate(s.Date)
			if err != nil {
				return nil, err
			}
			spec.Stations = append(spec.Stations, system.StationEvent{Date: at, Kind: system.StationKind(s.Kind)})
		}

		var err error
		if spec.SocioIndustrial.Tech, err = ratingOr(d.Tech, shared.RatingC); err != nil {
			return nil, fmt.Errorf("system %s tech: %w", d.ID, err)
		}
		if spec.SocioIndustrial.Industry, err = ratingOr(d.Industry, shared.RatingC); err != nil {
			return nil, fmt.Errorf("system %s industry: %w", d.ID, err)
		}
		if spec.SocioIndustrial.Output, err = ratingOr(d.Output, shared.RatingC); err != nil {
			return nil, fmt.Errorf("system %s output: %w", d.ID, err)
		}

		s, err := system.NewPlanetarySystem(spec)
		if err != nil {
			return nil, fmt.Errorf("system %s: %w", d.ID, err)
		}
		systems = append(systems, s)
	}
	return system.NewCatalogFrom(systems)
}

func buildContracts(docs []ContractDoc) ([]access.Contract, error) {
	contracts := make([]access.Contract, 0, len(docs))
	for _, d := range docs {
		start, err := parseDate(d.Start)
		if err != nil {
			return nil, err
		}
		var end time.Time
		if d.End != "" {
			if end, err = parseDate(d.End); err != nil {
				return nil, err
			}
		}
		availability, err := ratingOr(d.PartsAvailability, shared.RatingF)
		if err != nil {
			return nil, fmt.Errorf("contract %s: %w", d.ID, err)
		}
		contracts = append(contracts, access.Contract{
			ID:                d.ID,
			Employer:          d.Employer,
			Enemy:             d.Enemy,
			Start:             start,
			End:               end,
			PartsAvailability: availability,
		})
	}
	return contracts, nil
}

func buildRoster(docs []PersonDoc) (*personnel.Roster, error) {
	people := make([]*personnel.Person, 0, len(docs))
	for _, d := range docs {
		skills := make([]acquisition.Skill, 0, len(d.Skills))
		for _, s := range d.Skills {
			skills = append(skills, acquisition.Skill{Name: s.Name, Level: s.Level, TargetNumber: s.Target})
		}
		person, err := personnel.NewPerson(d.ID, d.Name, skills...)
		if err != nil {
			return nil, fmt.Errorf("person %s: %w", d.ID, err)
		}
		people = append(people, person.WithEdge(d.Edge, d.AcquisitionEdge))
	}
	return personnel.NewRoster(people...), nil
}

func buildShoppingList(docs []WorkDoc, ammoTypes map[string]warehouse.AmmoType) (*acquisition.ShoppingList, error) {
	list := acquisition.NewShoppingList()
	for _, d := range docs {
		availability, err := shared.ParseRating(d.Availability)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", d.Name, err)
		}
		work, err := acquisition.NewWork(d.Name, d.Quantity, d.Cost, availability)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", d.Name, err)
		}
		if work.TechBase, err = acquisition.ParseTechBase(d.TechBase); err != nil {
			return nil, err
		}
		if work.TechLevel, err = acquisition.ParseTechLevel(d.TechLevel); err != nil {
			return nil, err
		}
		work.IntroYear = d.IntroYear
		work.ExtinctYear = d.ExtinctYear
		work.ReintroYear = d.ReintroYear
		work.DaysToWait = d.DaysToWait
		for _, m := range d.Modifiers {
			work.Modifiers = append(work.Modifiers, acquisition.Modifier{Delta: m.Delta, Label: m.Label})
		}

		payload, err := buildPayload(d, ammoTypes)
		if err != nil {
			return nil, err
		}
		work.Payload = payload
		list.Add(work)
	}
	return list, nil
}

func buildPayload(d WorkDoc, ammoTypes map[string]warehouse.AmmoType) (acquisition.Payload, error) {
	quality, err := ratingOr(d.Quality, shared.RatingD)
	if err != nil {
		return acquisition.Payload{}, fmt.Errorf("item %s quality: %w", d.Name, err)
	}
	payload := acquisition.Payload{PartType: d.PartType, Quality: quality, Units: d.Units}
	if payload.PartType == "" {
		payload.PartType = d.Name
	}
	if payload.Units == 0 {
		payload.Units = 1
	}
	if d.AmmoType != "" {
		ammo, ok := ammoTypes[d.AmmoType]
		if !ok {
			return acquisition.Payload{}, fmt.Errorf("item %s: unknown ammo type %q", d.Name, d.AmmoType)
		}
		payload.PartType = ammo.Name
		payload.AmmoFamily = ammo.Family
		payload.RackSize = ammo.RackSize
	}
	return payload, nil
}

func buildStock(docs []StockDoc, ammoTypes map[string]warehouse.AmmoType) ([]*warehouse.Part, error) {
	parts := make([]*warehouse.Part, 0, len(docs))
	for _, d := range docs {
		quality, err := ratingOr(d.Quality, shared.RatingD)
		if err != nil {
			return nil, fmt.Errorf("stock %s: %w", d.Type, err)
		}

		var part *warehouse.Part
		if d.AmmoType != "" {
			ammo, ok := ammoTypes[d.AmmoType]
			if !ok {
				return nil, fmt.Errorf("stock %s: unknown ammo type %q", d.Type, d.AmmoType)
			}
			part, err = warehouse.NewAmmoStorage(ammo, quality, d.Quantity)
		} else {
			part, err = warehouse.NewPart(d.Type, quality, d.Quantity, d.UnitCost)
		}
		if err != nil {
			return nil, fmt.Errorf("stock %s: %w", d.Type, err)
		}
		part.UnitCost = d.UnitCost
		part.DaysToArrival = d.DaysToArrival
		parts = append(parts, part)
	}
	return parts, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, shared.NewValidationError("date", fmt.Sprintf("invalid date %q", value))
	}
	return t, nil
}

func ratingOr(value string, fallback shared.Rating) (shared.Rating, error) {
	if value == "" {
		return fallback, nil
	}
	return shared.ParseRating(value)
}
