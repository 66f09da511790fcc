package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/starlane-logistics/internal/domain/access"
	"github.com/andrescamacho/starlane-logistics/internal/domain/routing"
	"github.com/andrescamacho/starlane-logistics/internal/domain/system"
	"github.com/andrescamacho/starlane-logistics/test/helpers"
)

type jumpRoutingContext struct {
	systems   []*system.PlanetarySystem
	settings  access.Settings
	standings access.Standings
	contracts []access.Contract
	options   routing.Options
	result    routing.SearchResult
}

func (ctx *jumpRoutingContext) reset() {
	ctx.systems = nil
	ctx.settings = access.Settings{TravellingFaction: "FS"}
	ctx.standings = access.Standings{}
	ctx.contracts = nil
	ctx.options = routing.Options{}
	ctx.result = routing.SearchResult{}
}

// Given steps

func (ctx *jumpRoutingContext) aStarMap(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("star map table needs a header and at least one system")
	}
	header := make(map[string]int)
	for i, cell := range table.Rows[0].Cells {
		header[cell.Value] = i
	}
	cell := func(row *messages.PickleTableRow, column string) string {
		i, ok := header[column]
		if !ok {
			return ""
		}
		return strings.TrimSpace(row.Cells[i].Value)
	}

	for _, row := range table.Rows[1:] {
		id := cell(row, "id")
		x, err := strconv.ParseFloat(cell(row, "x"), 64)
		if err != nil {
			return fmt.Errorf("system %s: bad x: %w", id, err)
		}
		y, err := strconv.ParseFloat(cell(row, "y"), 64)
		if err != nil {
			return fmt.Errorf("system %s: bad y: %w", id, err)
		}

		var opts []helpers.SystemOption
		if owner := cell(row, "owner"); owner != "" {
			opts = append(opts, helpers.OwnedBy(owner))
		}
		if cell(row, "populated") == "no" {
			opts = append(opts, helpers.Empty())
		}

		s, err := helpers.BuildSystem(id, x, y, opts...)
		if err != nil {
			return err
		}
		ctx.systems = append(ctx.systems, s)
	}
	return nil
}

func (ctx *jumpRoutingContext) factionsAtOrBelowAreHostile(threshold int) error {
	ctx.settings.TrackFactionStanding = true
	ctx.settings.OutlawThreshold = float64(threshold)
	return nil
}

func (ctx *jumpRoutingContext) ourStandingWithIs(faction string, standing int) error {
	ctx.standings[faction] = float64(standing)
	return nil
}

func (ctx *jumpRoutingContext) weHoldAContractWith(employer string) error {
	ctx.contracts = append(ctx.contracts, access.Contract{
		ID:       fmt.Sprintf("contract-%d", len(ctx.contracts)+1),
		Employer: employer,
		Start:    helpers.CampaignStart,
	})
	return nil
}

func (ctx *jumpRoutingContext) emptySystemsAreAvoided() error {
	ctx.options.AvoidEmptySystems = true
	return nil
}

// When steps

func (ctx *jumpRoutingContext) iPlanARouteFromTo(from, to string) error {
	return ctx.plan(from, to, false)
}

func (ctx *jumpRoutingContext) iPlanARouteIgnoringAccess(from, to string) error {
	return ctx.plan(from, to, true)
}

func (ctx *jumpRoutingContext) plan(from, to string, bypassAccess bool) error {
	catalog, err := system.NewCatalogFrom(ctx.systems)
	if err != nil {
		return err
	}
	start, ok := catalog.Get(from)
	if !ok {
		return fmt.Errorf("unknown system %s", from)
	}
	end, ok := catalog.Get(to)
	if !ok {
		return fmt.Errorf("unknown system %s", to)
	}

	policy := access.NewPolicy(ctx.settings, ctx.standings)
	router := routing.NewRouter(catalog, policy, ctx.options)
	q := routing.Query{Date: helpers.CampaignStart, Contracts: ctx.contracts}
	ctx.result = router.Search(q, start, end, bypassAccess, false)
	return nil
}

// Then steps

func (ctx *jumpRoutingContext) theRouteShouldBe(expected string) error {
	got := strings.Join(ctx.result.Path.IDs(), ", ")
	if got != expected {
		return fmt.Errorf("expected route %q but got %q", expected, got)
	}
	return nil
}

func (ctx *jumpRoutingContext) theRouteShouldReachItsDestination() error {
	if !ctx.result.Path.Reached() {
		return fmt.Errorf("expected route to reach destination, stopped with %s", ctx.result.Reason)
	}
	return nil
}

func (ctx *jumpRoutingContext) theRouteShouldNotReachItsDestination() error {
	if ctx.result.Path.Reached() {
		return fmt.Errorf("expected route to fall short but got %s", ctx.result.Path)
	}
	return nil
}

func (ctx *jumpRoutingContext) theSearchShouldStopWith(reason string) error {
	if string(ctx.result.Reason) != reason {
		return fmt.Errorf("expected stop reason %q but got %q", reason, ctx.result.Reason)
	}
	return nil
}

func (ctx *jumpRoutingContext) theSearchShouldBeEscaping() error {
	if !ctx.result.Escaping {
		return fmt.Errorf("expected the search to escape from a hostile start")
	}
	return nil
}

// Register steps

func InitializeJumpRoutingScenario(sc *godog.ScenarioContext) {
	routingCtx := &jumpRoutingContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		routingCtx.reset()
		return ctx, nil
	})

	sc.Step(`^a star map:$`, routingCtx.aStarMap)
	sc.Step(`^factions at standing (-?\d+) or below are hostile$`, routingCtx.factionsAtOrBelowAreHostile)
	sc.Step(`^our standing with "([^"]*)" is (-?\d+)$`, routingCtx.ourStandingWithIs)
	sc.Step(`^we hold a contract with "([^"]*)"$`, routingCtx.weHoldAContractWith)
	sc.Step(`^empty systems are avoided$`, routingCtx.emptySystemsAreAvoided)
	sc.Step(`^I plan a route from "([^"]*)" to "([^"]*)"$`, routingCtx.iPlanARouteFromTo)
	sc.Step(`^I plan a route from "([^"]*)" to "([^"]*)" ignoring access$`, routingCtx.iPlanARouteIgnoringAccess)
	sc.Step(`^the route should be "([^"]*)"$`, routingCtx.theRouteShouldBe)
	sc.Step(`^the route should reach its destination$`, routingCtx.theRouteShouldReachItsDestination)
	sc.Step(`^the route should not reach its destination$`, routingCtx.theRouteShouldNotReachItsDestination)
	sc.Step(`^the search should stop with "([^"]*)"$`, routingCtx.theSearchShouldStopWith)
	sc.Step(`^the search should be escaping hostile space$`, routingCtx.theSearchShouldBeEscaping)
}
