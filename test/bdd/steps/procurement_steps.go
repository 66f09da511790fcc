package steps

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/starlane-logistics/internal/adapters/catalog"
	"github.com/andrescamacho/starlane-logistics/internal/adapters/persistence"
	"github.com/andrescamacho/starlane-logistics/internal/application/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/application/common"
	navigationQueries "github.com/andrescamacho/starlane-logistics/internal/application/navigation/queries"
	"github.com/andrescamacho/starlane-logistics/internal/application/procurement"
	procurementCommands "github.com/andrescamacho/starlane-logistics/internal/application/procurement/commands"
	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	domainCampaign "github.com/andrescamacho/starlane-logistics/internal/domain/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/domain/finance"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/transit"
	"github.com/andrescamacho/starlane-logistics/test/helpers"
)

// scenarioDir is relative to test/bdd, where godog runs
const scenarioDir = "../../configs/scenarios"

type procurementContext struct {
	scenario *domainCampaign.Scenario
	mode     procurement.Mode
	dice     shared.Dice

	engine   *campaign.Engine
	mediator common.Mediator
	repos    procurementCommands.Repositories

	response *procurementCommands.RunProcurementCycleResponse
	route    *navigationQueries.PlanRouteResponse
	err      error
}

func (ctx *procurementContext) reset() {
	ctx.scenario = nil
	ctx.mode = procurement.ModeStandard
	ctx.dice = shared.NewScriptedDice()
	ctx.engine = nil
	ctx.mediator = nil
	ctx.response = nil
	ctx.route = nil
	ctx.err = nil

	if err := helpers.TruncateAllTables(); err != nil {
		panic(fmt.Errorf("failed to truncate test database: %w", err))
	}
	ctx.repos = procurementCommands.Repositories{
		State:        persistence.NewGormCampaignStateRepository(helpers.SharedTestDB),
		ShoppingList: persistence.NewGormShoppingListRepository(helpers.SharedTestDB),
		Stock:        persistence.NewGormStockRepository(helpers.SharedTestDB),
		Transactions: persistence.NewGormTransactionRepository(helpers.SharedTestDB),
	}
}

// wire builds the engine and mediator on first use so Given steps can run in any order
func (ctx *procurementContext) wire() error {
	if ctx.mediator != nil {
		return nil
	}
	if ctx.scenario == nil {
		return fmt.Errorf("no campaign scenario loaded")
	}

	options := acquisition.DefaultOptions()
	if ctx.mode == procurement.ModeAutomatic {
		options.AcquisitionSkill = acquisition.SkillAutomatic
	}
	settings := campaign.Settings{
		Transit:     transit.Options{Unit: transit.UnitDay},
		Acquisition: options,
		Procurement: procurement.Options{Mode: ctx.mode, WaitingPeriod: 7, MaxJumpsPlanetary: 2},
	}
	if _, err := ctx.repos.Resume(context.Background(), ctx.scenario); err != nil {
		return err
	}
	ctx.engine = campaign.NewEngine(ctx.scenario, settings, ctx.dice)

	med := common.NewMediator()
	if err := common.RegisterHandler[*procurementCommands.RunProcurementCycleCommand](med,
		procurementCommands.NewRunProcurementCycleHandler(ctx.engine, ctx.repos)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*navigationQueries.PlanRouteQuery](med,
		navigationQueries.NewPlanRouteHandler(ctx.engine)); err != nil {
		return err
	}
	ctx.mediator = med
	return nil
}

// Given steps

func (ctx *procurementContext) theCampaignScenario(doc *godog.DocString) error {
	scenario, err := catalog.ParseScenario([]byte(doc.Content))
	if err != nil {
		return err
	}
	ctx.scenario = scenario
	return nil
}

func (ctx *procurementContext) theShippedScenario(name string) error {
	loader := catalog.NewYAMLScenarioLoader(filepath.Join(scenarioDir, name+".yaml"))
	scenario, err := loader.LoadScenario(context.Background())
	if err != nil {
		return err
	}
	ctx.scenario = scenario
	return nil
}

func (ctx *procurementContext) procurementRunsInMode(mode string) error {
	parsed, err := procurement.ParseMode(mode)
	if err != nil {
		return err
	}
	ctx.mode = parsed
	return nil
}

func (ctx *procurementContext) everyDieShows(face int) error {
	faces := make([]int, 500)
	for i := range faces {
		faces[i] = face
	}
	ctx.dice = shared.NewScriptedDice(faces...)
	return nil
}

// When steps

func (ctx *procurementContext) iRunProcurementForDays(days int) error {
	if err := ctx.wire(); err != nil {
		return err
	}
	response, err := ctx.mediator.Send(context.Background(), &procurementCommands.RunProcurementCycleCommand{Days: days})
	ctx.err = err
	if err != nil {
		ctx.response = nil
		return nil
	}
	ctx.response = response.(*procurementCommands.RunProcurementCycleResponse)
	return nil
}

func (ctx *procurementContext) theQuartermasterPlansARoute(from, to string) error {
	if err := ctx.wire(); err != nil {
		return err
	}
	response, err := ctx.mediator.Send(context.Background(), &navigationQueries.PlanRouteQuery{
		FromSystemID: from,
		ToSystemID:   to,
	})
	ctx.err = err
	if err != nil {
		ctx.route = nil
		return nil
	}
	ctx.route = response.(*navigationQueries.PlanRouteResponse)
	return nil
}

// Then steps

func (ctx *procurementContext) theCampaignBalanceShouldBe(expected int64) error {
	if ctx.response == nil {
		return fmt.Errorf("no procurement response: %v", ctx.err)
	}
	if ctx.response.Balance != expected {
		return fmt.Errorf("expected balance %d but got %d", expected, ctx.response.Balance)
	}
	return nil
}

func (ctx *procurementContext) theStoredShoppingListShouldHoldItems(expected int) error {
	list, err := ctx.repos.ShoppingList.Load(context.Background())
	if err != nil {
		return err
	}
	got := 0
	if list != nil {
		got = list.Len()
	}
	if got != expected {
		return fmt.Errorf("expected %d stored shopping list items but got %d", expected, got)
	}
	return nil
}

func (ctx *procurementContext) theStoredStockShouldHold(expected int, partType, where string) error {
	parts, err := ctx.repos.Stock.Load(context.Background())
	if err != nil {
		return err
	}
	got := 0
	for _, part := range parts {
		if part.Type != partType {
			continue
		}
		inTransit := part.DaysToArrival > 0
		if inTransit == (where == "in transit") {
			got += part.Quantity
		}
	}
	if got != expected {
		return fmt.Errorf("expected %d %s %s but got %d", expected, partType, where, got)
	}
	return nil
}

func (ctx *procurementContext) acquisitionTransactionsShouldBeRecorded(expected int) error {
	acquisitionType := finance.TransactionTypeAcquisition
	transactions, err := ctx.repos.Transactions.List(context.Background(), finance.QueryOptions{TransactionType: &acquisitionType})
	if err != nil {
		return err
	}
	if len(transactions) != expected {
		return fmt.Errorf("expected %d acquisition transactions but got %d", expected, len(transactions))
	}
	return nil
}

func (ctx *procurementContext) thePlannedRouteShouldBe(expected string) error {
	if ctx.route == nil {
		return fmt.Errorf("no route planned: %v", ctx.err)
	}
	got := strings.Join(ctx.route.SystemIDs, ", ")
	if got != expected {
		return fmt.Errorf("expected planned route %q but got %q", expected, got)
	}
	if !ctx.route.Reached {
		return fmt.Errorf("expected planned route to reach its destination")
	}
	return nil
}

func (ctx *procurementContext) theRequestShouldFailWith(expected string) error {
	if ctx.err == nil {
		return fmt.Errorf("expected error but request succeeded")
	}
	if !strings.Contains(ctx.err.Error(), expected) {
		return fmt.Errorf("expected error containing '%s' but got '%s'", expected, ctx.err.Error())
	}
	return nil
}

// Register steps

func InitializeProcurementScenario(sc *godog.ScenarioContext) {
	procCtx := &procurementContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		procCtx.reset()
		return ctx, nil
	})

	sc.Step(`^the campaign scenario:$`, procCtx.theCampaignScenario)
	sc.Step(`^the shipped scenario "([^"]*)"$`, procCtx.theShippedScenario)
	sc.Step(`^procurement runs in (\w+) mode$`, procCtx.procurementRunsInMode)
	sc.Step(`^every die shows (\d)$`, procCtx.everyDieShows)
	sc.Step(`^I run procurement for (\d+) days?$`, procCtx.iRunProcurementForDays)
	sc.Step(`^the quartermaster plans a route from "([^"]*)" to "([^"]*)"$`, procCtx.theQuartermasterPlansARoute)
	sc.Step(`^the campaign balance should be (\d+)$`, procCtx.theCampaignBalanceShouldBe)
	sc.Step(`^the stored shopping list should hold (\d+) items?$`, procCtx.theStoredShoppingListShouldHoldItems)
	sc.Step(`^the stored stock should hold (\d+) "([^"]*)" (on hand|in transit)$`, procCtx.theStoredStockShouldHold)
	sc.Step(`^(\d+) acquisition transactions? should be recorded$`, procCtx.acquisitionTransactionsShouldBeRecorded)
	sc.Step(`^the planned route should be "([^"]*)"$`, procCtx.thePlannedRouteShouldBe)
	sc.Step(`^the request should fail with "([^"]*)"$`, procCtx.theRequestShouldFailWith)
}
