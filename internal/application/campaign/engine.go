package campaign

import (
	"github.com/andrescamacho/starlane-logistics/internal/application/procurement"
	"github.com/andrescamacho/starlane-logistics/internal/domain/access"
	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	domainCampaign "github.com/andrescamacho/starlane-logistics/internal/domain/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/domain/finance"
	"github.com/andrescamacho/starlane-logistics/internal/domain/routing"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/transit"
	"github.com/andrescamacho/starlane-logistics/internal/domain/warehouse"
)

// Settings bundles the option sets of every logistics service
type Settings struct {
	Access      access.Settings
	Routing     routing.Options
	Transit     transit.Options
	Acquisition acquisition.Options
	Warehouse   warehouse.Options
	Procurement procurement.Options
}

// Engine is a scenario with every logistics service wired around it.
// All services share one Dice and one Calendar.
type Engine struct {
	Scenario      *domainCampaign.Scenario
	Settings      Settings
	Dice          shared.Dice
	Calendar      *shared.CampaignCalendar
	Policy        *access.Policy
	Router        *routing.Router
	Estimator     *transit.Estimator
	Resolver      *acquisition.Resolver
	Account       *finance.Account
	Quartermaster *warehouse.Quartermaster
	Scheduler     *procurement.Scheduler
}

// NewEngine wires the services for scenario
func NewEngine(scenario *domainCampaign.Scenario, settings Settings, dice shared.Dice) *Engine {
	if settings.Access.TravellingFaction == "" {
		settings.Access.TravellingFaction = scenario.Faction
	}

	calendar := shared.NewCampaignCalendar(scenario.Date)
	policy := access.NewPolicy(settings.Access, scenario.Standings)
	router := routing.NewRouter(scenario.Catalog, policy, settings.Routing)
	estimator := transit.NewEstimator(dice, calendar, settings.Transit)
	resolver := acquisition.NewResolver(settings.Acquisition, dice)
	account := finance.NewAccount(scenario.Balance, calendar)
	quartermaster := warehouse.Restore(scenario.Stock, account, settings.Warehouse)

	scheduler := procurement.NewScheduler(procurement.Dependencies{
		Resolver:  resolver,
		Estimator: estimator,
		Funds:     account,
		Personnel: scenario.Roster,
		Clock:     calendar,
		Contracts: scenario.Contracts,
		Router:    router,
		Location:  scenario.Location,
		Sink:      procurement.NewQuartermasterSink(quartermaster),
	}, settings.Procurement)

	return &Engine{
		Scenario:      scenario,
		Settings:      settings,
		Dice:          dice,
		Calendar:      calendar,
		Policy:        policy,
		Router:        router,
		Estimator:     estimator,
		Resolver:      resolver,
		Account:       account,
		Quartermaster: quartermaster,
		Scheduler:     scheduler,
	}
}

// RouteQuery is the routing context for the current campaign date
func (e *Engine) RouteQuery() routing.Query {
	return routing.Query{Date: e.Calendar.Today(), Contracts: e.Scenario.Contracts}
}

// AcquisitionQuery is the acquisition context for the current campaign date
func (e *Engine) AcquisitionQuery() acquisition.Query {
	return acquisition.Query{Date: e.Calendar.Today(), Contracts: e.Scenario.Contracts}
}
