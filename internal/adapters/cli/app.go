package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/starlane-logistics/internal/adapters/catalog"
	"github.com/andrescamacho/starlane-logistics/internal/adapters/metrics"
	"github.com/andrescamacho/starlane-logistics/internal/adapters/persistence"
	"github.com/andrescamacho/starlane-logistics/internal/application/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/application/common"
	navigationQueries "github.com/andrescamacho/starlane-logistics/internal/application/navigation/queries"
	procurementCommands "github.com/andrescamacho/starlane-logistics/internal/application/procurement/commands"
	procurementQueries "github.com/andrescamacho/starlane-logistics/internal/application/procurement/queries"
	stockCommands "github.com/andrescamacho/starlane-logistics/internal/application/stock/commands"
	stockQueries "github.com/andrescamacho/starlane-logistics/internal/application/stock/queries"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/infrastructure/config"
	"github.com/andrescamacho/starlane-logistics/internal/infrastructure/database"
	"github.com/andrescamacho/starlane-logistics/internal/infrastructure/logging"
)

// App is a fully wired engine behind a mediator
type App struct {
	Config   *config.Config
	Engine   *campaign.Engine
	Mediator common.Mediator
	Logger   *slog.Logger

	db      *gorm.DB
	closers []io.Closer
}

// Context returns ctx carrying the application logger
func (a *App) Context(ctx context.Context) context.Context {
	return common.WithLogger(ctx, logging.NewSlogAdapter(a.Logger))
}

// Send dispatches request through the mediator
func (a *App) Send(ctx context.Context, request common.Request) (common.Response, error) {
	return a.Mediator.Send(a.Context(ctx), request)
}

// Close releases the database and log file
func (a *App) Close() {
	if a.db != nil {
		_ = database.Close(a.db)
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// bootstrap loads configuration and the scenario, then wires every handler
func bootstrap(ctx context.Context) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if scenarioPath != "" {
		cfg.Campaign.Scenario = scenarioPath
	}
	if seed != 0 {
		cfg.Campaign.Seed = seed
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if cfg.Campaign.Scenario == "" {
		return nil, fmt.Errorf("no scenario: set campaign.scenario or pass --scenario")
	}

	logger, logCloser, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg, Logger: logger, closers: []io.Closer{logCloser}}

	if cfg.Metrics.Enabled && !metrics.IsEnabled() {
		if err := metrics.Enable(); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to enable metrics: %w", err)
		}
	}

	scenario, err := catalog.NewYAMLScenarioLoader(cfg.Campaign.Scenario).LoadScenario(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	settings, err := SettingsFromConfig(cfg.Campaign)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("invalid campaign settings: %w", err)
	}

	var repos campaign.Store
	if cfg.Database.Enabled {
		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.db = db
		if err := database.AutoMigrate(db); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		repos = campaign.Store{
			State:        persistence.NewGormCampaignStateRepository(db),
			ShoppingList: persistence.NewGormShoppingListRepository(db),
			Stock:        persistence.NewGormStockRepository(db),
			Transactions: persistence.NewGormTransactionRepository(db),
		}
		if _, err := repos.Resume(ctx, scenario); err != nil {
			app.Close()
			return nil, err
		}
	}

	diceSeed := cfg.Campaign.Seed
	if diceSeed == 0 {
		diceSeed = time.Now().UnixNano()
	}
	app.Engine = campaign.NewEngine(scenario, settings, shared.NewSeededDice(diceSeed))

	med, err := newMediator(app.Engine, repos)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Mediator = med
	return app, nil
}

func newMediator(engine *campaign.Engine, repos campaign.Store) (common.Mediator, error) {
	med := common.NewMediator()
	if metrics.IsEnabled() {
		collector := metrics.NewCommandMetricsCollector()
		if err := collector.Register(); err != nil {
			return nil, err
		}
		med.Use(metrics.PrometheusMiddleware(collector))
	}

	registrations := []error{
		common.RegisterHandler[*navigationQueries.PlanRouteQuery](med, navigationQueries.NewPlanRouteHandler(engine)),
		common.RegisterHandler[*navigationQueries.EstimateTransitQuery](med, navigationQueries.NewEstimateTransitHandler(engine)),
		common.RegisterHandler[*procurementQueries.EvaluateTargetQuery](med, procurementQueries.NewEvaluateTargetHandler(engine)),
		common.RegisterHandler[*procurementCommands.RunProcurementCycleCommand](med, procurementCommands.NewRunProcurementCycleHandler(engine, repos)),
		common.RegisterHandler[*stockQueries.ListStockQuery](med, stockQueries.NewListStockHandler(engine)),
		common.RegisterHandler[*stockCommands.AddStockCommand](med, stockCommands.NewAddStockHandler(engine, repos)),
		common.RegisterHandler[*stockCommands.WithdrawAmmoCommand](med, stockCommands.NewWithdrawAmmoHandler(engine, repos)),
	}
	for _, err := range registrations {
		if err != nil {
			return nil, fmt.Errorf("failed to register handler: %w", err)
		}
	}
	return med, nil
}
