package bdd

import (
	"os"
	"testing"

	"github.com/andrescamacho/starlane-logistics/test/bdd/steps"
	"github.com/andrescamacho/starlane-logistics/test/helpers"
	"github.com/cucumber/godog"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/domain", "features/application"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	// Domain layer scenarios
	steps.InitializeJumpRoutingScenario(sc)
	steps.InitializeAmmoConversionScenario(sc)

	// Application layer scenarios; these go through the mediator and the shared database
	steps.InitializeProcurementScenario(sc)
}

func TestMain(m *testing.M) {
	// One in-memory database for every scenario; each scenario truncates it first
	if err := helpers.InitializeSharedTestDB(); err != nil {
		panic("Failed to initialize shared test database: " + err.Error())
	}
	defer helpers.CloseSharedTestDB()

	os.Exit(m.Run())
}
