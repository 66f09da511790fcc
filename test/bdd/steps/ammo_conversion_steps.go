package steps

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/warehouse"
)

type ammoStock struct {
	ammoType warehouse.AmmoType
	shots    int
}

type ammoConversionContext struct {
	types         map[string]warehouse.AmmoType
	stock         []ammoStock
	options       warehouse.Options
	quartermaster *warehouse.Quartermaster
	withdrawal    warehouse.Withdrawal
}

func (ctx *ammoConversionContext) reset() {
	ctx.types = make(map[string]warehouse.AmmoType)
	ctx.stock = nil
	ctx.options = warehouse.Options{}
	ctx.quartermaster = nil
	ctx.withdrawal = warehouse.Withdrawal{}
}

func (ctx *ammoConversionContext) lookup(name string) (warehouse.AmmoType, error) {
	ammoType, ok := ctx.types[name]
	if !ok {
		return warehouse.AmmoType{}, fmt.Errorf("unknown ammunition type %q", name)
	}
	return ammoType, nil
}

// Given steps

func (ctx *ammoConversionContext) theAmmunitionTypes(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		rack, err := strconv.Atoi(row.Cells[2].Value)
		if err != nil {
			return fmt.Errorf("bad rack size for %s: %w", row.Cells[0].Value, err)
		}
		ctx.types[row.Cells[0].Value] = warehouse.AmmoType{
			Name:     row.Cells[0].Value,
			Family:   row.Cells[1].Value,
			RackSize: rack,
		}
	}
	return nil
}

func (ctx *ammoConversionContext) ammunitionByTypeIs(state string) error {
	ctx.options.UseAmmoByType = state == "enabled"
	return nil
}

func (ctx *ammoConversionContext) theWarehouseHoldsShotsOf(shots int, name string) error {
	ammoType, err := ctx.lookup(name)
	if err != nil {
		return err
	}
	ctx.stock = append(ctx.stock, ammoStock{ammoType: ammoType, shots: shots})
	return nil
}

// When steps

func (ctx *ammoConversionContext) iWithdrawShotsOf(shots int, name string) error {
	ammoType, err := ctx.lookup(name)
	if err != nil {
		return err
	}
	ctx.quartermaster = warehouse.NewQuartermaster(nil, nil, ctx.options)
	for _, s := range ctx.stock {
		if _, err := ctx.quartermaster.AddAmmo(s.ammoType, shared.RatingD, s.shots); err != nil {
			return err
		}
	}
	ctx.withdrawal = ctx.quartermaster.WithdrawAmmo(ammoType, shots)
	return nil
}

// Then steps

func (ctx *ammoConversionContext) shotsShouldBeDelivered(expected int) error {
	if ctx.withdrawal.Delivered != expected {
		return fmt.Errorf("expected %d shots delivered but got %d", expected, ctx.withdrawal.Delivered)
	}
	return nil
}

func (ctx *ammoConversionContext) theWarehouseShouldHoldShotsOf(expected int, name string) error {
	if ctx.quartermaster == nil {
		return fmt.Errorf("no withdrawal was made")
	}
	got := ctx.quartermaster.Warehouse().Quantity(warehouse.Key{Type: name, Quality: shared.RatingD})
	if got != expected {
		return fmt.Errorf("expected %d shots of %s in stock but got %d", expected, name, got)
	}
	return nil
}

func (ctx *ammoConversionContext) shotsShouldBeReturnedAsSurplus(expected int) error {
	if ctx.withdrawal.Surplus != expected {
		return fmt.Errorf("expected surplus %d but got %d", expected, ctx.withdrawal.Surplus)
	}
	return nil
}

func (ctx *ammoConversionContext) theConversionShouldLoseMissiles(expected int) error {
	if ctx.withdrawal.Loss != expected {
		return fmt.Errorf("expected conversion loss %d but got %d", expected, ctx.withdrawal.Loss)
	}
	return nil
}

func (ctx *ammoConversionContext) theShortfallShouldBe(expected int) error {
	if got := ctx.withdrawal.Shortfall(); got != expected {
		return fmt.Errorf("expected shortfall %d but got %d", expected, got)
	}
	return nil
}

// Register steps

func InitializeAmmoConversionScenario(sc *godog.ScenarioContext) {
	ammoCtx := &ammoConversionContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		ammoCtx.reset()
		return ctx, nil
	})

	sc.Step(`^the ammunition types:$`, ammoCtx.theAmmunitionTypes)
	sc.Step(`^ammunition by type is (enabled|disabled)$`, ammoCtx.ammunitionByTypeIs)
	sc.Step(`^the warehouse holds (\d+) shots of "([^"]*)"$`, ammoCtx.theWarehouseHoldsShotsOf)
	sc.Step(`^I withdraw (\d+) shots of "([^"]*)"$`, ammoCtx.iWithdrawShotsOf)
	sc.Step(`^(\d+) shots should be delivered$`, ammoCtx.shotsShouldBeDelivered)
	sc.Step(`^the warehouse should hold (\d+) shots of "([^"]*)"$`, ammoCtx.theWarehouseShouldHoldShotsOf)
	sc.Step(`^(\d+) shots? should be returned as surplus$`, ammoCtx.shotsShouldBeReturnedAsSurplus)
	sc.Step(`^the conversion should lose (\d+) missiles$`, ammoCtx.theConversionShouldLoseMissiles)
	sc.Step(`^the shortfall should be (\d+)$`, ammoCtx.theShortfallShouldBe)
}
