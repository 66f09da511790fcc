package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlane-logistics/internal/adapters/metrics"
	"github.com/andrescamacho/starlane-logistics/internal/application/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/application/common"
)

// WithdrawAmmoCommand takes shots of an ammunition type out of stock
type WithdrawAmmoCommand struct {
	AmmoType string
	Shots    int
}

// WithdrawAmmoHandler handles the WithdrawAmmo command
type WithdrawAmmoHandler struct {
	engine *campaign.Engine
	store  campaign.Store
}

// NewWithdrawAmmoHandler creates a new WithdrawAmmoHandler; store may be empty
func NewWithdrawAmmoHandler(engine *campaign.Engine, store campaign.Store) *WithdrawAmmoHandler {
	return &WithdrawAmmoHandler{engine: engine, store: store}
}

// Handle executes the WithdrawAmmo command. The response is a warehouse.Withdrawal.
func (h *WithdrawAmmoHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*WithdrawAmmoCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *WithdrawAmmoCommand")
	}
	ammoType, found := h.engine.Scenario.AmmoType(cmd.AmmoType)
	if !found {
		return nil, fmt.Errorf("unknown ammunition type %q", cmd.AmmoType)
	}
	if cmd.Shots <= 0 {
		return nil, fmt.Errorf("shots must be positive, got %d", cmd.Shots)
	}

	withdrawal := h.engine.Quartermaster.WithdrawAmmo(ammoType, cmd.Shots)

	metrics.RecordAmmoWithdrawal(ammoType.Name, withdrawal.Requested, withdrawal.Delivered, withdrawal.Surplus, withdrawal.Loss)

	if err := h.engine.Save(ctx, h.store); err != nil {
		return nil, err
	}

	level := common.LevelInfo
	if withdrawal.Shortfall() > 0 {
		level = common.LevelWarn
	}
	common.LoggerFromContext(ctx).Log(level, "Ammunition withdrawn", map[string]interface{}{
		"ammo_type":   ammoType.Name,
		"requested":   withdrawal.Requested,
		"delivered":   withdrawal.Delivered,
		"conversions": len(withdrawal.Conversions),
		"surplus":     withdrawal.Surplus,
		"loss":        withdrawal.Loss,
	})
	return &withdrawal, nil
}
