package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlane-logistics/internal/application/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/application/common"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/warehouse"
)

// AddStockCommand puts parts or ammunition into the warehouse. When PartType names
// a known ammunition type, Quantity is a shot count.
type AddStockCommand struct {
	PartType string
	Quality  shared.Rating
	Quantity int
	UnitCost int64
}

// AddStockResponse reports the merged entry
type AddStockResponse struct {
	Key      warehouse.Key
	Quantity int
}

// AddStockHandler handles the AddStock command
type AddStockHandler struct {
	engine *campaign.Engine
	store  campaign.Store
}

// NewAddStockHandler creates a new AddStockHandler; store may be empty
func NewAddStockHandler(engine *campaign.Engine, store campaign.Store) *AddStockHandler {
	return &AddStockHandler{engine: engine, store: store}
}

// Handle executes the AddStock command
func (h *AddStockHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AddStockCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AddStockCommand")
	}

	var (
		part *warehouse.Part
		err  error
	)
	if ammoType, isAmmo := h.engine.Scenario.AmmoType(cmd.PartType); isAmmo {
		part, err = warehouse.NewAmmoStorage(ammoType, cmd.Quality, cmd.Quantity)
	} else {
		part, err = warehouse.NewPart(cmd.PartType, cmd.Quality, cmd.Quantity, cmd.UnitCost)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid stock entry: %w", err)
	}

	entry := h.engine.Quartermaster.AddPart(part)
	if err := h.engine.Save(ctx, h.store); err != nil {
		return nil, err
	}

	common.LoggerFromContext(ctx).Log(common.LevelInfo, "Stock added", map[string]interface{}{
		"key":      entry.Key().String(),
		"added":    cmd.Quantity,
		"quantity": entry.Quantity,
	})
	return &AddStockResponse{Key: entry.Key(), Quantity: entry.Quantity}, nil
}
