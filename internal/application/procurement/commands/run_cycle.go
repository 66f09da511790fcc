package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlane-logistics/internal/adapters/metrics"
	"github.com/andrescamacho/starlane-logistics/internal/application/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/application/common"
	"github.com/andrescamacho/starlane-logistics/internal/application/procurement"
	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
)

// RunProcurementCycleCommand advances the campaign Days days, running one shopping
// cycle per day
type RunProcurementCycleCommand struct {
	Days int
}

// RunProcurementCycleResponse summarises the run
type RunProcurementCycleResponse struct {
	Reports   []procurement.CycleReport
	Arrived   int
	Balance   int64
	Remaining []*acquisition.Work
}

// Repositories persist the campaign between runs; any of them may be nil.
// Resume the scenario from the same store before building the engine.
type Repositories = campaign.Store

// RunProcurementCycleHandler handles the RunProcurementCycle command
type RunProcurementCycleHandler struct {
	engine *campaign.Engine
	repos  Repositories
}

// NewRunProcurementCycleHandler creates a new RunProcurementCycleHandler
func NewRunProcurementCycleHandler(engine *campaign.Engine, repos Repositories) *RunProcurementCycleHandler {
	return &RunProcurementCycleHandler{engine: engine, repos: repos}
}

// Handle executes the RunProcurementCycle command
func (h *RunProcurementCycleHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RunProcurementCycleCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RunProcurementCycleCommand")
	}
	if cmd.Days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", cmd.Days)
	}
	logger := common.LoggerFromContext(ctx)

	list := h.engine.Scenario.Shopping

	response := &RunProcurementCycleResponse{}
	for day := 0; day < cmd.Days; day++ {
		date := h.engine.Calendar.AdvanceDay()

		arrived := h.engine.Quartermaster.AdvanceDay()
		response.Arrived += len(arrived)
		metrics.RecordArrivals(len(arrived))
		for _, part := range arrived {
			logger.Log(common.LevelInfo, "Shipment arrived", map[string]interface{}{
				"date": date.Format("2006-01-02"),
				"part": part.String(),
			})
		}

		h.engine.Scenario.Roster.ResetAcquisitions()

		var report procurement.CycleReport
		list, report = h.engine.Scheduler.RunCycle(ctx, list)
		response.Reports = append(response.Reports, report)
	}
	h.engine.Scenario.Shopping = list

	response.Balance = h.engine.Account.Balance()
	response.Remaining = list.Items()
	metrics.RecordBalance(response.Balance)

	if err := h.engine.Save(ctx, h.repos); err != nil {
		return nil, err
	}
	return response, nil
}
