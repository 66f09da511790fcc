package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlane-logistics/internal/application/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/application/common"
)

// ListStockQuery lists the warehouse and shipments in transit
type ListStockQuery struct{}

// StockLineDTO is one row of the listing
type StockLineDTO struct {
	Type          string
	Quality       string
	Quantity      int
	IsAmmo        bool
	DaysToArrival int
}

// ListStockResponse carries the listing and the current balance
type ListStockResponse struct {
	OnHand    []StockLineDTO
	InTransit []StockLineDTO
	Balance   int64
}

// ListStockHandler handles the ListStock query
type ListStockHandler struct {
	engine *campaign.Engine
}

// NewListStockHandler creates a new ListStockHandler
func NewListStockHandler(engine *campaign.Engine) *ListStockHandler {
	return &ListStockHandler{engine: engine}
}

// Handle executes the ListStock query
func (h *ListStockHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ListStockQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListStockQuery")
	}

	response := &ListStockResponse{Balance: h.engine.Account.Balance()}
	for _, p := range h.engine.Quartermaster.Warehouse().Entries() {
		response.OnHand = append(response.OnHand, StockLineDTO{
			Type: p.Type, Quality: p.Quality.String(), Quantity: p.Quantity, IsAmmo: p.IsAmmo(),
		})
	}
	for _, p := range h.engine.Quartermaster.InTransit() {
		response.InTransit = append(response.InTransit, StockLineDTO{
			Type: p.Type, Quality: p.Quality.String(), Quantity: p.Quantity, IsAmmo: p.IsAmmo(),
			DaysToArrival: p.DaysToArrival,
		})
	}
	return response, nil
}
