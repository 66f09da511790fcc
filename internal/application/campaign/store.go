package campaign

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	domainCampaign "github.com/andrescamacho/starlane-logistics/internal/domain/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/domain/finance"
	"github.com/andrescamacho/starlane-logistics/internal/domain/warehouse"
)

// Store persists an engine between runs; any repository may be nil
type Store struct {
	State        domainCampaign.StateRepository
	ShoppingList acquisition.ShoppingListRepository
	Stock        warehouse.StockRepository
	Transactions finance.TransactionRepository
}

// Resume overwrites scenario with the saved campaign, if there is one, and reports
// whether it did. Call it before NewEngine.
func (s Store) Resume(ctx context.Context, scenario *domainCampaign.Scenario) (bool, error) {
	if s.State == nil {
		return false, nil
	}
	state, err := s.State.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load campaign state: %w", err)
	}
	if state == nil {
		return false, nil
	}

	scenario.Date = state.Date
	scenario.Balance = state.Balance

	if s.ShoppingList != nil {
		list, err := s.ShoppingList.Load(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to load shopping list: %w", err)
		}
		if list == nil {
			list = acquisition.NewShoppingList()
		}
		scenario.Shopping = list
	}
	if s.Stock != nil {
		parts, err := s.Stock.Load(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to load stock: %w", err)
		}
		scenario.Stock = parts
	}
	return true, nil
}

// Save writes the engine's shopping list, stock, new transactions and state to store
func (e *Engine) Save(ctx context.Context, store Store) error {
	if store.ShoppingList != nil {
		if err := store.ShoppingList.Replace(ctx, e.Scenario.Shopping); err != nil {
			return fmt.Errorf("failed to save shopping list: %w", err)
		}
	}
	if store.Stock != nil {
		if err := store.Stock.Replace(ctx, e.Quartermaster.Snapshot()); err != nil {
			return fmt.Errorf("failed to save stock: %w", err)
		}
	}
	if store.Transactions != nil {
		for _, tx := range e.Account.DrainTransactions() {
			if err := store.Transactions.Create(ctx, tx); err != nil {
				return fmt.Errorf("failed to persist transaction: %w", err)
			}
		}
	}
	if store.State != nil {
		state := domainCampaign.State{Date: e.Calendar.Today(), Balance: e.Account.Balance()}
		if err := store.State.Save(ctx, state); err != nil {
			return fmt.Errorf("failed to save campaign state: %w", err)
		}
	}
	return nil
}
