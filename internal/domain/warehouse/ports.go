package warehouse

import (
	"context"

	"github.com/andrescamacho/starlane-logistics/internal/domain/finance"
)

// StockRepository persists the warehouse and the shipments in transit
type StockRepository interface {
	// Load returns every stored entry, in-transit ones with DaysToArrival > 0
	Load(ctx context.Context) ([]*Part, error)

	// Replace overwrites the stored stock with parts
	Replace(ctx context.Context, parts []*Part) error
}

// Snapshot returns stock on hand followed by shipments in transit
func (q *Quartermaster) Snapshot() []*Part {
	return append(q.warehouse.Entries(), q.inTransit...)
}

// Restore rebuilds a quartermaster from persisted parts
func Restore(parts []*Part, funds finance.Funds, options Options) *Quartermaster {
	q := NewQuartermaster(NewWarehouse(), funds, options)
	for _, part := range parts {
		q.Deliver(part, part.DaysToArrival)
	}
	return q
}
