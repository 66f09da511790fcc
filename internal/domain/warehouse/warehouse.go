package warehouse

import (
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
)

// Warehouse holds stock with at most one entry per Key, in insertion order.
// Entries are removed when their quantity reaches zero.
type Warehouse struct {
	entries []*Part
}

// NewWarehouse creates a warehouse, merging parts as they are added
func NewWarehouse(parts ...*Part) *Warehouse {
	w := &Warehouse{}
	for _, p := range parts {
		w.Add(p)
	}
	return w
}

// Add merges part into an existing entry with the same key, or stores it.
// It returns the entry now holding the quantity.
func (w *Warehouse) Add(part *Part) *Part {
	if part == nil || part.Quantity <= 0 {
		return nil
	}
	if existing := w.Find(part.Key()); existing != nil {
		existing.Quantity += part.Quantity
		return existing
	}
	part.DaysToArrival = 0
	w.entries = append(w.entries, part)
	return part
}

// Find returns the entry for key
func (w *Warehouse) Find(key Key) *Part {
	for _, p := range w.entries {
		if p.Key() == key {
			return p
		}
	}
	return nil
}

// Remove takes quantity from the entry for key, deleting it when emptied
func (w *Warehouse) Remove(key Key, quantity int) error {
	if quantity <= 0 {
		return shared.NewValidationError("quantity", "must be positive")
	}
	entry := w.Find(key)
	available := 0
	if entry != nil {
		available = entry.Quantity
	}
	if available < quantity {
		return shared.NewInsufficientStockError(key.String(), quantity, available)
	}
	entry.Quantity -= quantity
	w.prune()
	return nil
}

// take removes up to quantity from entry and prunes empties
func (w *Warehouse) take(entry *Part, quantity int) {
	entry.Quantity -= quantity
	w.prune()
}

func (w *Warehouse) prune() {
	kept := w.entries[:0]
	for _, p := range w.entries {
		if p.Quantity > 0 {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(w.entries); i++ {
		w.entries[i] = nil
	}
	w.entries = kept
}

// Entries returns a snapshot of the stock in insertion order
func (w *Warehouse) Entries() []*Part {
	return append([]*Part(nil), w.entries...)
}

func (w *Warehouse) Len() int { return len(w.entries) }

// Quantity returns the quantity held under key
func (w *Warehouse) Quantity(key Key) int {
	if p := w.Find(key); p != nil {
		return p.Quantity
	}
	return 0
}

// ammoEntries returns ammunition entries for which match returns true, in stock order
func (w *Warehouse) ammoEntries(match func(AmmoType) bool) []*Part {
	var result []*Part
	for _, p := range w.entries {
		if p.IsAmmo() && match(*p.Ammo) {
			result = append(result, p)
		}
	}
	return result
}
