package acquisition

import (
	"github.com/google/uuid"
)

// ShoppingList is the ordered set of outstanding acquisition work.
// The scheduler builds a fresh list at the end of each cycle instead of editing this one.
type ShoppingList struct {
	items []*Work
}

// NewShoppingList creates a list holding items in the given order
func NewShoppingList(items ...*Work) *ShoppingList {
	list := &ShoppingList{}
	for _, w := range items {
		list.Add(w)
	}
	return list
}

// Add appends work, or folds its quantity into an existing item of the same name
func (l *ShoppingList) Add(work *Work) {
	if work == nil {
		return
	}
	for _, existing := range l.items {
		if existing.Name == work.Name && existing.Payload == work.Payload {
			existing.Quantity += work.Quantity
			return
		}
	}
	l.items = append(l.items, work)
}

// Items returns the items in order. The slice is a copy; the items are shared.
func (l *ShoppingList) Items() []*Work {
	return append([]*Work(nil), l.items...)
}

// Find returns the item with id
func (l *ShoppingList) Find(id uuid.UUID) (*Work, bool) {
	for _, w := range l.items {
		if w.ID == id {
			return w, true
		}
	}
	return nil, false
}

func (l *ShoppingList) Len() int      { return len(l.items) }
func (l *ShoppingList) IsEmpty() bool { return len(l.items) == 0 }

// DecrementDaysToWait counts every item's cooldown down by a day
func (l *ShoppingList) DecrementDaysToWait() {
	for _, w := range l.items {
		w.DecrementDaysToWait()
	}
}
