package acquisition

import "context"

// ShoppingListRepository persists the shopping list between sessions
type ShoppingListRepository interface {
	// Load returns the stored list; an empty list when nothing is stored
	Load(ctx context.Context) (*ShoppingList, error)

	// Replace overwrites the stored list with list
	Replace(ctx context.Context, list *ShoppingList) error
}
