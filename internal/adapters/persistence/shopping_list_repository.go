package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
)

// GormShoppingListRepository persists the outstanding acquisition work
type GormShoppingListRepository struct {
	db *gorm.DB
}

// NewGormShoppingListRepository creates a new GORM shopping list repository
func NewGormShoppingListRepository(db *gorm.DB) *GormShoppingListRepository {
	return &GormShoppingListRepository{db: db}
}

// Load returns the stored list, or nil when nothing has been saved yet
func (r *GormShoppingListRepository) Load(ctx context.Context) (*acquisition.ShoppingList, error) {
	var models []WorkModel
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load shopping list: %w", err)
	}
	if len(models) == 0 {
		return nil, nil
	}

	list := acquisition.NewShoppingList()
	for i := range models {
		work, err := modelToWork(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert shopping list row %s: %w", models[i].ID, err)
		}
		list.Add(work)
	}
	return list, nil
}

// Replace overwrites the stored list with list
func (r *GormShoppingListRepository) Replace(ctx context.Context, list *acquisition.ShoppingList) error {
	var models []WorkModel
	if list != nil {
		for i, work := range list.Items() {
			model, err := workToModel(work, i)
			if err != nil {
				return err
			}
			models = append(models, model)
		}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&WorkModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear shopping list: %w", err)
		}
		if len(models) == 0 {
			return nil
		}
		if err := tx.Create(&models).Error; err != nil {
			return fmt.Errorf("failed to save shopping list: %w", err)
		}
		return nil
	})
}

func workToModel(work *acquisition.Work, position int) (WorkModel, error) {
	var modifiersJSON string
	if len(work.Modifiers) > 0 {
		bytes, err := json.Marshal(work.Modifiers)
		if err != nil {
			return WorkModel{}, fmt.Errorf("failed to marshal modifiers: %w", err)
		}
		modifiersJSON = string(bytes)
	}

	return WorkModel{
		ID:           work.ID.String(),
		Position:     position,
		Name:         work.Name,
		Quantity:     work.Quantity,
		TechBase:     work.TechBase.String(),
		TechLevel:    work.TechLevel.String(),
		Availability: work.Availability.String(),
		IntroYear:    work.IntroYear,
		ExtinctYear:  work.ExtinctYear,
		ReintroYear:  work.ReintroYear,
		DaysToWait:   work.DaysToWait,
		BuyCost:      work.BuyCost,
		Modifiers:    modifiersJSON,
		PartType:     work.Payload.PartType,
		Quality:      work.Payload.Quality.String(),
		Units:        work.Payload.Units,
		AmmoFamily:   work.Payload.AmmoFamily,
		RackSize:     work.Payload.RackSize,
	}, nil
}

func modelToWork(model *WorkModel) (*acquisition.Work, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid work ID: %w", err)
	}
	techBase, err := acquisition.ParseTechBase(model.TechBase)
	if err != nil {
		return nil, err
	}
	techLevel, err := acquisition.ParseTechLevel(model.TechLevel)
	if err != nil {
		return nil, err
	}
	availability, err := shared.ParseRating(model.Availability)
	if err != nil {
		return nil, err
	}
	quality, err := shared.ParseRating(model.Quality)
	if err != nil {
		return nil, err
	}

	var modifiers []acquisition.Modifier
	if model.Modifiers != "" {
		if err := json.Unmarshal([]byte(model.Modifiers), &modifiers); err != nil {
			return nil, fmt.Errorf("invalid modifiers: %w", err)
		}
	}

	return &acquisition.Work{
		ID:           id,
		Name:         model.Name,
		Quantity:     model.Quantity,
		TechBase:     techBase,
		TechLevel:    techLevel,
		Availability: availability,
		IntroYear:    model.IntroYear,
		ExtinctYear:  model.ExtinctYear,
		ReintroYear:  model.ReintroYear,
		DaysToWait:   model.DaysToWait,
		BuyCost:      model.BuyCost,
		Modifiers:    modifiers,
		Payload: acquisition.Payload{
			PartType:   model.PartType,
			Quality:    quality,
			Units:      model.Units,
			AmmoFamily: model.AmmoFamily,
			RackSize:   model.RackSize,
		},
	}, nil
}
