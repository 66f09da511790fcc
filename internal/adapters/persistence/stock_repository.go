package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/warehouse"
)

// GormStockRepository persists warehouse stock, including shipments in transit
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GORM stock repository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// Load returns every stored entry in its saved order
func (r *GormStockRepository) Load(ctx context.Context) ([]*warehouse.Part, error) {
	var models []PartModel
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load stock: %w", err)
	}

	parts := make([]*warehouse.Part, 0, len(models))
	for i := range models {
		part, err := modelToPart(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert stock row %s: %w", models[i].ID, err)
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// Replace overwrites the stored stock with parts
func (r *GormStockRepository) Replace(ctx context.Context, parts []*warehouse.Part) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&PartModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear stock: %w", err)
		}
		if len(parts) == 0 {
			return nil
		}
		models := make([]PartModel, len(parts))
		for i, part := range parts {
			models[i] = partToModel(part, i)
		}
		if err := tx.Create(&models).Error; err != nil {
			return fmt.Errorf("failed to save stock: %w", err)
		}
		return nil
	})
}

func partToModel(part *warehouse.Part, position int) PartModel {
	model := PartModel{
		ID:            part.ID.String(),
		Position:      position,
		PartType:      part.Type,
		Quality:       part.Quality.String(),
		Quantity:      part.Quantity,
		UnitCost:      part.UnitCost,
		DaysToArrival: part.DaysToArrival,
	}
	if part.Ammo != nil {
		model.AmmoName = part.Ammo.Name
		model.AmmoFamily = part.Ammo.Family
		model.RackSize = part.Ammo.RackSize
	}
	return model
}

func modelToPart(model *PartModel) (*warehouse.Part, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid part ID: %w", err)
	}
	quality, err := shared.ParseRating(model.Quality)
	if err != nil {
		return nil, err
	}

	part := &warehouse.Part{
		ID:            id,
		Type:          model.PartType,
		Quality:       quality,
		Quantity:      model.Quantity,
		UnitCost:      model.UnitCost,
		DaysToArrival: model.DaysToArrival,
	}
	if model.RackSize > 0 {
		part.Ammo = &warehouse.AmmoType{
			Name:     model.AmmoName,
			Family:   model.AmmoFamily,
			RackSize: model.RackSize,
		}
	}
	return part, nil
}
