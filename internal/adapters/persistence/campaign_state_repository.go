package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/starlane-logistics/internal/domain/campaign"
)

const campaignStateRow = 1

// GormCampaignStateRepository persists the campaign date and balance
type GormCampaignStateRepository struct {
	db *gorm.DB
}

// NewGormCampaignStateRepository creates a new GORM campaign state repository
func NewGormCampaignStateRepository(db *gorm.DB) *GormCampaignStateRepository {
	return &GormCampaignStateRepository{db: db}
}

// Load returns the saved state, or nil when nothing has been saved yet
func (r *GormCampaignStateRepository) Load(ctx context.Context) (*campaign.State, error) {
	var model CampaignStateModel
	err := r.db.WithContext(ctx).Where("id = ?", campaignStateRow).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign state: %w", err)
	}
	return &campaign.State{Date: model.Date.UTC(), Balance: model.Balance}, nil
}

// Save writes state over the previous one
func (r *GormCampaignStateRepository) Save(ctx context.Context, state campaign.State) error {
	model := &CampaignStateModel{ID: campaignStateRow, Date: state.Date, Balance: state.Balance}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"date", "balance", "updated_at"}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save campaign state: %w", err)
	}
	return nil
}
