package persistence

import (
	"time"
)

// PartModel represents the stock table. Ammunition rows carry the ammo columns;
// in-transit rows have DaysToArrival > 0.
type PartModel struct {
	ID            string `gorm:"column:id;primaryKey"`
	Position      int    `gorm:"column:position;not null"`
	PartType      string `gorm:"column:part_type;not null;index"`
	Quality       string `gorm:"column:quality;not null"`
	Quantity      int    `gorm:"column:quantity;not null"`
	UnitCost      int64  `gorm:"column:unit_cost;not null;default:0"`
	AmmoName      string `gorm:"column:ammo_name"`
	AmmoFamily    string `gorm:"column:ammo_family"`
	RackSize      int    `gorm:"column:rack_size;default:0"`
	DaysToArrival int    `gorm:"column:days_to_arrival;not null;default:0"`
}

func (PartModel) TableName() string {
	return "stock"
}

// WorkModel represents the shopping_list table
type WorkModel struct {
	ID           string `gorm:"column:id;primaryKey"`
	Position     int    `gorm:"column:position;not null"`
	Name         string `gorm:"column:name;not null"`
	Quantity     int    `gorm:"column:quantity;not null"`
	TechBase     string `gorm:"column:tech_base;not null"`
	TechLevel    string `gorm:"column:tech_level;not null"`
	Availability string `gorm:"column:availability;not null"`
	IntroYear    int    `gorm:"column:intro_year;default:0"`
	ExtinctYear  int    `gorm:"column:extinct_year;default:0"`
	ReintroYear  int    `gorm:"column:reintro_year;default:0"`
	DaysToWait   int    `gorm:"column:days_to_wait;default:0"`
	BuyCost      int64  `gorm:"column:buy_cost;not null"`
	Modifiers    string `gorm:"column:modifiers;type:text"` // JSON array as text
	PartType     string `gorm:"column:part_type;not null"`
	Quality      string `gorm:"column:quality;not null"`
	Units        int    `gorm:"column:units;not null;default:1"`
	AmmoFamily   string `gorm:"column:ammo_family"`
	RackSize     int    `gorm:"column:rack_size;default:0"`
}

func (WorkModel) TableName() string {
	return "shopping_list"
}

// TransactionModel represents the transactions table
type TransactionModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	Date            time.Time `gorm:"column:date;not null;index"`
	TransactionType string    `gorm:"column:transaction_type;not null;index"`
	Amount          int64     `gorm:"column:amount;not null"`
	BalanceBefore   int64     `gorm:"column:balance_before;not null"`
	BalanceAfter    int64     `gorm:"column:balance_after;not null"`
	Description     string    `gorm:"column:description;type:text"`
	RelatedEntityID string    `gorm:"column:related_entity_id"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

// CampaignStateModel represents the campaign_state table. It holds a single row;
// its presence marks a saved campaign.
type CampaignStateModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement:false"`
	Date      time.Time `gorm:"column:date;not null"`
	Balance   int64     `gorm:"column:balance;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (CampaignStateModel) TableName() string {
	return "campaign_state"
}

// AllModels lists every table for migration
func AllModels() []interface{} {
	return []interface{}{
		&PartModel{},
		&WorkModel{},
		&TransactionModel{},
		&CampaignStateModel{},
	}
}
