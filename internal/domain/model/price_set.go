package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSet carries the six commercial price tiers plus the stock hint
// columns that ride along in the vendor's price export.
type PriceSet struct {
	ID          int64               `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductCode string              `gorm:"type:varchar(20);not null;uniqueIndex" json:"-"`
	Quantity    int64               `gorm:"not null;default:0" json:"quantity"`
	MaxPurchase decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"max_purchase,omitempty"`
	OptCard     decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"opt_card,omitempty"`
	OptCardPlus decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"opt_card_plus,omitempty"`
	Opt         decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"opt,omitempty"`
	Retail      decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"retail,omitempty"`
	Gold        decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"gold,omitempty"`
	Platinum    decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"platinum,omitempty"`
	UpdatedAt   time.Time           `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
