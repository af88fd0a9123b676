package model

import "github.com/shopspring/decimal"

// Dimensions are the four optional measurements from the vendor card.
// NullDecimal keeps "not supplied" distinct from an explicit zero.
type Dimensions struct {
	ID          int64               `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductCode string              `gorm:"type:varchar(20);not null;uniqueIndex" json:"-"`
	Length      decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"length,omitempty"`
	Width       decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"width,omitempty"`
	Height      decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"height,omitempty"`
	Volume      decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"volume,omitempty"`
}
