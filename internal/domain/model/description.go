package model

// Description holds the free-text part of a product card.
type Description struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductCode  string `gorm:"type:varchar(20);not null;uniqueIndex" json:"-"`
	Comment      string `gorm:"type:text" json:"comment,omitempty"`
	MainProperty string `gorm:"type:varchar(200)" json:"main_property,omitempty"`
}
