package model

// Barcode is one numeric barcode of a product. The value is unique
// system-wide; a duplicate in the source file fails that row only.
type Barcode struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductCode string `gorm:"type:varchar(20);not null;index" json:"-"`
	Barcode     string `gorm:"type:varchar(50);not null;uniqueIndex" json:"barcode"`
}
