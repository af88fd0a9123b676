package model

// OnlineInfo controls how the product appears in the online storefront.
type OnlineInfo struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductCode         string `gorm:"type:varchar(20);not null;uniqueIndex" json:"-"`
	ExportToOnlineStore bool   `gorm:"not null;default:false" json:"export_to_online_store"`
	OnlineStoreName     string `gorm:"type:varchar(500)" json:"online_store_name,omitempty"`
	BlockDiscount       bool   `gorm:"not null;default:false" json:"block_discount"`
}
