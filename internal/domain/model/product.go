package model

// Product is the catalog root, keyed by the vendor's product code.
type Product struct {
	Code     string `gorm:"type:varchar(20);primaryKey" json:"code"`
	Name     string `gorm:"type:varchar(500);not null" json:"name"`
	Article  string `gorm:"type:varchar(100)" json:"article,omitempty"`
	BaseUnit string `gorm:"type:varchar(20);not null;default:шт" json:"base_unit"`
	MainUnit string `gorm:"type:varchar(20);not null;default:шт" json:"main_unit"`
	FullName string `gorm:"type:varchar(500)" json:"full_name"`
	Status   string `gorm:"type:varchar(50);not null;default:Активный" json:"status"`

	Description *Description `gorm:"foreignKey:ProductCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"description,omitempty"`
	OnlineInfo  *OnlineInfo  `gorm:"foreignKey:ProductCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"online_info,omitempty"`
	Dimensions  *Dimensions  `gorm:"foreignKey:ProductCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"dimensions,omitempty"`
	Prices      *PriceSet    `gorm:"foreignKey:ProductCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"prices,omitempty"`
	Barcodes    []Barcode    `gorm:"foreignKey:ProductCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"barcodes,omitempty"`
	Stocks      []StockLevel `gorm:"foreignKey:ProductCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"stocks,omitempty"`
}
