// Package seed holds the fixed reference data ingestion runs depend on.
package seed

import "app/internal/domain/model"

// Warehouses is the branch list as agreed with the vendor. Stock file
// columns are matched against these names, so they must stay in sync
// with the export headers.
var Warehouses = []model.Warehouse{
	{Name: "Склад-1", Address: "г. Хабаровск, ул. Промышленная, 12", IsActive: true},
	{Name: "Склад-2", Address: "г. Хабаровск, ул. Заводская, 3", IsActive: true},
	{Name: "Основной склад", Address: "г. Хабаровск, ул. Центральная, 1", IsActive: true},
	{Name: "Магазин Южный", Address: "г. Хабаровск, ул. Южная, 44", IsActive: true},
	{Name: "Магазин Северный", Address: "г. Хабаровск, ул. Северная, 18", IsActive: false},
}
