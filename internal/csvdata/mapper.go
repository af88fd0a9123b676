package csvdata

import (
	"app/internal/domain/model"
)

// Source column names as the vendor exports them. The price file's
// headers span two lines, so the literal newline is part of the name.
const (
	colCode         = "Код"
	colName         = "Наименование"
	colArticle      = "Артикул"
	colBaseUnit     = "Базовая единица измерения"
	colMainUnit     = "Основная единица измерения"
	colFullName     = "Полное наименование"
	colStatus       = "Статус товара"
	colComment      = "Комментарий"
	colMainProperty = "Основное свойство"
	colExportOnline = "ВыгружатьВИнтернетМагазин"
	colOnlineName   = "НаименованиеИМ"
	colBlockDisc    = "Блокировать скидку по карте"
	colLength       = "Длинна"
	colWidth        = "Ширина"
	colHeight       = "Высота"
	colVolume       = "Объем"
	colBarcodes     = "Штрихкоды номенклатуры"

	colPriceCode   = "Код\nноменклатуры"
	colPriceQty    = "Кол-во\nна складах"
	colMaxPurchase = "Макс.\nзакупка"
	colOptCard     = "Опт Карта Рубин"
	colOptCardPlus = "Опт Карта Рубин +"
	colOpt         = "Оптовая цена"
	colRetail      = "Розничная цена"
	colGold        = "gold"
	colPlatinum    = "platinum"

	colReserved = "Выписано но не выдано"

	defaultUnit   = "шт"
	defaultStatus = "Активный"
)

// ProductBundle is one product row mapped into entity payloads. Optional
// children are nil when the source row carries nothing for them.
type ProductBundle struct {
	Product     model.Product
	Description *model.Description
	OnlineInfo  *model.OnlineInfo
	Dimensions  *model.Dimensions
	Barcodes    []model.Barcode
}

// MapProductRow maps a raw catalog row. Returns false when the row has
// no usable product code; the caller skips such rows.
func MapProductRow(row map[string]string) (ProductBundle, bool) {
	code := ParseString(row[colCode])
	if code == "" {
		return ProductBundle{}, false
	}

	b := ProductBundle{
		Product: model.Product{
			Code:     code,
			Name:     ParseString(row[colName]),
			Article:  ParseString(row[colArticle]),
			BaseUnit: orDefault(ParseString(row[colBaseUnit]), defaultUnit),
			MainUnit: orDefault(ParseString(row[colMainUnit]), defaultUnit),
			FullName: ParseString(row[colFullName]),
			Status:   orDefault(ParseString(row[colStatus]), defaultStatus),
		},
	}

	comment := ParseString(row[colComment])
	mainProp := ParseString(row[colMainProperty])
	if comment != "" || mainProp != "" {
		b.Description = &model.Description{
			ProductCode:  code,
			Comment:      comment,
			MainProperty: mainProp,
		}
	}

	// The storefront flags are written for every product; false is a
	// real value here, not absence.
	b.OnlineInfo = &model.OnlineInfo{
		ProductCode:         code,
		ExportToOnlineStore: ParseBool(row[colExportOnline]),
		OnlineStoreName:     ParseString(row[colOnlineName]),
		BlockDiscount:       ParseBool(row[colBlockDisc]),
	}

	length := ParseDecimal(row[colLength])
	width := ParseDecimal(row[colWidth])
	height := ParseDecimal(row[colHeight])
	volume := ParseDecimal(row[colVolume])
	if length.Valid || width.Valid || height.Valid || volume.Valid {
		b.Dimensions = &model.Dimensions{
			ProductCode: code,
			Length:      length,
			Width:       width,
			Height:      height,
			Volume:      volume,
		}
	}

	for _, bc := range ParseBarcodes(row[colBarcodes]) {
		b.Barcodes = append(b.Barcodes, model.Barcode{ProductCode: code, Barcode: bc})
	}

	return b, true
}

// MapPriceRow maps a raw price-file row. Returns false when the code
// cell is missing or empty.
func MapPriceRow(row map[string]string) (model.PriceSet, bool) {
	code := ParseString(row[colPriceCode])
	if code == "" {
		return model.PriceSet{}, false
	}

	ps := model.PriceSet{
		ProductCode: code,
		MaxPurchase: ParseDecimal(row[colMaxPurchase]),
		OptCard:     ParseDecimal(row[colOptCard]),
		OptCardPlus: ParseDecimal(row[colOptCardPlus]),
		Opt:         ParseDecimal(row[colOpt]),
		Retail:      ParseDecimal(row[colRetail]),
		Gold:        ParseDecimal(row[colGold]),
		Platinum:    ParseDecimal(row[colPlatinum]),
	}
	if qty := ParseInt(row[colPriceQty]); qty != nil {
		ps.Quantity = *qty
	}
	return ps, true
}

// MapStockRow maps a warehouse-stock row against the known warehouse
// names. Columns that match no warehouse are ignored; the reserved
// column is parsed once and applied to every matched warehouse.
func MapStockRow(row map[string]string, warehouses map[string]int64) (string, []model.StockLevel, bool) {
	code := ParseString(row[colCode])
	if code == "" {
		return "", nil, false
	}

	var reserved int64
	if n := ParseInt(row[colReserved]); n != nil && *n > 0 {
		reserved = *n
	}

	var levels []model.StockLevel
	for column, cell := range row {
		warehouseID, ok := warehouses[column]
		if !ok {
			continue
		}
		var quantity int64
		if n := ParseInt(cell); n != nil && *n > 0 {
			quantity = *n
		}
		levels = append(levels, model.StockLevel{
			ProductCode: code,
			WarehouseID: warehouseID,
			Quantity:    quantity,
			Reserved:    reserved,
		})
	}
	return code, levels, true
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
