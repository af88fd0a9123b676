package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// =====================
// Row source fake
// =====================

type sliceSource struct {
	rows   []map[string]string
	i      int
	failAt int // 1-based index at which Next fails; 0 = never
	closed bool
}

func (s *sliceSource) Next() (map[string]string, error) {
	if s.failAt > 0 && s.i+1 == s.failAt {
		return nil, errors.New("input/output error")
	}
	if s.i >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.i]
	s.i++
	return row, nil
}

func (s *sliceSource) Close() error {
	s.closed = true
	return nil
}

// =====================
// In-memory store with batch/savepoint semantics
// =====================

type memStore struct {
	products map[string]model.Product
	barcodes map[string]bool
	prices   map[string]model.PriceSet
	stocks   map[string]model.StockLevel

	batches      int
	failBatchAt  int // 1-based batch whose begin fails (store unreachable)
	failCommitAt int // 1-based batch whose commit fails
}

func newMemStore() *memStore {
	return &memStore{
		products: map[string]model.Product{},
		barcodes: map[string]bool{},
		prices:   map[string]model.PriceSet{},
		stocks:   map[string]model.StockLevel{},
	}
}

func (s *memStore) seedProduct(code string) {
	s.products[code] = model.Product{Code: code, Name: "seeded " + code}
}

func stockKey(code string, warehouseID int64) string {
	return fmt.Sprintf("%s#%d", code, warehouseID)
}

type memBatchManager struct{ s *memStore }

func (m *memBatchManager) WithinBatch(ctx context.Context, fn func(b repo.Batch) error) error {
	m.s.batches++
	if m.s.failBatchAt > 0 && m.s.batches == m.s.failBatchAt {
		return errors.New("connection refused")
	}
	if err := fn(&memBatch{s: m.s}); err != nil {
		return err
	}
	if m.s.failCommitAt > 0 && m.s.batches == m.s.failCommitAt {
		return errors.New("connection reset during commit")
	}
	return nil
}

type memBatch struct{ s *memStore }

// Row buffers the row's writes and merges them only when fn succeeds,
// mirroring a savepoint release.
func (b *memBatch) Row(fn func(r repo.Repos) error) error {
	st := &stage{s: b.s}
	if err := fn(st); err != nil {
		return err
	}
	st.merge()
	return nil
}

type stage struct {
	s           *memStore
	productsBuf []model.Product
	pricesBuf   []model.PriceSet
	stocksBuf   []model.StockLevel
}

func (st *stage) Products() repo.ProductRepository { return stageProducts{st} }
func (st *stage) Prices() repo.PriceRepository     { return stagePrices{st} }
func (st *stage) Stocks() repo.StockRepository     { return stageStocks{st} }

func (st *stage) merge() {
	for _, p := range st.productsBuf {
		st.s.products[p.Code] = p
		for _, bc := range p.Barcodes {
			st.s.barcodes[bc.Barcode] = true
		}
	}
	for _, ps := range st.pricesBuf {
		st.s.prices[ps.ProductCode] = ps
	}
	for _, sl := range st.stocksBuf {
		st.s.stocks[stockKey(sl.ProductCode, sl.WarehouseID)] = sl
	}
}

type stageProducts struct{ st *stage }

func (p stageProducts) FindByCode(ctx context.Context, code string) (model.Product, error) {
	prod, ok := p.st.s.products[code]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return prod, nil
}

func (p stageProducts) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, ok := p.st.s.products[code]
	return ok, nil
}

func (p stageProducts) Create(ctx context.Context, prod *model.Product) error {
	if _, ok := p.st.s.products[prod.Code]; ok {
		return errors.New(`duplicate key value violates unique constraint "products_pkey"`)
	}
	for _, bc := range prod.Barcodes {
		if p.st.s.barcodes[bc.Barcode] {
			return errors.New(`duplicate key value violates unique constraint "idx_barcodes_barcode"`)
		}
	}
	p.st.productsBuf = append(p.st.productsBuf, *prod)
	return nil
}

type stagePrices struct{ st *stage }

func (p stagePrices) Upsert(ctx context.Context, ps model.PriceSet) error {
	if _, ok := p.st.s.products[ps.ProductCode]; !ok {
		return errors.New(`insert or update violates foreign key constraint "fk_price_sets_product"`)
	}
	p.st.pricesBuf = append(p.st.pricesBuf, ps)
	return nil
}

type stageStocks struct{ st *stage }

func (s stageStocks) Upsert(ctx context.Context, sl model.StockLevel) error {
	if _, ok := s.st.s.products[sl.ProductCode]; !ok {
		return errors.New(`insert or update violates foreign key constraint "fk_stock_levels_product"`)
	}
	s.st.stocksBuf = append(s.st.stocksBuf, sl)
	return nil
}

// =====================
// Warehouse repository mock
// =====================

type WarehouseRepoMock struct{ mock.Mock }

func (m *WarehouseRepoMock) List(ctx context.Context) ([]model.Warehouse, error) {
	args := m.Called(ctx)
	ws, _ := args.Get(0).([]model.Warehouse)
	return ws, args.Error(1)
}

func (m *WarehouseRepoMock) CreateIgnoreExisting(ctx context.Context, ws []model.Warehouse) (int64, error) {
	args := m.Called(ctx, ws)
	return args.Get(0).(int64), args.Error(1)
}

func newImportUC(s *memStore, wh repo.WarehouseRepository, batchSize int) *usecase.ImportUsecase {
	return usecase.NewImportUsecase(&memBatchManager{s: s}, wh, batchSize, discardLogger())
}

func productRow(code, name, barcodes string) map[string]string {
	return map[string]string{
		"Код":                    code,
		"Наименование":           name,
		"Комментарий":            "комментарий " + code,
		"Штрихкоды номенклатуры": barcodes,
	}
}

func priceRow(code, retail, gold string) map[string]string {
	return map[string]string{
		"Код\nноменклатуры": code,
		"Розничная цена":    retail,
		"gold":              gold,
	}
}

// =====================
// Product runs (insert-if-absent)
// =====================

func TestImportProducts_InsertsWithChildren(t *testing.T) {
	s := newMemStore()
	uc := newImportUC(s, new(WarehouseRepoMock), 50)

	src := &sliceSource{rows: []map[string]string{
		productRow("00-1", "Кабель", "111;222"),
		productRow("00-2", "Розетка", ""),
	}}

	sum, err := uc.ImportProducts(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 2, sum.Success)
	assert.Equal(t, 0, sum.Skipped)
	assert.Equal(t, 0, sum.Errors)
	assert.True(t, src.closed)

	p := s.products["00-1"]
	assert.Equal(t, "Кабель", p.Name)
	require.NotNil(t, p.Description)
	assert.Equal(t, "комментарий 00-1", p.Description.Comment)
	require.NotNil(t, p.OnlineInfo)
	require.Len(t, p.Barcodes, 2)
	assert.True(t, s.barcodes["111"])
}

func TestImportProducts_SecondRunIsIdempotent(t *testing.T) {
	rows := []map[string]string{
		productRow("00-1", "Кабель", "111"),
		productRow("00-2", "Розетка", "222"),
		productRow("00-3", "Лампа", ""),
	}
	s := newMemStore()
	uc := newImportUC(s, new(WarehouseRepoMock), 50)

	first, err := uc.ImportProducts(context.Background(), &sliceSource{rows: rows})
	require.NoError(t, err)
	assert.Equal(t, 3, first.Success)

	second, err := uc.ImportProducts(context.Background(), &sliceSource{rows: rows})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Success)
	assert.Equal(t, first.Success, second.Skipped)
	assert.Equal(t, 0, second.Errors)

	// the second pass did not touch the stored rows
	assert.Len(t, s.products, 3)
	assert.Equal(t, "Кабель", s.products["00-1"].Name)
}

func TestImportProducts_RowFailureIsolation(t *testing.T) {
	// the malformed row fails wherever it sits; everything else lands
	for _, k := range []int{0, 2, 4} {
		s := newMemStore()
		s.seedProduct("taken")
		s.barcodes["999"] = true
		uc := newImportUC(s, new(WarehouseRepoMock), 2) // batches smaller than the file

		var rows []map[string]string
		for i := 0; i < 5; i++ {
			barcode := fmt.Sprintf("10%d", i)
			if i == k {
				barcode = "999" // collides with an existing barcode
			}
			rows = append(rows, productRow(fmt.Sprintf("00-%d", i), "Товар", barcode))
		}

		sum, err := uc.ImportProducts(context.Background(), &sliceSource{rows: rows})
		require.NoError(t, err, "k=%d", k)
		assert.Equal(t, 5, sum.Total, "k=%d", k)
		assert.Equal(t, 4, sum.Success, "k=%d", k)
		assert.Equal(t, 1, sum.Errors, "k=%d", k)

		for i := 0; i < 5; i++ {
			_, present := s.products[fmt.Sprintf("00-%d", i)]
			assert.Equal(t, i != k, present, "k=%d i=%d", k, i)
		}
	}
}

func TestImportProducts_MissingCodeSkipped(t *testing.T) {
	s := newMemStore()
	uc := newImportUC(s, new(WarehouseRepoMock), 50)

	src := &sliceSource{rows: []map[string]string{
		{"Наименование": "без кода"},
		productRow("00-1", "Кабель", ""),
	}}

	sum, err := uc.ImportProducts(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 1, sum.Success)
	assert.Equal(t, 1, sum.Skipped)
}

func TestImportProducts_CommitsEveryBatch(t *testing.T) {
	s := newMemStore()
	uc := newImportUC(s, new(WarehouseRepoMock), 2)

	var rows []map[string]string
	for i := 0; i < 5; i++ {
		rows = append(rows, productRow(fmt.Sprintf("00-%d", i), "Товар", ""))
	}

	sum, err := uc.ImportProducts(context.Background(), &sliceSource{rows: rows})
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Success)
	// two full batches plus the remainder
	assert.Equal(t, 3, s.batches)
}

// =====================
// Price runs (upsert)
// =====================

func TestImportPrices_UpsertOverwritesWholesale(t *testing.T) {
	s := newMemStore()
	s.seedProduct("00-1")
	s.seedProduct("00-2")
	uc := newImportUC(s, new(WarehouseRepoMock), 50)

	v1 := []map[string]string{
		priceRow("00-1", "100,00", "92,00"),
		priceRow("00-2", "50,00", "45,00"),
	}
	sum, err := uc.ImportPrices(context.Background(), &sliceSource{rows: v1})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Success)
	assert.True(t, s.prices["00-1"].Retail.Decimal.Equal(dec("100")))
	assert.True(t, s.prices["00-1"].Gold.Valid)

	// unchanged input: same stored state
	sum, err = uc.ImportPrices(context.Background(), &sliceSource{rows: v1})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Success)
	assert.True(t, s.prices["00-1"].Retail.Decimal.Equal(dec("100")))

	// changed input fully replaces the row: gold is gone, not stale
	v2 := []map[string]string{priceRow("00-1", "120,00", "")}
	_, err = uc.ImportPrices(context.Background(), &sliceSource{rows: v2})
	require.NoError(t, err)
	assert.True(t, s.prices["00-1"].Retail.Decimal.Equal(dec("120")))
	assert.False(t, s.prices["00-1"].Gold.Valid)
	// the other product kept its prices
	assert.True(t, s.prices["00-2"].Retail.Decimal.Equal(dec("50")))
}

func TestImportPrices_UnknownProductCountsAsError(t *testing.T) {
	s := newMemStore()
	s.seedProduct("00-1")
	uc := newImportUC(s, new(WarehouseRepoMock), 50)

	src := &sliceSource{rows: []map[string]string{
		priceRow("00-1", "100,00", ""),
		priceRow("нет-такого", "10,00", ""),
		{"Розничная цена": "15,00"}, // no code at all
	}}

	sum, err := uc.ImportPrices(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 1, sum.Success)
	assert.Equal(t, 1, sum.Errors)
	assert.Equal(t, 1, sum.Skipped)
	assert.Len(t, s.prices, 1)
}

// =====================
// Stock runs (upsert + warehouse resolver)
// =====================

func TestImportStocks_ResolvesWarehouseColumns(t *testing.T) {
	s := newMemStore()
	s.seedProduct("A1")

	wh := new(WarehouseRepoMock)
	wh.On("List", mock.Anything).Return([]model.Warehouse{
		{ID: 7, Name: "Склад-1"},
		{ID: 8, Name: "Склад-2"},
	}, nil)

	uc := newImportUC(s, wh, 50)
	src := &sliceSource{rows: []map[string]string{{
		"Код":                   "A1",
		"Склад-1":               "5",
		"UnknownCol":            "99",
		"Выписано но не выдано": "2",
	}}}

	sum, err := uc.ImportStocks(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Success)

	require.Len(t, s.stocks, 1)
	level := s.stocks[stockKey("A1", 7)]
	assert.Equal(t, int64(5), level.Quantity)
	assert.Equal(t, int64(2), level.Reserved)
	wh.AssertExpectations(t)
}

func TestImportStocks_SecondRunOverwrites(t *testing.T) {
	s := newMemStore()
	s.seedProduct("A1")

	wh := new(WarehouseRepoMock)
	wh.On("List", mock.Anything).Return([]model.Warehouse{{ID: 7, Name: "Склад-1"}}, nil)

	uc := newImportUC(s, wh, 50)

	_, err := uc.ImportStocks(context.Background(), &sliceSource{rows: []map[string]string{
		{"Код": "A1", "Склад-1": "5"},
	}})
	require.NoError(t, err)

	_, err = uc.ImportStocks(context.Background(), &sliceSource{rows: []map[string]string{
		{"Код": "A1", "Склад-1": "3", "Выписано но не выдано": "1"},
	}})
	require.NoError(t, err)

	require.Len(t, s.stocks, 1)
	level := s.stocks[stockKey("A1", 7)]
	assert.Equal(t, int64(3), level.Quantity)
	assert.Equal(t, int64(1), level.Reserved)
}

func TestImportStocks_NoMatchingColumnsSkipsRow(t *testing.T) {
	s := newMemStore()
	s.seedProduct("A1")

	wh := new(WarehouseRepoMock)
	wh.On("List", mock.Anything).Return([]model.Warehouse{{ID: 7, Name: "Склад-1"}}, nil)

	uc := newImportUC(s, wh, 50)
	sum, err := uc.ImportStocks(context.Background(), &sliceSource{rows: []map[string]string{
		{"Код": "A1", "Чужая колонка": "5"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Skipped)
	assert.Empty(t, s.stocks)
}

func TestImportStocks_WarehouseLoadFailureIsFatal(t *testing.T) {
	wh := new(WarehouseRepoMock)
	wh.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	uc := newImportUC(newMemStore(), wh, 50)
	src := &sliceSource{rows: []map[string]string{{"Код": "A1"}}}

	_, err := uc.ImportStocks(context.Background(), src)
	require.Error(t, err)
	assert.True(t, src.closed)
}

// =====================
// Run-level failures
// =====================

func TestRun_StoreUnreachableAbortsRun(t *testing.T) {
	s := newMemStore()
	s.failBatchAt = 1
	uc := newImportUC(s, new(WarehouseRepoMock), 50)

	sum, err := uc.ImportProducts(context.Background(), &sliceSource{rows: []map[string]string{
		productRow("00-1", "Кабель", ""),
	}})
	require.Error(t, err)
	assert.Equal(t, 0, sum.Success)
	assert.Empty(t, s.products)
}

func TestRun_CommitFailureKeepsPriorBatches(t *testing.T) {
	s := newMemStore()
	s.failCommitAt = 2
	uc := newImportUC(s, new(WarehouseRepoMock), 2)

	var rows []map[string]string
	for i := 0; i < 4; i++ {
		rows = append(rows, productRow(fmt.Sprintf("00-%d", i), "Товар", ""))
	}

	sum, err := uc.ImportProducts(context.Background(), &sliceSource{rows: rows})
	require.Error(t, err)
	// batch one committed, batch two rolled back and reported as errors
	assert.Equal(t, 2, sum.Success)
	assert.Equal(t, 2, sum.Errors)
}

func TestRun_SourceFailureMidStreamAbortsWithPartialProgress(t *testing.T) {
	s := newMemStore()
	uc := newImportUC(s, new(WarehouseRepoMock), 2)

	src := &sliceSource{
		rows: []map[string]string{
			productRow("00-1", "Кабель", ""),
			productRow("00-2", "Розетка", ""),
			productRow("00-3", "Лампа", ""),
		},
		failAt: 3,
	}

	sum, err := uc.ImportProducts(context.Background(), src)
	require.Error(t, err)
	assert.Equal(t, 2, sum.Success)
	assert.Len(t, s.products, 2)
}

// =====================
// Warehouse seeding
// =====================

func TestSeedWarehouses(t *testing.T) {
	ws := []model.Warehouse{{Name: "Склад-1"}, {Name: "Склад-2"}}

	wh := new(WarehouseRepoMock)
	wh.On("CreateIgnoreExisting", mock.Anything, ws).Return(int64(2), nil)

	uc := newImportUC(newMemStore(), wh, 50)
	inserted, err := uc.SeedWarehouses(context.Background(), ws)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)
	wh.AssertExpectations(t)
}

func TestSeedWarehouses_Error(t *testing.T) {
	wh := new(WarehouseRepoMock)
	wh.On("CreateIgnoreExisting", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("connection refused"))

	uc := newImportUC(newMemStore(), wh, 50)
	_, err := uc.SeedWarehouses(context.Background(), []model.Warehouse{{Name: "Склад-1"}})
	require.Error(t, err)
}
