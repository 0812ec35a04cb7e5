package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"github.com/storelinehq/storeline-api/internal/domain/repository"
	"github.com/storelinehq/storeline-api/pkg/pagination"
)

// memStore is an in-memory data store shared by the repository fakes. The
// fake transaction manager snapshots and restores it to mimic rollback.
type memStore struct {
	employees  map[uuid.UUID]entity.Employee
	suppliers  map[uuid.UUID]entity.Supplier
	products   map[uuid.UUID]entity.Product
	skus       map[uuid.UUID]entity.SKU
	stores     map[uuid.UUID]entity.Store
	registers  map[uuid.UUID]entity.Register
	levels     map[uuid.UUID]entity.StockLevel
	movements  []entity.StockMovement
	sales      map[uuid.UUID]entity.Sale
	saleLines  map[uuid.UUID][]entity.SaleLine
	receipts   map[uuid.UUID]entity.Receipt
	returns    map[uuid.UUID]entity.Return
	refunds    map[uuid.UUID]entity.Refund
	orders     map[uuid.UUID]entity.PurchaseOrder
	orderLines map[uuid.UUID][]entity.PurchaseOrderLine
}

func newMemStore() *memStore {
	return &memStore{
		employees:  make(map[uuid.UUID]entity.Employee),
		suppliers:  make(map[uuid.UUID]entity.Supplier),
		products:   make(map[uuid.UUID]entity.Product),
		skus:       make(map[uuid.UUID]entity.SKU),
		stores:     make(map[uuid.UUID]entity.Store),
		registers:  make(map[uuid.UUID]entity.Register),
		levels:     make(map[uuid.UUID]entity.StockLevel),
		sales:      make(map[uuid.UUID]entity.Sale),
		saleLines:  make(map[uuid.UUID][]entity.SaleLine),
		receipts:   make(map[uuid.UUID]entity.Receipt),
		returns:    make(map[uuid.UUID]entity.Return),
		refunds:    make(map[uuid.UUID]entity.Refund),
		orders:     make(map[uuid.UUID]entity.PurchaseOrder),
		orderLines: make(map[uuid.UUID][]entity.PurchaseOrderLine),
	}
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copySliceMap[K comparable, V any](m map[K][]V) map[K][]V {
	out := make(map[K][]V, len(m))
	for k, v := range m {
		out[k] = append([]V(nil), v...)
	}
	return out
}

func (s *memStore) snapshot() *memStore {
	return &memStore{
		employees:  copyMap(s.employees),
		suppliers:  copyMap(s.suppliers),
		products:   copyMap(s.products),
		skus:       copyMap(s.skus),
		stores:     copyMap(s.stores),
		registers:  copyMap(s.registers),
		levels:     copyMap(s.levels),
		movements:  append([]entity.StockMovement(nil), s.movements...),
		sales:      copyMap(s.sales),
		saleLines:  copySliceMap(s.saleLines),
		receipts:   copyMap(s.receipts),
		returns:    copyMap(s.returns),
		refunds:    copyMap(s.refunds),
		orders:     copyMap(s.orders),
		orderLines: copySliceMap(s.orderLines),
	}
}

func (s *memStore) restore(snap *memStore) {
	*s = *snap
}

// fakeTxManager mimics all-or-nothing semantics: when fn fails the store is
// restored to the state taken before fn ran.
type fakeTxManager struct {
	store *memStore
}

func (m *fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	snap := m.store.snapshot()
	if err := fn(ctx); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

type fakeEmployeeRepo struct{ s *memStore }

func (r *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	ensureID(&e.ID)
	r.s.employees[e.ID] = *e
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Employee, error) {
	if e, ok := r.s.employees[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByUsername(_ context.Context, username string) (*entity.Employee, error) {
	for _, e := range r.s.employees {
		if e.Username == username {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*entity.Employee, error) {
	for _, e := range r.s.employees {
		if e.Email == email {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.s.employees[e.ID] = *e
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, params *repository.EmployeeFilterParams) ([]entity.Employee, int64, error) {
	var out []entity.Employee
	for _, e := range r.s.employees {
		if params.Role != nil && e.Role != *params.Role {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEmployeeRepo) ClearStore(_ context.Context, storeID uuid.UUID) error {
	for id, e := range r.s.employees {
		if e.StoreID != nil && *e.StoreID == storeID {
			e.StoreID = nil
			r.s.employees[id] = e
		}
	}
	return nil
}

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	ensureID(&p.ID)
	r.s.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if p, ok := r.s.products[id]; ok {
		for _, sku := range r.s.skus {
			if sku.ProductID == id {
				p.SKUs = append(p.SKUs, sku)
			}
		}
		return &p, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.products, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, _ *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) Search(_ context.Context, _ string) ([]entity.Product, error) {
	return nil, nil
}

type fakeSKURepo struct{ s *memStore }

func (r *fakeSKURepo) Create(_ context.Context, sku *entity.SKU) error {
	ensureID(&sku.ID)
	r.s.skus[sku.ID] = *sku
	return nil
}

func (r *fakeSKURepo) GetByID(_ context.Context, id uuid.UUID) (*entity.SKU, error) {
	if sku, ok := r.s.skus[id]; ok {
		return &sku, nil
	}
	return nil, nil
}

func (r *fakeSKURepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.SKU, error) {
	var out []entity.SKU
	for _, id := range ids {
		if sku, ok := r.s.skus[id]; ok {
			out = append(out, sku)
		}
	}
	return out, nil
}

func (r *fakeSKURepo) GetByCode(_ context.Context, code string) (*entity.SKU, error) {
	for _, sku := range r.s.skus {
		if sku.SKUCode == code {
			sku := sku
			return &sku, nil
		}
	}
	return nil, nil
}

func (r *fakeSKURepo) GetByBarcode(_ context.Context, barcode string) (*entity.SKU, error) {
	for _, sku := range r.s.skus {
		if sku.Barcode == barcode {
			sku := sku
			return &sku, nil
		}
	}
	return nil, nil
}

func (r *fakeSKURepo) Update(_ context.Context, sku *entity.SKU) error {
	r.s.skus[sku.ID] = *sku
	return nil
}

func (r *fakeSKURepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.skus, id)
	return nil
}

func (r *fakeSKURepo) List(_ context.Context, _ *repository.SKUFilterParams) ([]entity.SKU, int64, error) {
	var out []entity.SKU
	for _, sku := range r.s.skus {
		out = append(out, sku)
	}
	return out, int64(len(out)), nil
}

type fakeStoreRepo struct{ s *memStore }

func (r *fakeStoreRepo) Create(_ context.Context, st *entity.Store) error {
	ensureID(&st.ID)
	r.s.stores[st.ID] = *st
	return nil
}

func (r *fakeStoreRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Store, error) {
	if st, ok := r.s.stores[id]; ok {
		return &st, nil
	}
	return nil, nil
}

func (r *fakeStoreRepo) Update(_ context.Context, st *entity.Store) error {
	r.s.stores[st.ID] = *st
	return nil
}

func (r *fakeStoreRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.stores, id)
	return nil
}

func (r *fakeStoreRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Store, int64, error) {
	var out []entity.Store
	for _, st := range r.s.stores {
		out = append(out, st)
	}
	return out, int64(len(out)), nil
}

type fakeRegisterRepo struct{ s *memStore }

func (r *fakeRegisterRepo) Create(_ context.Context, reg *entity.Register) error {
	ensureID(&reg.ID)
	r.s.registers[reg.ID] = *reg
	return nil
}

func (r *fakeRegisterRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Register, error) {
	if reg, ok := r.s.registers[id]; ok {
		return &reg, nil
	}
	return nil, nil
}

func (r *fakeRegisterRepo) GetByStore(_ context.Context, storeID uuid.UUID) ([]entity.Register, error) {
	var out []entity.Register
	for _, reg := range r.s.registers {
		if reg.StoreID == storeID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (r *fakeRegisterRepo) Update(_ context.Context, reg *entity.Register) error {
	r.s.registers[reg.ID] = *reg
	return nil
}

func (r *fakeRegisterRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.registers, id)
	return nil
}

func (r *fakeRegisterRepo) List(_ context.Context, _ *pagination.PaginationParams, _ *uuid.UUID) ([]entity.Register, int64, error) {
	var out []entity.Register
	for _, reg := range r.s.registers {
		out = append(out, reg)
	}
	return out, int64(len(out)), nil
}

type fakeStockRepo struct{ s *memStore }

func (r *fakeStockRepo) EnsureLevel(_ context.Context, storeID, skuID uuid.UUID) (*entity.StockLevel, error) {
	for _, level := range r.s.levels {
		if level.StoreID == storeID && level.SKUID == skuID {
			level := level
			return &level, nil
		}
	}
	level := entity.StockLevel{
		ID:      uuid.New(),
		StoreID: storeID,
		SKUID:   skuID,
	}
	r.s.levels[level.ID] = level
	return &level, nil
}

func (r *fakeStockRepo) AddQuantity(_ context.Context, levelID uuid.UUID, delta int) (*entity.StockLevel, bool, error) {
	level := r.s.levels[levelID]
	if level.Quantity+delta < 0 {
		return &level, false, nil
	}
	level.Quantity += delta
	r.s.levels[levelID] = level
	return &level, true, nil
}

func (r *fakeStockRepo) GetLevel(_ context.Context, storeID, skuID uuid.UUID) (*entity.StockLevel, error) {
	for _, level := range r.s.levels {
		if level.StoreID == storeID && level.SKUID == skuID {
			level := level
			return &level, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) ListLevels(_ context.Context, _ *repository.StockFilterParams) ([]entity.StockLevel, int64, error) {
	var out []entity.StockLevel
	for _, level := range r.s.levels {
		out = append(out, level)
	}
	return out, int64(len(out)), nil
}

func (r *fakeStockRepo) LowStock(_ context.Context, storeID *uuid.UUID, threshold int) ([]entity.StockLevel, error) {
	var out []entity.StockLevel
	for _, level := range r.s.levels {
		if storeID != nil && level.StoreID != *storeID {
			continue
		}
		if level.Quantity <= threshold {
			out = append(out, level)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	return out, nil
}

func (r *fakeStockRepo) CountLevelsBySKU(_ context.Context, skuID uuid.UUID) (int64, error) {
	var count int64
	for _, level := range r.s.levels {
		if level.SKUID == skuID {
			count++
		}
	}
	return count, nil
}

func (r *fakeStockRepo) CountLevelsByStore(_ context.Context, storeID uuid.UUID) (int64, error) {
	var count int64
	for _, level := range r.s.levels {
		if level.StoreID == storeID {
			count++
		}
	}
	return count, nil
}

func (r *fakeStockRepo) CreateMovement(_ context.Context, m *entity.StockMovement) error {
	ensureID(&m.ID)
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r *fakeStockRepo) ListMovements(_ context.Context, _ *repository.MovementFilterParams) ([]entity.StockMovement, int64, error) {
	out := append([]entity.StockMovement(nil), r.s.movements...)
	return out, int64(len(out)), nil
}

type fakeSaleRepo struct{ s *memStore }

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	ensureID(&sale.ID)
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now().UTC()
	}
	stored := *sale
	stored.Lines = nil
	stored.Receipt = nil
	r.s.sales[sale.ID] = stored
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	if sale, ok := r.s.sales[id]; ok {
		return &sale, nil
	}
	return nil, nil
}

func (r *fakeSaleRepo) GetWithDetails(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	sale.Lines = append([]entity.SaleLine(nil), r.s.saleLines[id]...)
	for i := range sale.Lines {
		if sku, ok := r.s.skus[sale.Lines[i].SKUID]; ok {
			sku := sku
			sale.Lines[i].SKU = &sku
		}
	}
	if receipt, ok := r.s.receipts[id]; ok {
		sale.Receipt = &receipt
	}
	return &sale, nil
}

func (r *fakeSaleRepo) List(_ context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, sale := range r.s.sales {
		if params.CashierID != nil && sale.CashierID != *params.CashierID {
			continue
		}
		if params.StoreID != nil && sale.StoreID != *params.StoreID {
			continue
		}
		out = append(out, sale)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) CountByStore(_ context.Context, storeID uuid.UUID) (int64, error) {
	var count int64
	for _, sale := range r.s.sales {
		if sale.StoreID == storeID {
			count++
		}
	}
	return count, nil
}

func (r *fakeSaleRepo) Summary(_ context.Context, start, end time.Time) (int64, decimal.Decimal, error) {
	var count int64
	revenue := decimal.Zero
	for _, sale := range r.s.sales {
		if sale.CreatedAt.Before(start) || sale.CreatedAt.After(end) {
			continue
		}
		count++
		revenue = revenue.Add(sale.TotalAmount)
	}
	return count, revenue, nil
}

type fakeSaleLineRepo struct{ s *memStore }

func (r *fakeSaleLineRepo) CreateBatch(_ context.Context, lines []entity.SaleLine) error {
	for i := range lines {
		ensureID(&lines[i].ID)
		r.s.saleLines[lines[i].SaleID] = append(r.s.saleLines[lines[i].SaleID], lines[i])
	}
	return nil
}

func (r *fakeSaleLineRepo) GetBySaleID(_ context.Context, saleID uuid.UUID) ([]entity.SaleLine, error) {
	return append([]entity.SaleLine(nil), r.s.saleLines[saleID]...), nil
}

func (r *fakeSaleLineRepo) CountBySKU(_ context.Context, skuID uuid.UUID) (int64, error) {
	var count int64
	for _, lines := range r.s.saleLines {
		for _, line := range lines {
			if line.SKUID == skuID {
				count++
			}
		}
	}
	return count, nil
}

type fakeReceiptRepo struct{ s *memStore }

func (r *fakeReceiptRepo) Create(_ context.Context, receipt *entity.Receipt) error {
	ensureID(&receipt.ID)
	r.s.receipts[receipt.SaleID] = *receipt
	return nil
}

func (r *fakeReceiptRepo) GetBySaleID(_ context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	if receipt, ok := r.s.receipts[saleID]; ok {
		return &receipt, nil
	}
	return nil, nil
}

type fakeReturnRepo struct{ s *memStore }

func (r *fakeReturnRepo) Create(_ context.Context, ret *entity.Return) error {
	ensureID(&ret.ID)
	stored := *ret
	stored.Refund = nil
	r.s.returns[ret.ID] = stored
	return nil
}

func (r *fakeReturnRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Return, error) {
	if ret, ok := r.s.returns[id]; ok {
		return &ret, nil
	}
	return nil, nil
}

func (r *fakeReturnRepo) GetWithRefund(_ context.Context, id uuid.UUID) (*entity.Return, error) {
	ret, ok := r.s.returns[id]
	if !ok {
		return nil, nil
	}
	if refund, ok := r.s.refunds[id]; ok {
		ret.Refund = &refund
	}
	return &ret, nil
}

func (r *fakeReturnRepo) List(_ context.Context, params *repository.ReturnFilterParams) ([]entity.Return, int64, error) {
	var out []entity.Return
	for _, ret := range r.s.returns {
		if params.OriginalSaleID != nil && ret.OriginalSaleID != *params.OriginalSaleID {
			continue
		}
		out = append(out, ret)
	}
	return out, int64(len(out)), nil
}

type fakeRefundRepo struct{ s *memStore }

func (r *fakeRefundRepo) Create(_ context.Context, refund *entity.Refund) error {
	ensureID(&refund.ID)
	r.s.refunds[refund.ReturnID] = *refund
	return nil
}

func (r *fakeRefundRepo) GetByReturnID(_ context.Context, returnID uuid.UUID) (*entity.Refund, error) {
	if refund, ok := r.s.refunds[returnID]; ok {
		return &refund, nil
	}
	return nil, nil
}

type fakeSupplierRepo struct{ s *memStore }

func (r *fakeSupplierRepo) Create(_ context.Context, supplier *entity.Supplier) error {
	ensureID(&supplier.ID)
	r.s.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Supplier, error) {
	if supplier, ok := r.s.suppliers[id]; ok {
		return &supplier, nil
	}
	return nil, nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, supplier *entity.Supplier) error {
	r.s.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *fakeSupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.suppliers, id)
	return nil
}

func (r *fakeSupplierRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Supplier, int64, error) {
	var out []entity.Supplier
	for _, supplier := range r.s.suppliers {
		out = append(out, supplier)
	}
	return out, int64(len(out)), nil
}

type fakePurchaseOrderRepo struct{ s *memStore }

func (r *fakePurchaseOrderRepo) Create(_ context.Context, order *entity.PurchaseOrder) error {
	ensureID(&order.ID)
	stored := *order
	stored.Lines = nil
	r.s.orders[order.ID] = stored
	return nil
}

func (r *fakePurchaseOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	if order, ok := r.s.orders[id]; ok {
		return &order, nil
	}
	return nil, nil
}

func (r *fakePurchaseOrderRepo) GetWithLines(_ context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	order, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	order.Lines = append([]entity.PurchaseOrderLine(nil), r.s.orderLines[id]...)
	return &order, nil
}

func (r *fakePurchaseOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.PurchaseOrderStatus) error {
	order := r.s.orders[id]
	order.Status = status
	r.s.orders[id] = order
	return nil
}

func (r *fakePurchaseOrderRepo) List(_ context.Context, _ *repository.PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error) {
	var out []entity.PurchaseOrder
	for _, order := range r.s.orders {
		out = append(out, order)
	}
	return out, int64(len(out)), nil
}

type fakePurchaseOrderLineRepo struct{ s *memStore }

func (r *fakePurchaseOrderLineRepo) CreateBatch(_ context.Context, lines []entity.PurchaseOrderLine) error {
	for i := range lines {
		ensureID(&lines[i].ID)
		r.s.orderLines[lines[i].PurchaseOrderID] = append(r.s.orderLines[lines[i].PurchaseOrderID], lines[i])
	}
	return nil
}

func (r *fakePurchaseOrderLineRepo) GetByOrderID(_ context.Context, orderID uuid.UUID) ([]entity.PurchaseOrderLine, error) {
	return append([]entity.PurchaseOrderLine(nil), r.s.orderLines[orderID]...), nil
}

func newSaleServiceForTest(s *memStore) *SaleService {
	return NewSaleService(
		&fakeSaleRepo{s}, &fakeSaleLineRepo{s}, &fakeReceiptRepo{s},
		&fakeStockRepo{s}, &fakeStoreRepo{s}, &fakeRegisterRepo{s},
		&fakeEmployeeRepo{s}, &fakeSKURepo{s}, &fakeTxManager{s})
}

func newReturnServiceForTest(s *memStore) *ReturnService {
	return NewReturnService(
		&fakeReturnRepo{s}, &fakeRefundRepo{s}, &fakeSaleRepo{s},
		&fakeStockRepo{s}, &fakeTxManager{s})
}

func newStockServiceForTest(s *memStore) *StockService {
	return NewStockService(
		&fakeStockRepo{s}, &fakeStoreRepo{s}, &fakeSKURepo{s}, &fakeTxManager{s})
}

func newSupplierServiceForTest(s *memStore) *SupplierService {
	return NewSupplierService(
		&fakeSupplierRepo{s}, &fakePurchaseOrderRepo{s}, &fakePurchaseOrderLineRepo{s},
		&fakeSKURepo{s}, &fakeStoreRepo{s}, &fakeStockRepo{s}, &fakeTxManager{s})
}

func seedStore(s *memStore, name string) entity.Store {
	store := entity.Store{ID: uuid.New(), Name: name}
	s.stores[store.ID] = store
	return store
}

func seedRegister(s *memStore, storeID uuid.UUID) entity.Register {
	register := entity.Register{ID: uuid.New(), StoreID: storeID, Identifier: "REG-1"}
	s.registers[register.ID] = register
	return register
}

func seedEmployee(s *memStore, role enum.Role) entity.Employee {
	employee := entity.Employee{ID: uuid.New(), Username: "emp-" + uuid.NewString()[:8], Role: role}
	s.employees[employee.ID] = employee
	return employee
}

func seedSKU(s *memStore, code, price string) entity.SKU {
	product := entity.Product{ID: uuid.New(), Name: "Product " + code}
	s.products[product.ID] = product
	sku := entity.SKU{
		ID:        uuid.New(),
		ProductID: product.ID,
		SKUCode:   code,
		Barcode:   "bar-" + code,
		BasePrice: decimal.RequireFromString(price),
	}
	s.skus[sku.ID] = sku
	return sku
}

func seedLevel(s *memStore, storeID, skuID uuid.UUID, qty int) entity.StockLevel {
	level := entity.StockLevel{ID: uuid.New(), StoreID: storeID, SKUID: skuID, Quantity: qty}
	s.levels[level.ID] = level
	return level
}
