package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"github.com/storelinehq/storeline-api/pkg/apperror"
)

func newProductServiceForTest(s *memStore) *ProductService {
	return NewProductService(&fakeProductRepo{s}, &fakeSKURepo{s}, &fakeSaleLineRepo{s}, &fakeStockRepo{s})
}

func newStoreServiceForTest(s *memStore) *StoreService {
	return NewStoreService(
		&fakeStoreRepo{s}, &fakeRegisterRepo{s}, &fakeEmployeeRepo{s},
		&fakeStockRepo{s}, &fakeSaleRepo{s}, &fakeTxManager{s})
}

func newEmployeeServiceForTest(s *memStore) *EmployeeService {
	return NewEmployeeService(&fakeEmployeeRepo{s}, &fakeStoreRepo{s}, &fakeSaleRepo{s})
}

func TestDeleteSKUBlockedByReferences(t *testing.T) {
	s := newMemStore()
	store := seedStore(s, "Main Street")
	sold := seedSKU(s, "COLA-330", "10.00")
	stocked := seedSKU(s, "CHIPS-50", "4.00")
	free := seedSKU(s, "GUM-10", "1.00")

	seedSale(s, store.ID, []entity.SaleLine{
		{SKUID: sold.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("10.00")},
	})
	seedLevel(s, store.ID, stocked.ID, 7)

	svc := newProductServiceForTest(s)

	if err := svc.DeleteSKU(context.Background(), sold.ID); err == nil {
		t.Fatal("expected conflict deleting SKU referenced by a sale")
	} else if code := apperror.GetAppError(err).Code; code != 409 {
		t.Fatalf("error code = %d, want 409", code)
	}

	if err := svc.DeleteSKU(context.Background(), stocked.ID); err == nil {
		t.Fatal("expected conflict deleting SKU with stock history")
	}

	if err := svc.DeleteSKU(context.Background(), free.ID); err != nil {
		t.Fatalf("DeleteSKU(unreferenced) error = %v", err)
	}
	if _, ok := s.skus[free.ID]; ok {
		t.Fatal("unreferenced SKU still present after delete")
	}
}

func TestDeleteProductBlockedByReferencedSKU(t *testing.T) {
	s := newMemStore()
	store := seedStore(s, "Main Street")
	sku := seedSKU(s, "COLA-330", "10.00")
	seedLevel(s, store.ID, sku.ID, 1)

	svc := newProductServiceForTest(s)
	if err := svc.DeleteProduct(context.Background(), sku.ProductID); err == nil {
		t.Fatal("expected conflict deleting product whose SKU has stock history")
	}
}

func TestDeleteStoreRules(t *testing.T) {
	s := newMemStore()

	withSales := seedStore(s, "Busy")
	sku := seedSKU(s, "COLA-330", "10.00")
	seedSale(s, withSales.ID, []entity.SaleLine{
		{SKUID: sku.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("10.00")},
	})

	withStock := seedStore(s, "Stocked")
	seedLevel(s, withStock.ID, sku.ID, 5)

	empty := seedStore(s, "Empty")
	register := seedRegister(s, empty.ID)
	clerk := seedEmployee(s, enum.RoleCashier)
	clerk.StoreID = &empty.ID
	s.employees[clerk.ID] = clerk

	svc := newStoreServiceForTest(s)

	if err := svc.DeleteStore(context.Background(), withSales.ID); err == nil {
		t.Fatal("expected conflict deleting store with recorded sales")
	}
	if err := svc.DeleteStore(context.Background(), withStock.ID); err == nil {
		t.Fatal("expected conflict deleting store with stock history")
	}

	if err := svc.DeleteStore(context.Background(), empty.ID); err != nil {
		t.Fatalf("DeleteStore(empty) error = %v", err)
	}
	if _, ok := s.stores[empty.ID]; ok {
		t.Fatal("store still present after delete")
	}
	if _, ok := s.registers[register.ID]; ok {
		t.Fatal("register survived store delete")
	}
	if got := s.employees[clerk.ID]; got.StoreID != nil {
		t.Fatal("employee still assigned to the deleted store")
	}
}

func TestDeleteEmployeeBlockedBySales(t *testing.T) {
	s := newMemStore()
	store := seedStore(s, "Main Street")
	sku := seedSKU(s, "COLA-330", "10.00")
	sale := seedSale(s, store.ID, []entity.SaleLine{
		{SKUID: sku.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("10.00")},
	})
	idle := seedEmployee(s, enum.RoleCashier)

	svc := newEmployeeServiceForTest(s)

	if err := svc.DeleteEmployee(context.Background(), sale.CashierID); err == nil {
		t.Fatal("expected conflict deleting cashier with recorded sales")
	}
	if err := svc.DeleteEmployee(context.Background(), idle.ID); err != nil {
		t.Fatalf("DeleteEmployee(idle) error = %v", err)
	}
	if _, ok := s.employees[idle.ID]; ok {
		t.Fatal("employee still present after delete")
	}
}
