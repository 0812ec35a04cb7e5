package service

import (
	"context"
	"testing"

	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"github.com/storelinehq/storeline-api/pkg/apperror"
)

func TestAdjustMaterializesLevelOnFirstTouch(t *testing.T) {
	s := newMemStore()
	store := seedStore(s, "Main Street")
	sku := seedSKU(s, "COLA-330", "10.00")

	svc := newStockServiceForTest(s)
	level, err := svc.Adjust(context.Background(), &AdjustInput{
		StoreID: store.ID,
		SKUID:   sku.ID,
		Delta:   10,
	})
	if err != nil {
		t.Fatalf("Adjust() error = %v", err)
	}
	if level.Quantity != 10 {
		t.Fatalf("quantity = %d, want 10", level.Quantity)
	}
	if len(s.movements) != 1 {
		t.Fatalf("movements = %d, want 1", len(s.movements))
	}
	if s.movements[0].MovementType != enum.MovementTypeAdjustment || s.movements[0].QuantityChanged != 10 {
		t.Fatalf("movement = %v %d, want ADJUSTMENT +10",
			s.movements[0].MovementType, s.movements[0].QuantityChanged)
	}
}

func TestAdjustRejectsNegativeResult(t *testing.T) {
	s := newMemStore()
	store := seedStore(s, "Main Street")
	sku := seedSKU(s, "COLA-330", "10.00")
	seedLevel(s, store.ID, sku.ID, 4)

	svc := newStockServiceForTest(s)
	_, err := svc.Adjust(context.Background(), &AdjustInput{
		StoreID: store.ID,
		SKUID:   sku.ID,
		Delta:   -5,
	})
	if err == nil {
		t.Fatal("expected rejection of adjustment below zero")
	}
	if code := apperror.GetAppError(err).Code; code != 409 {
		t.Fatalf("error code = %d, want 409", code)
	}
	if len(s.movements) != 0 {
		t.Fatalf("movements = %d after rejected adjust, want 0", len(s.movements))
	}
	qty, err := svc.QuantityOf(context.Background(), store.ID, sku.ID)
	if err != nil {
		t.Fatalf("QuantityOf() error = %v", err)
	}
	if qty != 4 {
		t.Fatalf("quantity = %d after rejected adjust, want 4", qty)
	}
}

func TestAdjustZeroDeltaRejected(t *testing.T) {
	s := newMemStore()
	store := seedStore(s, "Main Street")
	sku := seedSKU(s, "COLA-330", "10.00")

	svc := newStockServiceForTest(s)
	if _, err := svc.Adjust(context.Background(), &AdjustInput{
		StoreID: store.ID,
		SKUID:   sku.ID,
	}); err == nil {
		t.Fatal("expected zero delta rejection")
	}
}

func TestQuantityOfUnknownPairReadsZero(t *testing.T) {
	s := newMemStore()
	store := seedStore(s, "Main Street")
	sku := seedSKU(s, "COLA-330", "10.00")

	svc := newStockServiceForTest(s)
	qty, err := svc.QuantityOf(context.Background(), store.ID, sku.ID)
	if err != nil {
		t.Fatalf("QuantityOf() error = %v", err)
	}
	if qty != 0 {
		t.Fatalf("quantity = %d, want 0", qty)
	}
	// Reading must not materialize a level row.
	if len(s.levels) != 0 {
		t.Fatalf("levels = %d after read, want 0", len(s.levels))
	}
}

func TestMovementSumMatchesQuantity(t *testing.T) {
	s := newMemStore()
	store := seedStore(s, "Main Street")
	sku := seedSKU(s, "COLA-330", "10.00")

	svc := newStockServiceForTest(s)
	for _, delta := range []int{10, -4, 7} {
		if _, err := svc.Adjust(context.Background(), &AdjustInput{
			StoreID: store.ID,
			SKUID:   sku.ID,
			Delta:   delta,
		}); err != nil {
			t.Fatalf("Adjust(%d) error = %v", delta, err)
		}
	}

	sum := 0
	for _, m := range s.movements {
		sum += m.QuantityChanged
	}
	qty, err := svc.QuantityOf(context.Background(), store.ID, sku.ID)
	if err != nil {
		t.Fatalf("QuantityOf() error = %v", err)
	}
	if sum != qty {
		t.Fatalf("movement sum = %d, quantity = %d; ledger must replay to quantity", sum, qty)
	}
	if qty != 13 {
		t.Fatalf("quantity = %d, want 13", qty)
	}
}

func TestLowStockThresholds(t *testing.T) {
	s := newMemStore()
	store := seedStore(s, "Main Street")
	for i, qty := range []int{0, 3, 10, 11} {
		sku := seedSKU(s, "SKU-"+string(rune('A'+i)), "1.00")
		seedLevel(s, store.ID, sku.ID, qty)
	}

	svc := newStockServiceForTest(s)

	levels, err := svc.LowStock(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("LowStock() error = %v", err)
	}
	if len(levels) != 3 {
		t.Fatalf("LowStock(default) = %d levels, want 3", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i].Quantity < levels[i-1].Quantity {
			t.Fatalf("LowStock() not ascending by quantity: %d before %d",
				levels[i-1].Quantity, levels[i].Quantity)
		}
	}
	if levels[0].Quantity != 0 || levels[2].Quantity != 10 {
		t.Fatalf("LowStock() order = [%d %d %d], want [0 3 10]",
			levels[0].Quantity, levels[1].Quantity, levels[2].Quantity)
	}

	out, err := svc.OutOfStock(context.Background(), nil)
	if err != nil {
		t.Fatalf("OutOfStock() error = %v", err)
	}
	if len(out) != 1 || out[0].Quantity != 0 {
		t.Fatalf("OutOfStock() = %d levels, want the single depleted one", len(out))
	}

	negative := -1
	if _, err := svc.LowStock(context.Background(), nil, &negative); err == nil {
		t.Fatal("expected negative threshold rejection")
	}
}
