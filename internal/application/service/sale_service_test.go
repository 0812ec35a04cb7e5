package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"github.com/storelinehq/storeline-api/pkg/apperror"
)

func TestCreateSaleCommitsStockLedgerAndReceipt(t *testing.T) {
	s := newMemStore()
	store := seedStore(s, "Main Street")
	register := seedRegister(s, store.ID)
	cashier := seedEmployee(s, enum.RoleCashier)
	sku := seedSKU(s, "COLA-330", "10.00")
	seedLevel(s, store.ID, sku.ID, 5)

	svc := newSaleServiceForTest(s)
	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		StoreID:       store.ID,
		RegisterID:    register.ID,
		CashierID:     cashier.ID,
		TotalAmount:   decimal.RequireFromString("50.00"),
		PaymentMethod: "cash",
		Lines:         []SaleLineInput{{SKUID: sku.ID, Quantity: 5, UnitPrice: decimal.RequireFromString("10.00")}},
	})
	if err != nil {
		t.Fatalf("CreateSale() error = %v", err)
	}

	if sale.PaymentMethod != enum.PaymentMethodCash {
		t.Fatalf("payment method = %v, want %v", sale.PaymentMethod, enum.PaymentMethodCash)
	}
	if len(sale.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(sale.Lines))
	}
	if !sale.Lines[0].UnitPrice.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("unit price = %v, want 10.00", sale.Lines[0].UnitPrice)
	}
	if sale.Receipt == nil {
		t.Fatal("expected a receipt on the committed sale")
	}
	if !strings.HasPrefix(sale.Receipt.ReceiptNumber, "RCP-") {
		t.Fatalf("receipt number = %q, want RCP- prefix", sale.Receipt.ReceiptNumber)
	}

	stockSvc := newStockServiceForTest(s)
	qty, err := stockSvc.QuantityOf(context.Background(), store.ID, sku.ID)
	if err != nil {
		t.Fatalf("QuantityOf() error = %v", err)
	}
	if qty != 0 {
		t.Fatalf("quantity after sale = %d, want 0", qty)
	}

	if len(s.movements) != 1 {
		t.Fatalf("movements = %d, want 1", len(s.movements))
	}
	if s.movements[0].MovementType != enum.MovementTypeSale {
		t.Fatalf("movement type = %v, want SALE", s.movements[0].MovementType)
	}
	if s.movements[0].QuantityChanged != -5 {
		t.Fatalf("quantity changed = %d, want -5", s.movements[0].QuantityChanged)
	}
}

func TestCreateSaleInsufficientStockRollsBackEverything(t *testing.T) {
	s := newMemStore()
	store := seedStore(s, "Main Street")
	register := seedRegister(s, store.ID)
	cashier := seedEmployee(s, enum.RoleCashier)
	sku := seedSKU(s, "COLA-330", "10.00")
	seedLevel(s, store.ID, sku.ID, 5)

	svc := newSaleServiceForTest(s)
	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		StoreID:       store.ID,
		RegisterID:    register.ID,
		CashierID:     cashier.ID,
		TotalAmount:   decimal.RequireFromString("60.00"),
		PaymentMethod: "CARD",
		Lines:         []SaleLineInput{{SKUID: sku.ID, Quantity: 6, UnitPrice: decimal.RequireFromString("10.00")}},
	})
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != 409 {
		t.Fatalf("error code = %d, want 409", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "COLA-330") {
		t.Fatalf("error message %q should name the SKU", appErr.Message)
	}

	if len(s.sales) != 0 || len(s.saleLines) != 0 || len(s.receipts) != 0 || len(s.movements) != 0 {
		t.Fatalf("partial writes survived rollback: sales=%d lines=%d receipts=%d movements=%d",
			len(s.sales), len(s.saleLines), len(s.receipts), len(s.movements))
	}
	for _, level := range s.levels {
		if level.Quantity != 5 {
			t.Fatalf("stock level = %d after rollback, want 5", level.Quantity)
		}
	}
}

func TestCreateSaleHonorsRegisterPriceOverBasePrice(t *testing.T) {
	s := newMemStore()
	store := seedStore(s, "Main Street")
	register := seedRegister(s, store.ID)
	cashier := seedEmployee(s, enum.RoleCashier)
	sku := seedSKU(s, "COLA-330", "10.00")
	seedLevel(s, store.ID, sku.ID, 5)

	// Discounted at the register: 8.00 against a base price of 10.00.
	svc := newSaleServiceForTest(s)
	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		StoreID:       store.ID,
		RegisterID:    register.ID,
		CashierID:     cashier.ID,
		TotalAmount:   decimal.RequireFromString("8.00"),
		PaymentMethod: "CASH",
		Lines:         []SaleLineInput{{SKUID: sku.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("8.00")}},
	})
	if err != nil {
		t.Fatalf("CreateSale() error = %v", err)
	}
	if !sale.Lines[0].UnitPrice.Equal(decimal.RequireFromString("8.00")) {
		t.Fatalf("unit price = %v, want 8.00", sale.Lines[0].UnitPrice)
	}
	if !sale.TotalAmount.Equal(decimal.RequireFromString("8.00")) {
		t.Fatalf("total = %v, want 8.00", sale.TotalAmount)
	}
}

func TestCreateSaleTotalTolerance(t *testing.T) {
	cases := []struct {
		name   string
		total  string
		wantOK bool
	}{
		{"exact", "50.00", true},
		{"one cent over", "50.01", true},
		{"one cent under", "49.99", true},
		{"two cents over", "50.02", false},
		{"two cents under", "49.98", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newMemStore()
			store := seedStore(s, "Main Street")
			register := seedRegister(s, store.ID)
			cashier := seedEmployee(s, enum.RoleCashier)
			sku := seedSKU(s, "COLA-330", "10.00")
			seedLevel(s, store.ID, sku.ID, 10)

			svc := newSaleServiceForTest(s)
			_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
				StoreID:       store.ID,
				RegisterID:    register.ID,
				CashierID:     cashier.ID,
				TotalAmount:   decimal.RequireFromString(tc.total),
				PaymentMethod: "CASH",
				Lines:         []SaleLineInput{{SKUID: sku.ID, Quantity: 5, UnitPrice: decimal.RequireFromString("10.00")}},
			})
			if tc.wantOK && err != nil {
				t.Fatalf("CreateSale(total=%s) error = %v", tc.total, err)
			}
			if !tc.wantOK && err == nil {
				t.Fatalf("CreateSale(total=%s) accepted, want rejection", tc.total)
			}
		})
	}
}

func TestCreateSalePaymentMethodNormalization(t *testing.T) {
	cases := []struct {
		input  string
		want   enum.PaymentMethod
		wantOK bool
	}{
		{"cash", enum.PaymentMethodCash, true},
		{"Card", enum.PaymentMethodCard, true},
		{"MOBILE", enum.PaymentMethodMobile, true},
		{" other ", enum.PaymentMethodOther, true},
		{"bitcoin", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		s := newMemStore()
		store := seedStore(s, "Main Street")
		register := seedRegister(s, store.ID)
		cashier := seedEmployee(s, enum.RoleCashier)
		sku := seedSKU(s, "COLA-330", "10.00")
		seedLevel(s, store.ID, sku.ID, 10)

		svc := newSaleServiceForTest(s)
		sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
			StoreID:       store.ID,
			RegisterID:    register.ID,
			CashierID:     cashier.ID,
			TotalAmount:   decimal.RequireFromString("10.00"),
			PaymentMethod: tc.input,
			Lines:         []SaleLineInput{{SKUID: sku.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("10.00")}},
		})
		if tc.wantOK {
			if err != nil {
				t.Fatalf("CreateSale(payment=%q) error = %v", tc.input, err)
			}
			if sale.PaymentMethod != tc.want {
				t.Fatalf("CreateSale(payment=%q) = %v, want %v", tc.input, sale.PaymentMethod, tc.want)
			}
		} else if err == nil {
			t.Fatalf("CreateSale(payment=%q) accepted, want rejection", tc.input)
		}
	}
}

func TestCreateSaleValidation(t *testing.T) {
	s := newMemStore()
	store := seedStore(s, "Main Street")
	other := seedStore(s, "Annex")
	register := seedRegister(s, store.ID)
	foreignRegister := seedRegister(s, other.ID)
	cashier := seedEmployee(s, enum.RoleCashier)
	sku := seedSKU(s, "COLA-330", "10.00")
	seedLevel(s, store.ID, sku.ID, 10)

	svc := newSaleServiceForTest(s)
	base := func() *CreateSaleInput {
		return &CreateSaleInput{
			StoreID:       store.ID,
			RegisterID:    register.ID,
			CashierID:     cashier.ID,
			TotalAmount:   decimal.RequireFromString("10.00"),
			PaymentMethod: "CASH",
			Lines:         []SaleLineInput{{SKUID: sku.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("10.00")}},
		}
	}

	cases := []struct {
		name   string
		mutate func(*CreateSaleInput)
	}{
		{"no lines", func(in *CreateSaleInput) { in.Lines = nil }},
		{"zero quantity", func(in *CreateSaleInput) { in.Lines[0].Quantity = 0 }},
		{"negative quantity", func(in *CreateSaleInput) { in.Lines[0].Quantity = -1 }},
		{"zero unit price", func(in *CreateSaleInput) { in.Lines[0].UnitPrice = decimal.Zero }},
		{"negative unit price", func(in *CreateSaleInput) { in.Lines[0].UnitPrice = decimal.RequireFromString("-1.00") }},
		{"unknown sku", func(in *CreateSaleInput) { in.Lines[0].SKUID = uuid.New() }},
		{"register of another store", func(in *CreateSaleInput) { in.RegisterID = foreignRegister.ID }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base()
			tc.mutate(in)
			if _, err := svc.CreateSale(context.Background(), in); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSummaryAggregatesWindow(t *testing.T) {
	s := newMemStore()
	store := seedStore(s, "Main Street")

	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, amount := range []string{"10.00", "25.50", "99.99"} {
		sku := seedSKU(s, "SKU-"+string(rune('A'+i)), amount)
		sale := seedSale(s, store.ID, []entity.SaleLine{
			{SKUID: sku.ID, Quantity: 1, UnitPrice: decimal.RequireFromString(amount)},
		})
		stored := s.sales[sale.ID]
		stored.CreatedAt = day.Add(time.Duration(i) * time.Hour)
		s.sales[sale.ID] = stored
	}

	svc := newSaleServiceForTest(s)
	summary, err := svc.Summary(context.Background(), day, day.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary.Count != 3 {
		t.Fatalf("count = %d, want 3", summary.Count)
	}
	if !summary.Revenue.Equal(decimal.RequireFromString("135.49")) {
		t.Fatalf("revenue = %v, want 135.49", summary.Revenue)
	}

	// A window before the sales sees nothing.
	empty, err := svc.Summary(context.Background(), day.AddDate(0, -1, 0), day.Add(-time.Hour))
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if empty.Count != 0 || !empty.Revenue.IsZero() {
		t.Fatalf("empty window = %d / %v, want 0 / 0", empty.Count, empty.Revenue)
	}

	if _, err := svc.Summary(context.Background(), day, day.Add(-time.Hour)); err == nil {
		t.Fatal("expected rejection when end precedes start")
	}
}
