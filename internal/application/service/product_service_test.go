package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSKUBasePriceMustBePositive(t *testing.T) {
	s := newMemStore()
	existing := seedSKU(s, "COLA-330", "10.00")
	svc := newProductServiceForTest(s)

	cases := []struct {
		name   string
		price  string
		wantOK bool
	}{
		{"positive", "0.01", true},
		{"zero", "0", false},
		{"negative", "-5.00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateSKU(context.Background(), &CreateSKUInput{
				ProductID: existing.ProductID,
				SKUCode:   "CR-" + tc.name,
				Barcode:   "bc-cr-" + tc.name,
				BasePrice: decimal.RequireFromString(tc.price),
			})
			if tc.wantOK && err != nil {
				t.Fatalf("CreateSKU(price=%s) error = %v", tc.price, err)
			}
			if !tc.wantOK && err == nil {
				t.Fatalf("CreateSKU(price=%s) accepted, want rejection", tc.price)
			}

			price := decimal.RequireFromString(tc.price)
			_, err = svc.UpdateSKU(context.Background(), existing.ID, &UpdateSKUInput{
				BasePrice: &price,
			})
			if tc.wantOK && err != nil {
				t.Fatalf("UpdateSKU(price=%s) error = %v", tc.price, err)
			}
			if !tc.wantOK && err == nil {
				t.Fatalf("UpdateSKU(price=%s) accepted, want rejection", tc.price)
			}
		})
	}
}
