package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateReceiptNumber(t *testing.T) {
	saleID := uuid.MustParse("1a2b3c4d-0000-0000-0000-000000000000")
	at := time.Date(2026, 1, 1, 12, 30, 0, 0, time.UTC)

	got := GenerateReceiptNumber(saleID, at)
	want := "RCP-1a2b3c4d-20260101123000"
	if got != want {
		t.Fatalf("GenerateReceiptNumber() = %q, want %q", got, want)
	}
}

func TestGeneratePurchaseOrderNo(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		no := GeneratePurchaseOrderNo()
		if !strings.HasPrefix(no, "PO-") {
			t.Fatalf("order no = %q, want PO- prefix", no)
		}
		if seen[no] {
			t.Fatalf("duplicate order no %q", no)
		}
		seen[no] = true
	}
}
