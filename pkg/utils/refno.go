package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateReceiptNumber derives a receipt number from the sale id and a
// timestamp, e.g. RCP-1a2b3c4d-20260101123000.
func GenerateReceiptNumber(saleID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("RCP-%s-%s", strings.Split(saleID.String(), "-")[0], at.Format("20060102150405"))
}

// GeneratePurchaseOrderNo generates a unique purchase order number
func GeneratePurchaseOrderNo() string {
	return "PO-" + strings.ToUpper(uuid.New().String()[:8])
}
