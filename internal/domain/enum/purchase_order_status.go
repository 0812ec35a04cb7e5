package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// PurchaseOrderStatus represents the lifecycle state of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending   PurchaseOrderStatus = "PENDING"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "CANCELLED"
)

// ParsePurchaseOrderStatus parses a status string case-insensitively
func ParsePurchaseOrderStatus(s string) (PurchaseOrderStatus, bool) {
	switch PurchaseOrderStatus(strings.ToUpper(s)) {
	case PurchaseOrderStatusPending:
		return PurchaseOrderStatusPending, true
	case PurchaseOrderStatusReceived:
		return PurchaseOrderStatusReceived, true
	case PurchaseOrderStatusCancelled:
		return PurchaseOrderStatusCancelled, true
	default:
		return "", false
	}
}

func (s PurchaseOrderStatus) String() string {
	return string(s)
}

func (s PurchaseOrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *PurchaseOrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = PurchaseOrderStatus(strings.ToUpper(str))
	return nil
}

func (s PurchaseOrderStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *PurchaseOrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PurchaseOrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = PurchaseOrderStatus(v)
	case []byte:
		*s = PurchaseOrderStatus(string(v))
	}
	return nil
}
