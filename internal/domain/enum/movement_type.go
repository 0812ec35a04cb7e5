package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// MovementType is the typed reason recorded on every stock ledger entry
type MovementType string

const (
	MovementTypeSale       MovementType = "SALE"
	MovementTypePurchase   MovementType = "PURCHASE"
	MovementTypeReturn     MovementType = "RETURN"
	MovementTypeAdjustment MovementType = "ADJUSTMENT"
)

// ParseMovementType matches case-insensitively and normalizes to uppercase.
func ParseMovementType(s string) (MovementType, bool) {
	switch MovementType(strings.ToUpper(strings.TrimSpace(s))) {
	case MovementTypeSale:
		return MovementTypeSale, true
	case MovementTypePurchase:
		return MovementTypePurchase, true
	case MovementTypeReturn:
		return MovementTypeReturn, true
	case MovementTypeAdjustment:
		return MovementTypeAdjustment, true
	}
	return "", false
}

func (t MovementType) String() string {
	return string(t)
}

func (t MovementType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *MovementType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = MovementType(strings.ToUpper(str))
	return nil
}

func (t MovementType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *MovementType) Scan(value interface{}) error {
	if value == nil {
		*t = MovementTypeAdjustment
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = MovementType(v)
	case []byte:
		*t = MovementType(string(v))
	}
	return nil
}
