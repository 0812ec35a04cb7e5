package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// Role represents the functional role of an employee
type Role string

const (
	RoleCashier Role = "CASHIER"
	RoleManager Role = "MANAGER"
)

// ParseRole normalizes a string into a Role, defaulting to CASHIER
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleCashier:
		return RoleCashier, true
	case RoleManager:
		return RoleManager, true
	}
	return RoleCashier, false
}

func (r Role) String() string {
	return string(r)
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*r = Role(strings.ToUpper(str))
	return nil
}

func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *Role) Scan(value interface{}) error {
	if value == nil {
		*r = RoleCashier
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(string(v))
	}
	return nil
}
