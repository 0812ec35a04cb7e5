package authz

import "github.com/storelinehq/storeline-api/internal/domain/enum"

// Operation is a named privileged operation gated by the role policy.
type Operation string

const (
	OpManageEmployees      Operation = "manage-employees"
	OpManageCatalog        Operation = "manage-catalog"
	OpManageStores         Operation = "manage-stores"
	OpAdjustStock          Operation = "adjust-stock"
	OpCreateSale           Operation = "create-sale"
	OpCreateReturn         Operation = "create-return"
	OpViewReports          Operation = "view-reports"
	OpManagePurchaseOrders Operation = "manage-purchase-orders"
)

// policy maps each role to the operations it may perform. There is exactly
// one place where role checks live; handlers consult Can instead of
// scattering role conditionals.
var policy = map[enum.Role]map[Operation]bool{
	enum.RoleCashier: {
		OpCreateSale:   true,
		OpCreateReturn: true,
	},
	enum.RoleManager: {
		OpManageEmployees:      true,
		OpManageCatalog:        true,
		OpManageStores:         true,
		OpAdjustStock:          true,
		OpCreateSale:           true,
		OpCreateReturn:         true,
		OpViewReports:          true,
		OpManagePurchaseOrders: true,
	},
}

// Can reports whether a role is allowed to perform an operation.
func Can(role enum.Role, op Operation) bool {
	ops, ok := policy[role]
	if !ok {
		return false
	}
	return ops[op]
}
