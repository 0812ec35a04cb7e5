package authz

import (
	"testing"

	"github.com/storelinehq/storeline-api/internal/domain/enum"
)

func TestCan(t *testing.T) {
	cases := []struct {
		role enum.Role
		op   Operation
		want bool
	}{
		{enum.RoleCashier, OpCreateSale, true},
		{enum.RoleCashier, OpCreateReturn, true},
		{enum.RoleCashier, OpManageEmployees, false},
		{enum.RoleCashier, OpManageCatalog, false},
		{enum.RoleCashier, OpManageStores, false},
		{enum.RoleCashier, OpAdjustStock, false},
		{enum.RoleCashier, OpViewReports, false},
		{enum.RoleCashier, OpManagePurchaseOrders, false},
		{enum.RoleManager, OpCreateSale, true},
		{enum.RoleManager, OpCreateReturn, true},
		{enum.RoleManager, OpManageEmployees, true},
		{enum.RoleManager, OpManageCatalog, true},
		{enum.RoleManager, OpManageStores, true},
		{enum.RoleManager, OpAdjustStock, true},
		{enum.RoleManager, OpViewReports, true},
		{enum.RoleManager, OpManagePurchaseOrders, true},
		{enum.Role("INTERN"), OpCreateSale, false},
	}

	for _, tc := range cases {
		if got := Can(tc.role, tc.op); got != tc.want {
			t.Fatalf("Can(%s, %s) = %v, want %v", tc.role, tc.op, got, tc.want)
		}
	}
}
