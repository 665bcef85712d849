package domain

import "testing"

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []OrderStatus{"", "pending", "PICKED UP", "Shipped", "Picked  Up", "Delivered "}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{RoleCustomer, RoleLaundryman, RoleRider} {
		if !ValidRole(r) {
			t.Errorf("expected role %q to be valid", r)
		}
	}
	for _, r := range []string{"", "admin", "User", "LAUNDRYMAN"} {
		if ValidRole(r) {
			t.Errorf("expected role %q to be invalid", r)
		}
	}
}
