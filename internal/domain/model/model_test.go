package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"ordered", OrderStatusOrdered, "ordered"},
		{"preparing", OrderStatusPreparing, "preparing"},
		{"ready", OrderStatusReady, "ready"},
		{"collected", OrderStatusCollected, "collected"},
		{"cancelled", OrderStatusCancelled, "cancelled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestOrderStatusCancellable(t *testing.T) {
	cases := []struct {
		status OrderStatus
		want   bool
	}{
		{OrderStatusOrdered, true},
		{OrderStatusPreparing, true},
		{OrderStatusReady, false},
		{OrderStatusCollected, false},
		{OrderStatusCancelled, false},
	}

	for _, tc := range cases {
		if got := tc.status.Cancellable(); got != tc.want {
			t.Fatalf("Cancellable(%s) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestUserIsStaff(t *testing.T) {
	if (&User{Role: RoleStudent}).IsStaff() {
		t.Fatal("student must not be staff")
	}
	if !(&User{Role: RoleStaff}).IsStaff() {
		t.Fatal("staff role not recognized")
	}
	var nilUser *User
	if nilUser.IsStaff() {
		t.Fatal("nil user must not be staff")
	}
}
