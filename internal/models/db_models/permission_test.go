package db_models

import (
	"testing"

	"gorm.io/datatypes"
)

func TestPermissionsForRole(t *testing.T) {
	cases := []struct {
		role Role
		want []Permission
	}{
		{RoleRequester, []Permission{PermCreateRequest}},
		{RoleApprover, []Permission{PermCreateRequest, PermApproveRequest}},
		{RoleAccountant, []Permission{PermCreateRequest, PermApproveAccounting}},
		{RoleAgent, []Permission{PermCreateRequest, PermMakeReservations}},
	}

	for _, tc := range cases {
		got := PermissionsForRole(tc.role)
		if len(got) != len(tc.want) {
			t.Errorf("%s: permissions = %v, want %v", tc.role, got, tc.want)
			continue
		}
		for _, p := range tc.want {
			if !HasPermission(got, p) {
				t.Errorf("%s: missing %q", tc.role, p)
			}
		}
	}

	admin := PermissionsForRole(RoleAdmin)
	for _, p := range []Permission{PermCreateRequest, PermApproveRequest, PermApproveAccounting, PermMakeReservations, PermViewAllRequests, PermManageCatalog} {
		if !HasPermission(admin, p) {
			t.Errorf("admin missing %q", p)
		}
	}
}

func TestPermissionsForRoleReturnsCopy(t *testing.T) {
	first := PermissionsForRole(RoleRequester)
	first[0] = PermViewAllRequests
	second := PermissionsForRole(RoleRequester)
	if second[0] != PermCreateRequest {
		t.Error("mutating a returned set leaked into the role table")
	}
}

func TestAccountPermissionsMergesExtras(t *testing.T) {
	account := Account{
		Role:             RoleRequester,
		ExtraPermissions: datatypes.JSON(`["view_all_requests","create_request","not_a_permission"]`),
	}

	perms := account.Permissions()
	if !HasPermission(perms, PermViewAllRequests) {
		t.Error("extra grant was dropped")
	}
	if HasPermission(perms, Permission("not_a_permission")) {
		t.Error("unknown grant leaked into the effective set")
	}

	count := 0
	for _, p := range perms {
		if p == PermCreateRequest {
			count++
		}
	}
	if count != 1 {
		t.Errorf("create_request appears %d times, want 1", count)
	}
}

func TestPermissionsFromNames(t *testing.T) {
	got := PermissionsFromNames([]string{"create_request", "approve_request", "create_request", "not_a_permission"})
	want := []Permission{PermCreateRequest, PermApproveRequest}
	if len(got) != len(want) {
		t.Fatalf("PermissionsFromNames = %v, want %v", got, want)
	}
	for i, p := range want {
		if got[i] != p {
			t.Errorf("PermissionsFromNames[%d] = %q, want %q", i, got[i], p)
		}
	}

	if got := PermissionsFromNames(nil); len(got) != 0 {
		t.Errorf("nil input = %v, want empty", got)
	}
}

func TestAccountPermissionsMalformedOverrides(t *testing.T) {
	account := Account{Role: RoleAgent, ExtraPermissions: datatypes.JSON(`{"oops":`)}
	perms := account.Permissions()
	if !HasPermission(perms, PermMakeReservations) || len(perms) != 2 {
		t.Errorf("malformed overrides must fall back to the role set, got %v", perms)
	}
}
