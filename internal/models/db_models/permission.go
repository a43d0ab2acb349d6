package db_models

// Permission is a closed enumeration of the capabilities a session may
// hold. Capability checks go through HasPermission rather than raw string
// comparison.
type Permission string

const (
	PermCreateRequest     Permission = "create_request"
	PermApproveRequest    Permission = "approve_request"
	PermApproveAccounting Permission = "approve_accounting"
	PermMakeReservations  Permission = "make_reservations"
	PermViewAllRequests   Permission = "view_all_requests"
	PermManageCatalog     Permission = "manage_catalog"
)

func (p Permission) Valid() bool {
	switch p {
	case PermCreateRequest, PermApproveRequest, PermApproveAccounting,
		PermMakeReservations, PermViewAllRequests, PermManageCatalog:
		return true
	}
	return false
}

type Role string

const (
	RoleRequester  Role = "requester"
	RoleApprover   Role = "approver"
	RoleAccountant Role = "accountant"
	RoleAgent      Role = "agent"
	RoleAdmin      Role = "admin"
)

var rolePermissions = map[Role][]Permission{
	RoleRequester:  {PermCreateRequest},
	RoleApprover:   {PermCreateRequest, PermApproveRequest},
	RoleAccountant: {PermCreateRequest, PermApproveAccounting},
	RoleAgent:      {PermCreateRequest, PermMakeReservations},
	RoleAdmin: {
		PermCreateRequest, PermApproveRequest, PermApproveAccounting,
		PermMakeReservations, PermViewAllRequests, PermManageCatalog,
	},
}

// PermissionsForRole returns a copy of the role's fixed permission set.
func PermissionsForRole(r Role) []Permission {
	perms := rolePermissions[r]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// PermissionsFromNames converts serialized permission names back into the
// closed set. Unknown names and duplicates are dropped.
func PermissionsFromNames(names []string) []Permission {
	out := make([]Permission, 0, len(names))
	for _, name := range names {
		p := Permission(name)
		if p.Valid() && !HasPermission(out, p) {
			out = append(out, p)
		}
	}
	return out
}

func HasPermission(perms []Permission, p Permission) bool {
	for _, have := range perms {
		if have == p {
			return true
		}
	}
	return false
}
