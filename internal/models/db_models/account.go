package db_models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         Role
	// ExtraPermissions holds per-account grants on top of the role's fixed
	// set, stored as a JSON array of permission names.
	ExtraPermissions datatypes.JSON

	Requests []TravelRequest `gorm:"foreignKey:RequesterID"`
}

// Permissions returns the account's effective capability set: the closed
// role set plus any per-account grants. Unknown names in the override
// column are dropped rather than propagated.
func (a *Account) Permissions() []Permission {
	perms := PermissionsForRole(a.Role)
	if len(a.ExtraPermissions) == 0 {
		return perms
	}

	var extra []string
	if err := json.Unmarshal(a.ExtraPermissions, &extra); err != nil {
		return perms
	}
	for _, name := range extra {
		p := Permission(name)
		if p.Valid() && !HasPermission(perms, p) {
			perms = append(perms, p)
		}
	}
	return perms
}

// PermissionNames is Permissions() as strings, the form token claims and
// profile payloads carry.
func (a *Account) PermissionNames() []string {
	perms := a.Permissions()
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, string(p))
	}
	return names
}
