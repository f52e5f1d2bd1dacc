package model

import "time"

// StaffRole determines a staff user's permission set.
type StaffRole string

const (
	RoleCaseworker StaffRole = "caseworker"
	RoleSupervisor StaffRole = "supervisor"
)

// Permission codes carried in staff JWTs.
type Permission string

const (
	PermissionRecordsRead  Permission = "records:read"
	PermissionRecordsWrite Permission = "records:write"
	PermissionCatalogRead  Permission = "catalog:read"
)

// rolePermissions is the fixed role → permission mapping. Caseworkers can
// read and edit records; supervisors additionally see catalog internals.
var rolePermissions = map[StaffRole][]Permission{
	RoleCaseworker: {PermissionRecordsRead, PermissionRecordsWrite},
	RoleSupervisor: {PermissionRecordsRead, PermissionRecordsWrite, PermissionCatalogRead},
}

// PermissionsForRole returns the permission codes for a role as strings.
func PermissionsForRole(role StaffRole) []string {
	perms := rolePermissions[role]
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		out = append(out, string(p))
	}
	return out
}

// StaffUser is an employee account for the case-management dashboard.
type StaffUser struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         StaffRole `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StaffLoginRequest is the payload for staff authentication.
type StaffLoginRequest struct {
	Username string `json:"username" binding:"required,min=2,max=64"`
	Password string `json:"password" binding:"required,min=4,max=128"`
}
