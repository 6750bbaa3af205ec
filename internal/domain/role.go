package domain

import "fmt"

// Role is the closed set of actor kinds stored in users.role.
type Role string

const (
	RoleAdmin   Role = "hr"
	RoleManager Role = "crm"
	RoleTrainer Role = "trainer"
	RoleClient  Role = "client"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTrainer, RoleClient:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
	}
	return r, nil
}

// Capability names a permission a guarded route requires.
type Capability string

const (
	CapManageStaff    Capability = "manage_staff"
	CapManageSchedule Capability = "manage_schedule"
	CapManageClients  Capability = "manage_clients"
	CapManagePayments Capability = "manage_payments"
	CapViewAnalytics  Capability = "view_analytics"
)

var roleCaps = map[Role]map[Capability]struct{}{
	RoleAdmin: {
		CapManageStaff: {}, CapManageSchedule: {}, CapManageClients: {},
		CapManagePayments: {}, CapViewAnalytics: {},
	},
	RoleManager: {
		CapManageSchedule: {}, CapManageClients: {},
		CapManagePayments: {}, CapViewAnalytics: {},
	},
	RoleTrainer: {
		CapManageSchedule: {},
	},
	RoleClient: {},
}

// Can reports whether the role grants c. An empty capability is always granted.
func (r Role) Can(c Capability) bool {
	if c == "" {
		return true
	}
	_, ok := roleCaps[r][c]
	return ok
}
