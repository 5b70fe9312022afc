package core

import (
	"sort"
	"strings"
)

const (
	RoleSuperAdmin     = "SUPER_ADMIN"
	RoleAdmin          = "ADMIN"
	RoleAccounting     = "ACCOUNTING"
	RoleOperations     = "OPERATIONS"
	RoleCompliance     = "COMPLIANCE"
	RoleCarrierManager = "CARRIER_MANAGER"
	RoleCarrier        = "CARRIER"
	RoleCustomer       = "CUSTOMER"
	RoleDispatcher     = "DISPATCHER"
)

type RoleSet struct {
	Body map[string]struct{}
}

func NewRoleSet() RoleSet {
	return RoleSet{Body: make(map[string]struct{})}
}

// ParseRoles reads a comma separated role list ("ADMIN,ACCOUNTING")
func ParseRoles(input string) RoleSet {
	roles := NewRoleSet()
	for _, role := range strings.Split(input, ",") {
		roles.Add(role)
	}
	return roles
}

func (r RoleSet) Add(role string) {
	role = strings.TrimSpace(role)
	if role == "" {
		return
	}
	r.Body[role] = struct{}{}
}

func (r RoleSet) Has(role string) bool {
	_, ok := r.Body[role]
	return ok
}

// HasAny reports whether the set intersects roles
func (r RoleSet) HasAny(roles ...string) bool {
	for _, role := range roles {
		if r.Has(role) {
			return true
		}
	}
	return false
}

func (r RoleSet) Len() int {
	return len(r.Body)
}

// List returns the roles in sorted order
func (r RoleSet) List() []string {
	result := make([]string, 0, len(r.Body))
	for role := range r.Body {
		result = append(result, role)
	}
	sort.Strings(result)
	return result
}

func (r RoleSet) ToString() string {
	return strings.Join(r.List(), ",")
}
