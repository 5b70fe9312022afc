package core

// RoleRef is the object form of a role claim ({"name": "..."})
type RoleRef struct {
	Name string `json:"name"`
}

// Principal is the authenticated actor of a request.
// Different auth provider versions expose roles as an array, a single
// name or a role object; EffectiveRoles folds all of them together.
type Principal struct {
	ID         string   `json:"id"`
	Roles      []string `json:"roles,omitempty"`
	Role       string   `json:"role,omitempty"`
	RoleRef    *RoleRef `json:"roleRef,omitempty"`
	TenantID   string   `json:"tenantId,omitempty"`
	CarrierID  string   `json:"carrierId,omitempty"`
	CompanyID  string   `json:"companyId,omitempty"`
	CustomerID string   `json:"customerId,omitempty"`
}

// EffectiveRoles returns the union of every role shape carried by the principal
func (p *Principal) EffectiveRoles() RoleSet {
	set := NewRoleSet()
	if p == nil {
		return set
	}
	for _, r := range p.Roles {
		set.Add(r)
	}
	set.Add(p.Role)
	if p.RoleRef != nil {
		set.Add(p.RoleRef.Name)
	}
	return set
}

// DocumentFilter narrows a document listing
type DocumentFilter struct {
	DocumentType DocumentType
	EntityType   EntityType
	EntityID     string
	Scope        DocumentScope
}

// DocumentScope describes which documents of a tenant a principal may see.
// The zero value is a tenant member without clearances or ownership roles.
type DocumentScope struct {
	All        bool // superuser, nothing is filtered
	Financial  bool // W9 and TAX visible
	Compliance bool // INSURANCE visible

	// CARRIER documents must link to one of CarrierLinks
	CarrierOwnership bool
	CarrierLinks     []string

	// COMPANY and CUSTOMER documents must link to one of CustomerLinks
	CustomerOwnership bool
	CustomerLinks     []string
}

// PageQuery is a 1-origin page request
type PageQuery struct {
	Page  int
	Limit int
}

func (q PageQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}
