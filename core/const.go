package core

const (
	RequesterPrincipalCtxKey = "tms-requesterPrincipal"
	RequestTenantCtxKey      = "tms-requestTenant"
	AccessDecisionCtxKey     = "tms-accessDecision"
)

const (
	RequesterIdHeader         = "tms-requester-id"
	RequesterRolesHeader      = "tms-requester-roles"
	RequesterRoleHeader       = "tms-requester-role"
	RequesterTenantHeader     = "tms-requester-tenant"
	RequesterCarrierHeader    = "tms-requester-carrier"
	RequesterCompanyHeader    = "tms-requester-company"
	RequesterCustomerHeader   = "tms-requester-customer"
	RequestTenantHeader       = "tms-request-tenant"
	DefaultClientTenantHeader = "x-tenant-id"
)
