package access

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
)

var (
	superuserRoles  = []string{core.RoleSuperAdmin, core.RoleAdmin}
	financialRoles  = []string{core.RoleAccounting}
	complianceRoles = []string{core.RoleAccounting, core.RoleOperations, core.RoleCompliance, core.RoleCarrierManager}
)

// rule is one entry of the restricted document table.
// The table is evaluated top to bottom and the first rule that applies decides.
type rule struct {
	name    string
	applies func(roles core.RoleSet, doc *core.Document) bool
	check   func(roles core.RoleSet, principal *core.Principal, doc *core.Document) core.AccessDecision
}

// TAX and W9 are matched before the ownership rules, so a carrier owned
// tax form is only ever cleared by ACCOUNTING.
var rules = []rule{
	{
		name: "financial",
		applies: func(_ core.RoleSet, doc *core.Document) bool {
			return doc.DocumentType == core.DocumentTypeW9 || doc.DocumentType == core.DocumentTypeTax
		},
		check: func(roles core.RoleSet, _ *core.Principal, _ *core.Document) core.AccessDecision {
			return requireRole(roles, financialRoles)
		},
	},
	{
		name: "compliance",
		applies: func(_ core.RoleSet, doc *core.Document) bool {
			return doc.DocumentType == core.DocumentTypeInsurance
		},
		check: func(roles core.RoleSet, _ *core.Principal, _ *core.Document) core.AccessDecision {
			return requireRole(roles, complianceRoles)
		},
	},
	{
		name: "carrier-ownership",
		applies: func(roles core.RoleSet, doc *core.Document) bool {
			return doc.EntityType == core.EntityTypeCarrier && roles.Has(core.RoleCarrier)
		},
		check: func(_ core.RoleSet, principal *core.Principal, doc *core.Document) core.AccessDecision {
			return requireOwner(
				[]string{principal.CarrierID},
				[]string{doc.EntityID, doc.CarrierID},
				core.ReasonMissingCarrierContext,
			)
		},
	},
	{
		name: "customer-ownership",
		applies: func(roles core.RoleSet, doc *core.Document) bool {
			return (doc.EntityType == core.EntityTypeCompany || doc.EntityType == core.EntityTypeCustomer) &&
				roles.Has(core.RoleCustomer)
		},
		check: func(_ core.RoleSet, principal *core.Principal, doc *core.Document) core.AccessDecision {
			return requireOwner(
				[]string{principal.CompanyID, principal.CustomerID},
				[]string{doc.EntityID, doc.CompanyID},
				core.ReasonMissingCustomerContext,
			)
		},
	},
}

// evaluate returns the decision and the name of the rule that produced it
func evaluate(roles core.RoleSet, principal *core.Principal, doc *core.Document) (core.AccessDecision, string) {
	for _, r := range rules {
		if r.applies(roles, doc) {
			return r.check(roles, principal, doc), r.name
		}
	}
	return core.Allow(core.ReasonDefaultAllow), "default"
}

func requireRole(roles core.RoleSet, allowed []string) core.AccessDecision {
	if roles.HasAny(allowed...) {
		return core.Allow(core.ReasonClearedRole)
	}
	return core.Deny(core.ReasonRestrictedDocumentType)
}

// requireOwner matches any non-empty principal link against any non-empty document link
func requireOwner(links []string, owners []string, missing core.AccessReason) core.AccessDecision {
	present := false
	for _, link := range links {
		if link == "" {
			continue
		}
		present = true
		for _, owner := range owners {
			if owner != "" && owner == link {
				return core.Allow(core.ReasonOwner)
			}
		}
	}
	if !present {
		return core.Deny(missing)
	}
	return core.Deny(core.ReasonOwnershipMismatch)
}

// ResolveTenant picks the principal tenant, then the request tenant, then the header tenant
func ResolveTenant(principal *core.Principal, desc core.ResourceDescriptor) string {
	if principal.TenantID != "" {
		return principal.TenantID
	}
	if desc.RequestTenant != "" {
		return desc.RequestTenant
	}
	return desc.HeaderTenant
}

func observe(span trace.Span, decision core.AccessDecision) core.AccessDecision {
	result := "deny"
	if decision.Allowed {
		result = "allow"
	}
	span.SetAttributes(
		attribute.String("Decision", result),
		attribute.String("Reason", decision.Reason.String()),
	)
	decisionCounter.WithLabelValues(result, decision.Reason.String()).Inc()
	return decision
}

func nonEmpty(values ...string) []string {
	result := []string{}
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}
