// Package access decides whether a principal may act on a single document
package access

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/util"
)

var tracer = otel.Tracer("access")

type service struct {
	config util.Config
}

// NewService creates a new access decision service
func NewService(config util.Config) core.AccessService {
	config.SetDefaults()
	return &service{config}
}

// Decide evaluates principal against the document named by desc.
// lookup is called at most once, and only after a tenant has been resolved.
// Lookup errors are returned as is and never turned into a denial.
func (s *service) Decide(ctx context.Context, principal *core.Principal, desc core.ResourceDescriptor, lookup core.DocumentLookup) (core.AccessDecision, error) {
	ctx, span := tracer.Start(ctx, "Access.Service.Decide")
	defer span.End()

	if principal == nil || desc.ResourceID == "" {
		return observe(span, core.Deny(core.ReasonInvalidRequest)), nil
	}

	roles := principal.EffectiveRoles()
	span.SetAttributes(
		attribute.String("Principal", principal.ID),
		attribute.String("Roles", roles.ToString()),
		attribute.String("Resource", desc.ResourceID),
	)

	if roles.HasAny(superuserRoles...) {
		return observe(span, core.Allow(core.ReasonSuperuser)), nil
	}

	tenant := ResolveTenant(principal, desc)
	if tenant == "" {
		return observe(span, core.Deny(core.ReasonMissingTenantContext)), nil
	}
	span.SetAttributes(attribute.String("Tenant", tenant))

	doc, err := lookup.Lookup(ctx, tenant, desc.ResourceID)
	if err != nil {
		span.RecordError(err)
		return core.AccessDecision{}, err
	}
	if doc == nil {
		err = core.NewErrorNotFound()
		span.RecordError(err)
		return core.AccessDecision{}, err
	}

	decision, matched := evaluate(roles, principal, doc)
	span.SetAttributes(attribute.String("Rule", matched))
	return observe(span, decision), nil
}

// Check applies the role and ownership rules to a document the caller already holds.
// It performs no lookup and no tenant resolution.
func (s *service) Check(principal *core.Principal, doc *core.Document) core.AccessDecision {
	if principal == nil || doc == nil {
		return core.Deny(core.ReasonInvalidRequest)
	}

	roles := principal.EffectiveRoles()
	if roles.HasAny(superuserRoles...) {
		return core.Allow(core.ReasonSuperuser)
	}

	decision, _ := evaluate(roles, principal, doc)
	return decision
}

// Scope describes the documents Check would allow for principal, for use as a query predicate
func (s *service) Scope(principal *core.Principal) core.DocumentScope {
	roles := principal.EffectiveRoles()
	if roles.HasAny(superuserRoles...) {
		return core.DocumentScope{All: true}
	}

	scope := core.DocumentScope{
		Financial:         roles.HasAny(financialRoles...),
		Compliance:        roles.HasAny(complianceRoles...),
		CarrierOwnership:  roles.Has(core.RoleCarrier),
		CustomerOwnership: roles.Has(core.RoleCustomer),
	}
	if principal != nil {
		scope.CarrierLinks = nonEmpty(principal.CarrierID)
		scope.CustomerLinks = nonEmpty(principal.CompanyID, principal.CustomerID)
	}
	return scope
}
