// Package auth turns gateway propagated identity into a request principal
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
)

var tracer = otel.Tracer("auth")

type Principal int

const (
	ISADMIN = iota
	ISKNOWN
)

// ReceiveGatewayAuthPropagation reads the requester headers set by the gateway
// and stores a *core.Principal under core.RequesterPrincipalCtxKey.
// No principal is stored when the gateway sent no identity.
func ReceiveGatewayAuthPropagation(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "auth.ReceiveGatewayAuthPropagation")
		defer span.End()

		header := c.Request().Header

		reqIdHeader := header.Get(core.RequesterIdHeader)
		reqRolesHeader := header.Get(core.RequesterRolesHeader)
		reqRoleHeader := header.Get(core.RequesterRoleHeader)

		if reqIdHeader != "" || reqRolesHeader != "" || reqRoleHeader != "" {
			principal := &core.Principal{
				ID:         reqIdHeader,
				Roles:      core.ParseRoles(reqRolesHeader).List(),
				Role:       reqRoleHeader,
				TenantID:   header.Get(core.RequesterTenantHeader),
				CarrierID:  header.Get(core.RequesterCarrierHeader),
				CompanyID:  header.Get(core.RequesterCompanyHeader),
				CustomerID: header.Get(core.RequesterCustomerHeader),
			}
			c.Set(core.RequesterPrincipalCtxKey, principal)
			span.SetAttributes(
				attribute.String("RequesterId", principal.ID),
				attribute.String("RequesterRoles", principal.EffectiveRoles().ToString()),
				attribute.String("RequesterTenant", principal.TenantID),
			)
		}

		if reqTenantHeader := header.Get(core.RequestTenantHeader); reqTenantHeader != "" {
			c.Set(core.RequestTenantCtxKey, reqTenantHeader)
			span.SetAttributes(attribute.String("RequestTenant", reqTenantHeader))
		}

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// Restrict rejects requests whose principal does not reach the given level
func Restrict(principal Principal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "auth.Restrict")
			defer span.End()

			requester, _ := c.Get(core.RequesterPrincipalCtxKey).(*core.Principal)

			switch principal {
			case ISADMIN:
				if !requester.EffectiveRoles().HasAny(core.RoleSuperAdmin, core.RoleAdmin) {
					return core.NewErrorPermissionDenied()
				}

			case ISKNOWN:
				if requester == nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}
			}

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequireRole lets through principals holding any of roles. Superusers always pass.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requester, _ := c.Get(core.RequesterPrincipalCtxKey).(*core.Principal)
			if requester == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			effective := requester.EffectiveRoles()
			if !effective.HasAny(core.RoleSuperAdmin, core.RoleAdmin) && !effective.HasAny(roles...) {
				return core.NewErrorPermissionDenied()
			}
			return next(c)
		}
	}
}
