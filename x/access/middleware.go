package access

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
)

// Guard runs Decide for the document named by the path parameter param.
// A denial returns core.ErrorAccessDenied before next is invoked.
func (s *service) Guard(lookup core.DocumentLookup, param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "Access.Guard")
			defer span.End()

			principal, _ := c.Get(core.RequesterPrincipalCtxKey).(*core.Principal)
			requestTenant, _ := c.Get(core.RequestTenantCtxKey).(string)

			desc := core.ResourceDescriptor{
				ResourceID:    c.Param(param),
				RequestTenant: requestTenant,
				HeaderTenant:  c.Request().Header.Get(s.config.TMS.TenantHeader),
			}

			decision, err := s.Decide(ctx, principal, desc, lookup)
			if err != nil {
				span.RecordError(err)
				return err
			}

			if !decision.Allowed {
				principalID := ""
				if principal != nil {
					principalID = principal.ID
				}
				span.SetAttributes(attribute.String("DenyReason", decision.Reason.String()))
				slog.InfoContext(
					ctx, "access denied",
					slog.String("reason", decision.Reason.String()),
					slog.String("principal", principalID),
					slog.String("resource", desc.ResourceID),
					slog.String("path", c.Path()),
				)
				return decision.Err()
			}

			c.Set(core.AccessDecisionCtxKey, decision)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
