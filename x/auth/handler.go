package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/x/response"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Me(c echo.Context) (any, error)
}

type handler struct{}

// NewHandler creates a new handler
func NewHandler() Handler {
	return &handler{}
}

type meResponse struct {
	Principal      *core.Principal `json:"principal"`
	EffectiveRoles []string        `json:"effectiveRoles"`
}

// Me returns the principal the gateway propagated for this request
func (h handler) Me(c echo.Context) (any, error) {
	_, span := tracer.Start(c.Request().Context(), "Auth.Handler.Me")
	defer span.End()

	principal, _ := c.Get(core.RequesterPrincipalCtxKey).(*core.Principal)
	if principal == nil {
		return nil, core.NewErrorNotFound()
	}

	return response.Success(meResponse{
		Principal:      principal,
		EffectiveRoles: principal.EffectiveRoles().List(),
	}), nil
}
