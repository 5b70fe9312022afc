// Package document serves tenant scoped TMS documents
package document

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/util"
	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/x/access"
	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/x/response"
)

var tracer = otel.Tracer("document")

// Handler is the interface for handling HTTP requests.
// Handlers return their result and are mounted through response.Wrap.
type Handler interface {
	Get(c echo.Context) (any, error)
	Download(c echo.Context) (any, error)
	List(c echo.Context) (any, error)
	ListByEntity(c echo.Context) (any, error)
	Create(c echo.Context) (any, error)
	Update(c echo.Context) (any, error)
	Delete(c echo.Context) (any, error)
	BatchDelete(c echo.Context) (any, error)
	Count(c echo.Context) (any, error)
}

type handler struct {
	service core.DocumentService
	access  core.AccessService
	config  util.Config
}

// NewHandler creates a new handler
func NewHandler(service core.DocumentService, access core.AccessService, config util.Config) Handler {
	config.SetDefaults()
	return &handler{service, access, config}
}

type createRequest struct {
	Name         string            `json:"name"`
	DocumentType core.DocumentType `json:"documentType"`
	EntityType   core.EntityType   `json:"entityType"`
	EntityID     string            `json:"entityId"`
	CarrierID    string            `json:"carrierId"`
	CompanyID    string            `json:"companyId"`
	FileName     string            `json:"fileName"`
	MimeType     string            `json:"mimeType"`
	Content      []byte            `json:"content"` // base64
	Tags         []string          `json:"tags"`
}

type updateRequest struct {
	Name         string            `json:"name"`
	DocumentType core.DocumentType `json:"documentType"`
	EntityType   core.EntityType   `json:"entityType"`
	EntityID     string            `json:"entityId"`
	CarrierID    string            `json:"carrierId"`
	CompanyID    string            `json:"companyId"`
	Tags         []string          `json:"tags"`
}

type countResponse struct {
	Tenant string `json:"tenant"`
	Total  int64  `json:"total"`
}

type batchRequest struct {
	IDs []string `json:"ids"`
}

// scope returns the principal and the tenant the request is bound to
func (h handler) scope(c echo.Context, id string) (*core.Principal, core.ResourceDescriptor, string) {
	principal, _ := c.Get(core.RequesterPrincipalCtxKey).(*core.Principal)
	requestTenant, _ := c.Get(core.RequestTenantCtxKey).(string)
	desc := core.ResourceDescriptor{
		ResourceID:    id,
		RequestTenant: requestTenant,
		HeaderTenant:  c.Request().Header.Get(h.config.TMS.TenantHeader),
	}
	if principal == nil {
		return nil, desc, ""
	}
	return principal, desc, access.ResolveTenant(principal, desc)
}

func (h handler) tenant(c echo.Context) (*core.Principal, string, error) {
	principal, _, tenant := h.scope(c, "")
	if tenant == "" {
		return nil, "", core.NewErrorBadRequest("tenant context required")
	}
	return principal, tenant, nil
}

func pageQuery(c echo.Context) (core.PageQuery, error) {
	var page core.PageQuery
	var err error
	if raw := c.QueryParam("page"); raw != "" {
		page.Page, err = strconv.Atoi(raw)
		if err != nil {
			return page, core.NewErrorBadRequest("page must be a number")
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		page.Limit, err = strconv.Atoi(raw)
		if err != nil {
			return page, core.NewErrorBadRequest("limit must be a number")
		}
	}
	return page, nil
}

// Get returns a document's metadata
func (h handler) Get(c echo.Context) (any, error) {
	ctx, span := tracer.Start(c.Request().Context(), "Document.Handler.Get")
	defer span.End()

	_, tenant, err := h.tenant(c)
	if err != nil {
		return nil, err
	}

	return h.service.Get(ctx, tenant, c.Param("id"))
}

// Download streams the stored file
func (h handler) Download(c echo.Context) (any, error) {
	ctx, span := tracer.Start(c.Request().Context(), "Document.Handler.Download")
	defer span.End()

	_, tenant, err := h.tenant(c)
	if err != nil {
		return nil, err
	}

	doc, err := h.service.Get(ctx, tenant, c.Param("id"))
	if err != nil {
		return nil, err
	}

	content, err := h.service.GetContent(ctx, tenant, doc.ID)
	if err != nil {
		return nil, err
	}

	return &response.Stream{
		Reader:      bytes.NewReader(content),
		ContentType: doc.MimeType,
		FileName:    doc.FileName,
		Size:        int64(len(content)),
	}, nil
}

// List returns a page of documents in the requester's tenant
func (h handler) List(c echo.Context) (any, error) {
	ctx, span := tracer.Start(c.Request().Context(), "Document.Handler.List")
	defer span.End()

	principal, tenant, err := h.tenant(c)
	if err != nil {
		return nil, err
	}
	page, err := pageQuery(c)
	if err != nil {
		return nil, err
	}

	filter := core.DocumentFilter{
		DocumentType: core.DocumentType(c.QueryParam("type")),
		EntityType:   core.EntityType(c.QueryParam("entityType")),
		EntityID:     c.QueryParam("entityId"),
	}

	return h.service.List(ctx, principal, tenant, filter, page)
}

// ListByEntity returns the documents attached to one carrier, customer or load
func (h handler) ListByEntity(c echo.Context) (any, error) {
	ctx, span := tracer.Start(c.Request().Context(), "Document.Handler.ListByEntity")
	defer span.End()

	principal, tenant, err := h.tenant(c)
	if err != nil {
		return nil, err
	}
	page, err := pageQuery(c)
	if err != nil {
		return nil, err
	}

	docs, total, err := h.service.ListByEntity(ctx, principal, tenant, core.EntityType(c.Param("type")), c.Param("id"), page)
	if err != nil {
		return nil, err
	}

	page = clampPage(page, h.config.TMS.MaxPageSize)
	return response.PaginatedFrom(docs, total, page.Page, page.Limit), nil
}

func (h handler) Create(c echo.Context) (any, error) {
	ctx, span := tracer.Start(c.Request().Context(), "Document.Handler.Create")
	defer span.End()

	principal, _, tenant := h.scope(c, "")
	if tenant == "" {
		return nil, core.NewErrorBadRequest("tenant context required")
	}

	var request createRequest
	err := c.Bind(&request)
	if err != nil {
		return nil, core.NewErrorBadRequest("invalid request body")
	}

	created, err := h.service.Create(ctx, principal, core.Document{
		TenantID:     tenant,
		Name:         request.Name,
		DocumentType: request.DocumentType,
		EntityType:   request.EntityType,
		EntityID:     request.EntityID,
		CarrierID:    request.CarrierID,
		CompanyID:    request.CompanyID,
		FileName:     request.FileName,
		MimeType:     request.MimeType,
		Content:      request.Content,
		Tags:         request.Tags,
		CreatedBy:    principal.ID,
	})
	if err != nil {
		return nil, err
	}

	return response.Created(created), nil
}

func (h handler) Update(c echo.Context) (any, error) {
	ctx, span := tracer.Start(c.Request().Context(), "Document.Handler.Update")
	defer span.End()

	principal, tenant, err := h.tenant(c)
	if err != nil {
		return nil, err
	}

	var request updateRequest
	err = c.Bind(&request)
	if err != nil {
		return nil, core.NewErrorBadRequest("invalid request body")
	}

	updated, err := h.service.Update(ctx, principal, core.Document{
		ID:           c.Param("id"),
		TenantID:     tenant,
		Name:         request.Name,
		DocumentType: request.DocumentType,
		EntityType:   request.EntityType,
		EntityID:     request.EntityID,
		CarrierID:    request.CarrierID,
		CompanyID:    request.CompanyID,
		Tags:         request.Tags,
	})
	if err != nil {
		return nil, err
	}

	return response.Updated(updated), nil
}

func (h handler) Delete(c echo.Context) (any, error) {
	ctx, span := tracer.Start(c.Request().Context(), "Document.Handler.Delete")
	defer span.End()

	_, tenant, err := h.tenant(c)
	if err != nil {
		return nil, err
	}

	err = h.service.Delete(ctx, tenant, c.Param("id"))
	if err != nil {
		return nil, err
	}

	return response.Deleted(), nil
}

// Count returns the number of documents stored in the tenant
func (h handler) Count(c echo.Context) (any, error) {
	ctx, span := tracer.Start(c.Request().Context(), "Document.Handler.Count")
	defer span.End()

	_, tenant, err := h.tenant(c)
	if err != nil {
		return nil, err
	}

	count, err := h.service.Count(ctx, tenant)
	if err != nil {
		return nil, err
	}

	return response.Success(countResponse{Tenant: tenant, Total: count}), nil
}

// failure reports err with its client facing message; unexpected errors are logged and masked
func failure(ctx context.Context, id string, err error) core.BatchFailure {
	status, body := response.Classify(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(
			ctx, "batch delete failed",
			slog.String("document", id),
			slog.String("error", err.Error()),
		)
	}
	return core.BatchFailure{ID: id, Error: body.Error.Message}
}

// BatchDelete deletes each id the requester may access and reports the rest as failures
func (h handler) BatchDelete(c echo.Context) (any, error) {
	ctx, span := tracer.Start(c.Request().Context(), "Document.Handler.BatchDelete")
	defer span.End()

	var request batchRequest
	err := c.Bind(&request)
	if err != nil || len(request.IDs) == 0 {
		return nil, core.NewErrorBadRequest("ids are required")
	}

	principal, _, tenant := h.scope(c, "")
	if tenant == "" {
		return nil, core.NewErrorBadRequest("tenant context required")
	}

	outcome := core.BatchOutcome{}
	for _, id := range request.IDs {
		_, desc, _ := h.scope(c, id)
		decision, err := h.access.Decide(ctx, principal, desc, h.service)
		if err == nil {
			err = decision.Err()
		}
		if err == nil {
			err = h.service.Delete(ctx, tenant, id)
		}
		if err != nil {
			outcome.Failed = append(outcome.Failed, failure(ctx, id, err))
			continue
		}
		outcome.Succeeded = append(outcome.Succeeded, id)
	}

	return response.BatchResult(outcome), nil
}
