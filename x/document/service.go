package document

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rs/xid"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/util"
)

const defaultPageSize = 20

var documentTypes = map[core.DocumentType]bool{
	core.DocumentTypeBOL:              true,
	core.DocumentTypePOD:              true,
	core.DocumentTypeRateConfirmation: true,
	core.DocumentTypeInvoice:          true,
	core.DocumentTypeW9:               true,
	core.DocumentTypeTax:              true,
	core.DocumentTypeInsurance:        true,
	core.DocumentTypeOther:            true,
}

var entityTypes = map[core.EntityType]bool{
	core.EntityTypeNone:     true,
	core.EntityTypeCarrier:  true,
	core.EntityTypeCustomer: true,
	core.EntityTypeCompany:  true,
	core.EntityTypeLoad:     true,
}

type service struct {
	repo   Repository
	access core.AccessService
	config util.Config
}

// NewService creates a new document service
func NewService(repo Repository, access core.AccessService, config util.Config) core.DocumentService {
	config.SetDefaults()
	return &service{repo, access, config}
}

// Lookup returns nil without error when the document does not exist in the tenant
func (s *service) Lookup(ctx context.Context, tenantID, id string) (*core.Document, error) {
	ctx, span := tracer.Start(ctx, "Document.Service.Lookup")
	defer span.End()

	doc, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		if errors.As(err, new(core.ErrorNotFound)) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, err
	}
	return &doc, nil
}

func (s *service) Get(ctx context.Context, tenantID, id string) (core.Document, error) {
	ctx, span := tracer.Start(ctx, "Document.Service.Get")
	defer span.End()

	return s.repo.Get(ctx, tenantID, id)
}

func (s *service) GetContent(ctx context.Context, tenantID, id string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Document.Service.GetContent")
	defer span.End()

	return s.repo.GetContent(ctx, tenantID, id)
}

// List returns the page of documents principal may see
func (s *service) List(ctx context.Context, principal *core.Principal, tenantID string, filter core.DocumentFilter, page core.PageQuery) (core.PageResult[core.Document], error) {
	ctx, span := tracer.Start(ctx, "Document.Service.List")
	defer span.End()

	page = s.clamp(page)
	filter.Scope = s.access.Scope(principal)
	docs, total, err := s.repo.List(ctx, tenantID, filter, page)
	if err != nil {
		span.RecordError(err)
		return core.PageResult[core.Document]{}, err
	}
	docs, total = s.visible(ctx, principal, docs, total)

	return core.PageResult[core.Document]{
		Data:  docs,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

func (s *service) ListByEntity(ctx context.Context, principal *core.Principal, tenantID string, entityType core.EntityType, entityID string, page core.PageQuery) ([]core.Document, int64, error) {
	ctx, span := tracer.Start(ctx, "Document.Service.ListByEntity")
	defer span.End()

	if !entityTypes[entityType] || entityType == core.EntityTypeNone {
		return nil, 0, core.NewErrorBadRequest("unknown entity type")
	}

	filter := core.DocumentFilter{
		EntityType: entityType,
		EntityID:   entityID,
		Scope:      s.access.Scope(principal),
	}
	docs, total, err := s.repo.List(ctx, tenantID, filter, s.clamp(page))
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	docs, total = s.visible(ctx, principal, docs, total)
	return docs, total, nil
}

// visible drops the rows Check denies and lowers total to match
func (s *service) visible(ctx context.Context, principal *core.Principal, docs []core.Document, total int64) ([]core.Document, int64) {
	result := make([]core.Document, 0, len(docs))
	for i := range docs {
		decision := s.access.Check(principal, &docs[i])
		if !decision.Allowed {
			slog.WarnContext(
				ctx, "listing returned a document outside the principal scope",
				slog.String("document", docs[i].ID),
				slog.String("reason", decision.Reason.String()),
			)
			total--
			continue
		}
		result = append(result, docs[i])
	}
	if total < int64(len(result)) {
		total = int64(len(result))
	}
	return result, total
}

// authorize checks principal against doc as it will be stored
func (s *service) authorize(ctx context.Context, principal *core.Principal, doc *core.Document) error {
	decision := s.access.Check(principal, doc)
	if decision.Allowed {
		return nil
	}
	slog.InfoContext(
		ctx, "document write denied",
		slog.String("reason", decision.Reason.String()),
		slog.String("document", doc.ID),
	)
	return decision.Err()
}

// Create validates doc, assigns an id and stores it
func (s *service) Create(ctx context.Context, principal *core.Principal, doc core.Document) (core.Document, error) {
	ctx, span := tracer.Start(ctx, "Document.Service.Create")
	defer span.End()

	if doc.TenantID == "" {
		return core.Document{}, core.NewErrorBadRequest("tenant context required")
	}
	if strings.TrimSpace(doc.Name) == "" {
		return core.Document{}, core.NewErrorBadRequest("name is required")
	}
	if err := validateTypes(doc); err != nil {
		return core.Document{}, err
	}
	if err := s.authorize(ctx, principal, &doc); err != nil {
		return core.Document{}, err
	}

	doc.ID = xid.New().String()
	doc.Size = int64(len(doc.Content))
	if doc.MimeType == "" && len(doc.Content) > 0 {
		doc.MimeType = http.DetectContentType(doc.Content)
	}
	if doc.FileName == "" {
		doc.FileName = doc.Name
	}

	created, err := s.repo.Create(ctx, doc)
	if err != nil {
		span.RecordError(err)
		return core.Document{}, err
	}
	return created, nil
}

// Update replaces the metadata of an existing document; content is immutable
func (s *service) Update(ctx context.Context, principal *core.Principal, doc core.Document) (core.Document, error) {
	ctx, span := tracer.Start(ctx, "Document.Service.Update")
	defer span.End()

	existing, err := s.repo.Get(ctx, doc.TenantID, doc.ID)
	if err != nil {
		return core.Document{}, err
	}

	if doc.Name != "" {
		existing.Name = doc.Name
	}
	if doc.DocumentType != "" {
		existing.DocumentType = doc.DocumentType
	}
	if doc.EntityType != "" {
		existing.EntityType = doc.EntityType
	}
	if doc.EntityID != "" {
		existing.EntityID = doc.EntityID
	}
	if doc.CarrierID != "" {
		existing.CarrierID = doc.CarrierID
	}
	if doc.CompanyID != "" {
		existing.CompanyID = doc.CompanyID
	}
	if doc.Tags != nil {
		existing.Tags = doc.Tags
	}

	if err := validateTypes(existing); err != nil {
		return core.Document{}, err
	}
	if err := s.authorize(ctx, principal, &existing); err != nil {
		return core.Document{}, err
	}

	return s.repo.Update(ctx, existing)
}

func (s *service) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := tracer.Start(ctx, "Document.Service.Delete")
	defer span.End()

	return s.repo.Delete(ctx, tenantID, id)
}

func (s *service) Count(ctx context.Context, tenantID string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Document.Service.Count")
	defer span.End()

	return s.repo.Count(ctx, tenantID)
}

func (s *service) clamp(page core.PageQuery) core.PageQuery {
	return clampPage(page, s.config.TMS.MaxPageSize)
}

func clampPage(page core.PageQuery, maxSize int) core.PageQuery {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = defaultPageSize
	}
	if page.Limit > maxSize {
		page.Limit = maxSize
	}
	return page
}

func validateTypes(doc core.Document) error {
	if !documentTypes[doc.DocumentType] {
		return core.NewErrorBadRequest("unknown document type")
	}
	if !entityTypes[doc.EntityType] {
		return core.NewErrorBadRequest("unknown entity type")
	}
	if doc.EntityType != core.EntityTypeNone && doc.EntityID == "" {
		return core.NewErrorBadRequest("entityId is required with entityType")
	}
	return nil
}
