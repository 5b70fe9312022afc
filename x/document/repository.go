//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package document

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/util"
)

// Repository is the interface for document repository.
// Every read and write is scoped to one tenant.
type Repository interface {
	Get(ctx context.Context, tenantID, id string) (core.Document, error)
	GetContent(ctx context.Context, tenantID, id string) ([]byte, error)
	List(ctx context.Context, tenantID string, filter core.DocumentFilter, page core.PageQuery) ([]core.Document, int64, error)
	Create(ctx context.Context, doc core.Document) (core.Document, error)
	Update(ctx context.Context, doc core.Document) (core.Document, error)
	Delete(ctx context.Context, tenantID, id string) error
	Count(ctx context.Context, tenantID string) (int64, error)
}

type repository struct {
	db     *gorm.DB
	rdb    *redis.Client
	mc     *memcache.Client
	config util.Config
}

// NewRepository creates a new document repository
func NewRepository(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config util.Config) Repository {
	config.SetDefaults()
	return &repository{db, rdb, mc, config}
}

func cacheKey(tenantID, id string) string {
	return fmt.Sprintf("document:%s:%s", tenantID, id)
}

func countKey(tenantID string) string {
	return "document_count:" + tenantID
}

// Get returns document metadata; the file content is never loaded here
func (r *repository) Get(ctx context.Context, tenantID, id string) (core.Document, error) {
	ctx, span := tracer.Start(ctx, "Document.Repository.Get")
	defer span.End()

	// check cache
	key := cacheKey(tenantID, id)
	val, err := r.rdb.Get(ctx, key).Result()
	if err == nil {
		var doc core.Document
		err = json.Unmarshal([]byte(val), &doc)
		if err == nil {
			return doc, nil
		}
		span.RecordError(err)
	}

	var doc core.Document
	err = r.db.WithContext(ctx).
		Omit("content").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Document{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Document{}, errors.Wrap(err, "failed to get document")
	}

	r.cache(ctx, doc)
	return doc, nil
}

func (r *repository) GetContent(ctx context.Context, tenantID, id string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Document.Repository.GetContent")
	defer span.End()

	var doc core.Document
	err := r.db.WithContext(ctx).
		Select("content").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to get document content")
	}

	return doc.Content, nil
}

func (r *repository) List(ctx context.Context, tenantID string, filter core.DocumentFilter, page core.PageQuery) ([]core.Document, int64, error) {
	ctx, span := tracer.Start(ctx, "Document.Repository.List")
	defer span.End()

	query := r.db.WithContext(ctx).Model(&core.Document{}).Where("tenant_id = ?", tenantID)
	if filter.DocumentType != "" {
		query = query.Where("document_type = ?", filter.DocumentType)
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		query = query.Where("entity_id = ?", filter.EntityID)
	}
	query = scoped(query, filter.Scope).Session(&gorm.Session{})

	var total int64
	err := query.Count(&total).Error
	if err != nil {
		span.RecordError(err)
		return nil, 0, errors.Wrap(err, "failed to count documents")
	}

	var docs []core.Document
	err = query.
		Omit("content").
		Order("c_date DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&docs).Error
	if err != nil {
		span.RecordError(err)
		return nil, 0, errors.Wrap(err, "failed to list documents")
	}

	return docs, total, nil
}

var restrictedTypes = []core.DocumentType{
	core.DocumentTypeW9,
	core.DocumentTypeTax,
	core.DocumentTypeInsurance,
}

// scoped narrows query to the documents scope allows.
// Restricted types are decided by clearance alone, so the ownership
// predicates only bind the remaining types.
func scoped(query *gorm.DB, scope core.DocumentScope) *gorm.DB {
	if scope.All {
		return query
	}

	hidden := []core.DocumentType{}
	if !scope.Financial {
		hidden = append(hidden, core.DocumentTypeW9, core.DocumentTypeTax)
	}
	if !scope.Compliance {
		hidden = append(hidden, core.DocumentTypeInsurance)
	}
	if len(hidden) > 0 {
		query = query.Where("document_type NOT IN ?", hidden)
	}

	if scope.CarrierOwnership {
		if len(scope.CarrierLinks) == 0 {
			query = query.Where("(document_type IN ? OR entity_type <> ?)", restrictedTypes, core.EntityTypeCarrier)
		} else {
			query = query.Where(
				"(document_type IN ? OR entity_type <> ? OR entity_id IN ? OR carrier_id IN ?)",
				restrictedTypes, core.EntityTypeCarrier, scope.CarrierLinks, scope.CarrierLinks,
			)
		}
	}

	if scope.CustomerOwnership {
		customerTypes := []core.EntityType{core.EntityTypeCompany, core.EntityTypeCustomer}
		if len(scope.CustomerLinks) == 0 {
			query = query.Where("(document_type IN ? OR entity_type NOT IN ?)", restrictedTypes, customerTypes)
		} else {
			query = query.Where(
				"(document_type IN ? OR entity_type NOT IN ? OR entity_id IN ? OR company_id IN ?)",
				restrictedTypes, customerTypes, scope.CustomerLinks, scope.CustomerLinks,
			)
		}
	}

	return query
}

func (r *repository) Create(ctx context.Context, doc core.Document) (core.Document, error) {
	ctx, span := tracer.Start(ctx, "Document.Repository.Create")
	defer span.End()

	if doc.ID == "" {
		return doc, errors.New("document id is required")
	}

	err := r.db.WithContext(ctx).Create(&doc).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return doc, core.NewErrorAlreadyExists()
		}
		return doc, errors.Wrap(err, "failed to create document")
	}

	r.refreshCount(ctx, doc.TenantID)
	return doc, nil
}

func (r *repository) Update(ctx context.Context, doc core.Document) (core.Document, error) {
	ctx, span := tracer.Start(ctx, "Document.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).
		Model(&core.Document{}).
		Where("tenant_id = ? AND id = ?", doc.TenantID, doc.ID).
		Updates(map[string]any{
			"name":          doc.Name,
			"document_type": doc.DocumentType,
			"entity_type":   doc.EntityType,
			"entity_id":     doc.EntityID,
			"carrier_id":    doc.CarrierID,
			"company_id":    doc.CompanyID,
			"tags":          doc.Tags,
		})
	if result.Error != nil {
		span.RecordError(result.Error)
		return doc, errors.Wrap(result.Error, "failed to update document")
	}
	if result.RowsAffected == 0 {
		return doc, core.NewErrorNotFound()
	}

	r.evict(ctx, doc.TenantID, doc.ID)
	return r.Get(ctx, doc.TenantID, doc.ID)
}

func (r *repository) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := tracer.Start(ctx, "Document.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&core.Document{})
	if result.Error != nil {
		span.RecordError(result.Error)
		return errors.Wrap(result.Error, "failed to delete document")
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	r.evict(ctx, tenantID, id)
	r.refreshCount(ctx, tenantID)
	return nil
}

// Count returns the number of documents in a tenant, served from memcache when possible
func (r *repository) Count(ctx context.Context, tenantID string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Document.Repository.Count")
	defer span.End()

	item, err := r.mc.Get(countKey(tenantID))
	if err == nil {
		count, err := strconv.ParseInt(string(item.Value), 10, 64)
		if err == nil {
			return count, nil
		}
		span.RecordError(err)
	}

	return r.refreshCount(ctx, tenantID), nil
}

func (r *repository) refreshCount(ctx context.Context, tenantID string) int64 {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Document{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to count documents",
			slog.String("error", err.Error()),
			slog.String("tenant", tenantID),
		)
		return 0
	}

	r.mc.Set(&memcache.Item{Key: countKey(tenantID), Value: []byte(strconv.FormatInt(count, 10))})
	return count
}

func (r *repository) cache(ctx context.Context, doc core.Document) {
	jsonStr, err := json.Marshal(doc)
	if err != nil {
		return
	}
	ttl := time.Duration(r.config.TMS.DocumentCacheTTL) * time.Second
	err = r.rdb.Set(ctx, cacheKey(doc.TenantID, doc.ID), jsonStr, ttl).Err()
	if err != nil {
		slog.WarnContext(ctx, "failed to cache document", slog.String("error", err.Error()))
	}
}

func (r *repository) evict(ctx context.Context, tenantID, id string) {
	err := r.rdb.Del(ctx, cacheKey(tenantID, id)).Err()
	if err != nil {
		slog.WarnContext(ctx, "failed to evict document", slog.String("error", err.Error()))
	}
}
