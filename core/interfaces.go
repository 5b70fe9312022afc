//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"

	"github.com/labstack/echo/v4"
)

// DocumentLookup fetches a document inside one tenant.
// Implementations must filter by tenantID.
type DocumentLookup interface {
	Lookup(ctx context.Context, tenantID, id string) (*Document, error)
}

type AccessService interface {
	Decide(ctx context.Context, principal *Principal, desc ResourceDescriptor, lookup DocumentLookup) (AccessDecision, error)
	Check(principal *Principal, doc *Document) AccessDecision
	Scope(principal *Principal) DocumentScope
	Guard(lookup DocumentLookup, param string) echo.MiddlewareFunc
}

type DocumentService interface {
	Lookup(ctx context.Context, tenantID, id string) (*Document, error)
	Get(ctx context.Context, tenantID, id string) (Document, error)
	GetContent(ctx context.Context, tenantID, id string) ([]byte, error)
	List(ctx context.Context, principal *Principal, tenantID string, filter DocumentFilter, page PageQuery) (PageResult[Document], error)
	ListByEntity(ctx context.Context, principal *Principal, tenantID string, entityType EntityType, entityID string, page PageQuery) ([]Document, int64, error)
	Create(ctx context.Context, principal *Principal, doc Document) (Document, error)
	Update(ctx context.Context, principal *Principal, doc Document) (Document, error)
	Delete(ctx context.Context, tenantID, id string) error
	Count(ctx context.Context, tenantID string) (int64, error)
}
