package access

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core/mock"
	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/util"
)

func newGuardContext(principal *core.Principal, id string) (echo.Context, *http.Request) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/documents/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/documents/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	if principal != nil {
		c.Set(core.RequesterPrincipalCtxKey, principal)
	}
	return c, req
}

func TestGuardAllows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doc := &core.Document{ID: Document1, TenantID: Tenant1, DocumentType: core.DocumentTypeInsurance}
	lookup := expectLookup(ctrl, doc)

	s := NewService(util.Config{})
	c, _ := newGuardContext(&core.Principal{ID: "u1", Role: core.RoleOperations, TenantID: Tenant1}, Document1)

	called := false
	h := s.Guard(lookup, "id")(func(c echo.Context) error {
		called = true
		return nil
	})

	err := h(c)
	if assert.NoError(t, err) {
		assert.True(t, called)
		decision, ok := c.Get(core.AccessDecisionCtxKey).(core.AccessDecision)
		if assert.True(t, ok) {
			assert.Equal(t, core.ReasonClearedRole, decision.Reason)
		}
	}
}

func TestGuardDeniesBeforeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doc := &core.Document{ID: Document1, TenantID: Tenant1, DocumentType: core.DocumentTypeW9}
	lookup := expectLookup(ctrl, doc)

	s := NewService(util.Config{})
	c, _ := newGuardContext(&core.Principal{ID: "u1", Role: core.RoleDispatcher, TenantID: Tenant1}, Document1)

	h := s.Guard(lookup, "id")(func(c echo.Context) error {
		t.Fatal("handler must not run on deny")
		return nil
	})

	err := h(c)
	var denied core.ErrorAccessDenied
	if assert.ErrorAs(t, err, &denied) {
		assert.Equal(t, "RestrictedDocumentType", denied.Reason)
	}
}

func TestGuardWithoutPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookup := mock_core.NewMockDocumentLookup(ctrl)
	lookup.EXPECT().Lookup(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s := NewService(util.Config{})
	c, _ := newGuardContext(nil, Document1)

	err := s.Guard(lookup, "id")(func(c echo.Context) error { return nil })(c)
	var denied core.ErrorAccessDenied
	if assert.ErrorAs(t, err, &denied) {
		assert.Equal(t, "InvalidRequest", denied.Reason)
	}
}

func TestGuardReadsTenantHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doc := &core.Document{ID: Document1, TenantID: Tenant1, DocumentType: core.DocumentTypeBOL}
	lookup := expectLookup(ctrl, doc)

	s := NewService(util.Config{TMS: util.TMS{TenantHeader: "x-org-id"}})
	c, req := newGuardContext(&core.Principal{ID: "u1", Role: core.RoleDispatcher}, Document1)
	req.Header.Set("x-org-id", Tenant1)

	err := s.Guard(lookup, "id")(func(c echo.Context) error { return nil })(c)
	assert.NoError(t, err)
}

func TestGuardPropagatesLookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("timeout")
	lookup := mock_core.NewMockDocumentLookup(ctrl)
	lookup.EXPECT().Lookup(gomock.Any(), Tenant1, Document1).Return(nil, boom)

	s := NewService(util.Config{})
	c, _ := newGuardContext(&core.Principal{ID: "u1", TenantID: Tenant1}, Document1)
	c.Set(core.RequestTenantCtxKey, "ignored-because-principal-has-tenant")

	err := s.Guard(lookup, "id")(func(c echo.Context) error { return nil })(c)
	assert.ErrorIs(t, err, boom)
}
