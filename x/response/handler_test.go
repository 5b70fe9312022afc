package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
)

func newContext(method string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	err := json.Unmarshal(rec.Body.Bytes(), &body)
	assert.NoError(t, err)
	return body
}

func TestWrapSuccess(t *testing.T) {
	c, rec := newContext(http.MethodGet)

	h := Wrap(func(c echo.Context) (any, error) {
		return map[string]any{"id": "l1"}, nil
	})

	err := h(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, map[string]any{"id": "l1"}, body["data"])
		assert.Equal(t, fixedTimestamp, body["timestamp"])
		_, hasMessage := body["message"]
		assert.False(t, hasMessage)
	}
}

func TestWrapPaginatedWire(t *testing.T) {
	c, rec := newContext(http.MethodGet)

	h := Wrap(func(c echo.Context) (any, error) {
		return core.PageResult[string]{Data: []string{"a", "b"}, Total: 2, Page: 1, Limit: 10}, nil
	})

	err := h(c)
	if assert.NoError(t, err) {
		body := decode(t, rec)
		assert.Equal(t, []any{"a", "b"}, body["data"])
		assert.Equal(t, map[string]any{
			"page":       float64(1),
			"limit":      float64(10),
			"total":      float64(2),
			"totalPages": float64(1),
			"hasNext":    false,
			"hasPrev":    false,
		}, body["pagination"])
	}
}

func TestWrapStatusDeleted(t *testing.T) {
	c, rec := newContext(http.MethodDelete)

	err := WrapStatus(http.StatusOK, func(c echo.Context) (any, error) {
		return Deleted(), nil
	})(c)
	if assert.NoError(t, err) {
		body := decode(t, rec)
		data, hasData := body["data"]
		assert.True(t, hasData)
		assert.Nil(t, data)
		assert.Equal(t, MessageDeleted, body["message"])
	}
}

func TestWrapStream(t *testing.T) {
	c, rec := newContext(http.MethodGet)

	err := Wrap(func(c echo.Context) (any, error) {
		return &Stream{
			Reader:      strings.NewReader("%PDF-1.7"),
			ContentType: "application/pdf",
			FileName:    "bol 1001.pdf",
		}, nil
	})(c)
	if assert.NoError(t, err) {
		assert.Equal(t, "%PDF-1.7", rec.Body.String())
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, `attachment; filename="bol 1001.pdf"`, rec.Header().Get(echo.HeaderContentDisposition))
	}

	c, rec = newContext(http.MethodGet)
	err = Wrap(func(c echo.Context) (any, error) {
		return []byte{0x01, 0x02}, nil
	})(c)
	if assert.NoError(t, err) {
		assert.Equal(t, []byte{0x01, 0x02}, rec.Body.Bytes())
		assert.Equal(t, echo.MIMEOctetStream, rec.Header().Get(echo.HeaderContentType))
	}
}

func TestWrapReturnsHandlerError(t *testing.T) {
	c, rec := newContext(http.MethodGet)
	boom := errors.New("boom")

	err := Wrap(func(c echo.Context) (any, error) {
		return nil, boom
	})(c)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, rec.Body.Len())
}

func TestErrorHandler(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"access denied", core.NewErrorAccessDenied("OwnershipMismatch", "Access denied: Insufficient permissions for this document"), http.StatusForbidden, "ACCESS_DENIED", "Access denied: Insufficient permissions for this document"},
		{"wrapped not found", errors.Wrap(core.NewErrorNotFound(), "document"), http.StatusNotFound, "NOT_FOUND", "Resource not found"},
		{"bad request", core.NewErrorBadRequest("limit must be positive"), http.StatusBadRequest, "BAD_REQUEST", "limit must be positive"},
		{"conflict", core.NewErrorAlreadyExists(), http.StatusConflict, "CONFLICT", "Resource already exists"},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed"},
		{"unknown", errors.New("pq: connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet)
			ErrorHandler(tc.err, c)

			assert.Equal(t, tc.status, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, map[string]any{"code": tc.code, "message": tc.message}, body["error"])
			assert.Equal(t, fixedTimestamp, body["timestamp"])
		})
	}
}

func TestErrorHandlerHead(t *testing.T) {
	c, rec := newContext(http.MethodHead)
	ErrorHandler(core.NewErrorNotFound(), c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 0, rec.Body.Len())
}
