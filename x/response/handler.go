package response

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
)

var tracer = otel.Tracer("response")

// HandlerFunc is a route handler that returns its result instead of writing it
type HandlerFunc func(c echo.Context) (any, error)

// Wrap adapts h to echo, normalizing its result with status 200
func Wrap(h HandlerFunc) echo.HandlerFunc {
	return WrapStatus(http.StatusOK, h)
}

// WrapStatus is Wrap with a fixed success status (e.g. 201 for creation routes)
func WrapStatus(status int, h HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		value, err := h(c)
		if err != nil {
			return err
		}
		return Write(c, status, value)
	}
}

// Write normalizes value and writes it to the response
func Write(c echo.Context, status int, value any) error {
	_, span := tracer.Start(c.Request().Context(), "Response.Write")
	defer span.End()

	result := Normalize(value)
	span.SetAttributes(attribute.String("Shape", result.Shape.String()))

	if result.Shape == ShapePassthrough {
		return writeStream(c, status, result.Body)
	}
	return c.JSON(status, result.Body)
}

func writeStream(c echo.Context, status int, body any) error {
	switch b := body.(type) {
	case *Stream:
		return writeFile(c, status, *b)
	case Stream:
		return writeFile(c, status, b)
	case []byte:
		return c.Blob(status, echo.MIMEOctetStream, b)
	default:
		return c.Stream(status, echo.MIMEOctetStream, body.(io.Reader))
	}
}

func writeFile(c echo.Context, status int, s Stream) error {
	contentType := s.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	if s.FileName != "" {
		c.Response().Header().Set(
			echo.HeaderContentDisposition,
			mime.FormatMediaType("attachment", map[string]string{"filename": s.FileName}),
		)
	}
	if s.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, fmt.Sprint(s.Size))
	}
	return c.Stream(status, contentType, s.Reader)
}

// ErrorHandler renders every error returned by a handler or middleware as an error envelope
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := Classify(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(
			c.Request().Context(), "request failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Path()),
		)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(status)
	} else {
		werr = c.JSON(status, body)
	}
	if werr != nil {
		slog.ErrorContext(c.Request().Context(), "failed to write error response", slog.String("error", werr.Error()))
	}
}

// Classify maps err to its HTTP status and error envelope
func Classify(err error) (int, core.ErrorResponse) {
	var denied core.ErrorAccessDenied
	var badRequest core.ErrorBadRequest
	var httpError *echo.HTTPError

	switch {
	case errors.As(err, &denied):
		return http.StatusForbidden, Error("ACCESS_DENIED", denied.Message)
	case errors.As(err, &badRequest):
		return http.StatusBadRequest, Error("BAD_REQUEST", badRequest.Message)
	case errors.As(err, new(core.ErrorNotFound)):
		return http.StatusNotFound, Error("NOT_FOUND", "Resource not found")
	case errors.As(err, new(core.ErrorAlreadyExists)):
		return http.StatusConflict, Error("CONFLICT", "Resource already exists")
	case errors.As(err, new(core.ErrorPermissionDenied)):
		return http.StatusForbidden, Error("FORBIDDEN", "Permission denied")
	case errors.As(err, &httpError):
		return httpError.Code, Error(statusCode(httpError.Code), fmt.Sprint(httpError.Message))
	default:
		return http.StatusInternalServerError, Error("INTERNAL_ERROR", "Internal server error")
	}
}

// statusCode turns 404 into NOT_FOUND
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
