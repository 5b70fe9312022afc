// Package response shapes handler results into the API wire envelopes
package response

import (
	"io"
	"reflect"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
)

type Shape int

const (
	ShapePassthrough Shape = iota
	ShapeEnvelope
	ShapePaginated
	ShapeSuccess
)

func (s Shape) String() string {
	switch s {
	case ShapePassthrough:
		return "Passthrough"
	case ShapeEnvelope:
		return "Envelope"
	case ShapePaginated:
		return "Paginated"
	case ShapeSuccess:
		return "Success"
	default:
		return "Error"
	}
}

// Result is the normalized form of a handler value.
// For ShapePassthrough and ShapeEnvelope, Body is the original value.
type Result struct {
	Shape Shape
	Body  any
}

// Stream is a binary payload that is written to the wire untouched
type Stream struct {
	Reader      io.Reader
	ContentType string
	FileName    string
	Size        int64
}

// view is a handler value together with its object form, if it has one
type view struct {
	value    any
	object   map[string]any
	isObject bool
}

type rule struct {
	match func(v view) bool
	build func(v view) Result
}

// rules is evaluated in order and the first match wins.
// Already shaped envelopes come before pagination sniffing, and both
// pagination forms come before the plain data envelope.
var rules = []rule{
	{match: isPassthrough, build: passthrough},
	{match: isEnvelope, build: envelope},
	{match: isFlatPagination, build: flatPagination},
	{match: isNestedPagination, build: nestedPagination},
	{match: isDataEnvelope, build: dataEnvelope},
}

// Normalize classifies value into exactly one wire shape. It never panics.
func Normalize(value any) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = fallback(value)
		}
	}()

	v := inspect(value)
	for _, r := range rules {
		if r.match(v) {
			return r.build(v)
		}
	}
	return fallback(value)
}

func fallback(value any) Result {
	if isNil(value) {
		value = nil
	}
	return Result{
		Shape: ShapeSuccess,
		Body: core.Response{
			Success:   true,
			Data:      value,
			Timestamp: timestamp(),
		},
	}
}

func isPassthrough(v view) bool {
	switch v.value.(type) {
	case *Stream, Stream, []byte, io.Reader:
		return !isNil(v.value)
	}
	return false
}

func passthrough(v view) Result {
	return Result{Shape: ShapePassthrough, Body: v.value}
}

func isEnvelope(v view) bool {
	if !v.isObject {
		return false
	}
	_, ok := v.object["success"].(bool)
	return ok
}

func envelope(v view) Result {
	return Result{Shape: ShapeEnvelope, Body: v.value}
}

func isFlatPagination(v view) bool {
	if !v.isObject {
		return false
	}
	if !isArray(v.object["data"]) && !isArray(v.object["items"]) {
		return false
	}
	return isNumber(v.object["total"]) && isNumber(v.object["page"]) && isNumber(v.object["limit"])
}

func flatPagination(v view) Result {
	var data any = []any{}
	if isArray(v.object["data"]) {
		data = v.object["data"]
	} else if isArray(v.object["items"]) {
		data = v.object["items"]
	}
	return paginated(data, v.object)
}

func isNestedPagination(v view) bool {
	if !v.isObject {
		return false
	}
	nested := inspect(v.object["pagination"])
	if !nested.isObject {
		return false
	}
	return isNumber(nested.object["page"]) && isNumber(nested.object["limit"]) && isNumber(nested.object["total"])
}

func nestedPagination(v view) Result {
	var data any = []any{}
	if isArray(v.object["data"]) {
		data = v.object["data"]
	}
	return paginated(data, inspect(v.object["pagination"]).object)
}

func paginated(data any, fields map[string]any) Result {
	if isNil(data) {
		data = []any{}
	}
	return Result{
		Shape: ShapePaginated,
		Body: core.PaginatedResponse{
			Success:    true,
			Data:       data,
			Pagination: paginate(toInt64(fields["page"]), toInt64(fields["limit"]), toInt64(fields["total"])),
			Timestamp:  timestamp(),
		},
	}
}

func isDataEnvelope(v view) bool {
	if !v.isObject {
		return false
	}
	_, hasData := v.object["data"]
	_, hasPagination := v.object["pagination"]
	return hasData && !hasPagination
}

func dataEnvelope(v view) Result {
	data := v.object["data"]
	if isNil(data) {
		data = nil
	}
	message, _ := v.object["message"].(string)
	return Result{
		Shape: ShapeSuccess,
		Body: core.Response{
			Success:   true,
			Data:      data,
			Message:   message,
			Timestamp: timestamp(),
		},
	}
}

// paginate derives the page block. A non-positive limit counts as a single page.
func paginate(page, limit, total int64) core.Pagination {
	totalPages := int64(1)
	if limit > 0 {
		totalPages = total / limit
		if total%limit > 0 {
			totalPages++
		}
	}
	return core.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
