package response

import (
	"fmt"

	"github.com/rabih-ultra-tms/Ultra-TMS-sub017/core"
)

const (
	MessageCreated = "Resource created successfully"
	MessageUpdated = "Resource updated successfully"
	MessageDeleted = "Resource deleted successfully"
)

// Success wraps data; message is optional
func Success(data any, message ...string) core.Response {
	return core.Response{
		Success:   true,
		Data:      data,
		Message:   first(message),
		Timestamp: timestamp(),
	}
}

func Created(data any) core.Response {
	return Success(data, MessageCreated)
}

func Updated(data any) core.Response {
	return Success(data, MessageUpdated)
}

// Deleted always carries null data
func Deleted() core.Response {
	return Success(nil, MessageDeleted)
}

func PaginatedFrom[T any](items []T, total int64, page, limit int) core.PaginatedResponse {
	if items == nil {
		items = []T{}
	}
	return core.PaginatedResponse{
		Success:    true,
		Data:       items,
		Pagination: paginate(int64(page), int64(limit), total),
		Timestamp:  timestamp(),
	}
}

// Error builds the error envelope; details is optional
func Error(code, message string, details ...any) core.ErrorResponse {
	var detail any
	if len(details) == 1 {
		detail = details[0]
	} else if len(details) > 1 {
		detail = details
	}
	return core.ErrorResponse{
		Success: false,
		Error: core.ErrorBody{
			Code:    code,
			Message: message,
			Details: detail,
		},
		Timestamp: timestamp(),
	}
}

// BatchResult reports a partially applied batch.
// Without a message it reads "N processed, M failed".
func BatchResult(outcome core.BatchOutcome, message ...string) core.Response {
	if outcome.Succeeded == nil {
		outcome.Succeeded = []string{}
	}
	if outcome.Failed == nil {
		outcome.Failed = []core.BatchFailure{}
	}
	msg := first(message)
	if msg == "" {
		msg = fmt.Sprintf("%d processed, %d failed", len(outcome.Succeeded), len(outcome.Failed))
	}
	return Success(outcome, msg)
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
