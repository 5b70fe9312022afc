package core

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorAlreadyExists struct {
}

func (e ErrorAlreadyExists) Error() string {
	return "Already Exists"
}

func NewErrorAlreadyExists() ErrorAlreadyExists {
	return ErrorAlreadyExists{}
}

type ErrorPermissionDenied struct {
}

func (e ErrorPermissionDenied) Error() string {
	return "Permission Denied"
}

func NewErrorPermissionDenied() ErrorPermissionDenied {
	return ErrorPermissionDenied{}
}

// ErrorAccessDenied is raised when an access decision refuses a request.
// Reason is for logs and metrics only; Message is what the caller sees.
type ErrorAccessDenied struct {
	Reason  string
	Message string
}

func (e ErrorAccessDenied) Error() string {
	return e.Message
}

func NewErrorAccessDenied(reason, message string) ErrorAccessDenied {
	return ErrorAccessDenied{Reason: reason, Message: message}
}

type ErrorBadRequest struct {
	Message string
}

func (e ErrorBadRequest) Error() string {
	return e.Message
}

func NewErrorBadRequest(message string) ErrorBadRequest {
	return ErrorBadRequest{Message: message}
}
