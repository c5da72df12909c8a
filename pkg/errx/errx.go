package errx

import (
	"fmt"
)

// ErrorType classifies an error for transport mapping and logging.
type ErrorType string

const (
	TypeValidation     ErrorType = "VALIDATION"
	TypeNotFound       ErrorType = "NOT_FOUND"
	TypeConflict       ErrorType = "CONFLICT"
	TypeAuthentication ErrorType = "AUTHENTICATION"
	TypeAuthorization  ErrorType = "AUTHORIZATION"
	TypeBusiness       ErrorType = "BUSINESS"
	TypeInternal       ErrorType = "INTERNAL"
	TypeExternal       ErrorType = "EXTERNAL"
)

// Code is a fully-qualified error code, e.g. "APPLICATION:NOT_FOUND".
type Code string

// Error is the error type returned by every domain operation. It carries
// enough information for the HTTP layer to render a response without
// inspecting the originating package.
type Error struct {
	Code       Code           `json:"code"`
	Type       ErrorType      `json:"type"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value pair for diagnostics and API responses.
// It returns the receiver so calls can be chained.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause records the underlying error without changing the public shape.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse returns the JSON body rendered by the global error handler.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"error":   e.Message,
		"type":    e.Type,
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Is makes errors.Is match two registry errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

type definition struct {
	errType    ErrorType
	httpStatus int
	message    string
}

// Registry holds the error codes of one domain, namespaced by a prefix.
type Registry struct {
	prefix string
	defs   map[Code]definition
}

// NewRegistry creates an error registry for a domain, e.g. NewRegistry("JOB").
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		defs:   make(map[Code]definition),
	}
}

// Register declares an error code and returns its fully-qualified Code.
func (r *Registry) Register(code string, errType ErrorType, httpStatus int, message string) Code {
	full := Code(r.prefix + ":" + code)
	r.defs[full] = definition{
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New instantiates a fresh Error for a registered code.
func (r *Registry) New(code Code) *Error {
	def, ok := r.defs[code]
	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			Message:    "unregistered error code",
			HTTPStatus: 500,
		}
	}
	return &Error{
		Code:       code,
		Type:       def.errType,
		Message:    def.message,
		HTTPStatus: def.httpStatus,
	}
}

// Wrap converts an arbitrary error into an *Error of the given type,
// preserving the original as the cause.
func Wrap(err error, message string, errType ErrorType) *Error {
	status := 500
	if errType == TypeExternal {
		status = 502
	}
	return &Error{
		Code:       Code(string(errType) + ":WRAPPED"),
		Type:       errType,
		Message:    message,
		HTTPStatus: status,
		cause:      err,
	}
}

// IsCode reports whether err is an *Error carrying the given code.
func IsCode(err error, code Code) bool {
	e, ok := err.(*Error)
	return ok && e.Code == code
}
