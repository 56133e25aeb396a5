package llm

import "errors"

// Error code constants for standardized error handling. The client maps SDK
// and network errors to one of these codes.
const (
	ErrCodeInvalidArgument   = "invalid_argument"
	ErrCodeAuthentication    = "authentication_error"
	ErrCodeTransport         = "transport_error"
	ErrCodeMalformedResponse = "malformed_response"
)

// Error represents a typed completion error. Use the IsXxx helpers below to
// classify errors without inspecting fields.
type Error struct {
	Code    string // One of the ErrCode* constants.
	Message string // Human-readable description.
	Err     error  // Underlying cause (may be nil).
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a typed completion error.
func NewError(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// IsInvalidArgument reports whether err is a local validation failure. These
// are detected before any network call and are never worth retrying.
func IsInvalidArgument(err error) bool {
	return hasCode(err, ErrCodeInvalidArgument)
}

// IsAuthentication reports whether err is a missing or rejected credential.
func IsAuthentication(err error) bool {
	return hasCode(err, ErrCodeAuthentication)
}

// IsTransport reports whether err is a connectivity, timeout, or server-side
// failure reaching the remote service.
func IsTransport(err error) bool {
	return hasCode(err, ErrCodeTransport)
}

// IsMalformedResponse reports whether err means the response envelope was
// missing the expected choice/content path.
func IsMalformedResponse(err error) bool {
	return hasCode(err, ErrCodeMalformedResponse)
}

func hasCode(err error, code string) bool {
	var le *Error
	return errors.As(err, &le) && le.Code == code
}
