// Package httpx defines the JSON response envelope shared by every API
// endpoint and the closed set of error kinds handlers are allowed to fail
// with. Mapping an error kind to an HTTP status happens in exactly one
// place (Fail), so no handler invents its own failure shape.
package httpx

// Kind classifies an API failure. The set is closed: every failure a
// handler can produce is one of these, and Fail maps each to a status.
type Kind int

const (
	// KindValidation covers missing or malformed request input.
	KindValidation Kind = iota
	// KindUnauthorized covers credential, token, and bearer-header failures.
	KindUnauthorized
	// KindNotFound covers lookups of absent records.
	KindNotFound
	// KindUnsupportedFile covers rejected upload files (type or MIME).
	KindUnsupportedFile
	// KindInternal covers unexpected faults (store errors, disk errors).
	KindInternal
)

// Error is the failure type handlers return. Message is client-facing;
// Err, when set, is the underlying cause and is only exposed outside
// production.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a 400-class input error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Unauthorized builds a 401-class error. Callers are expected to keep the
// message uninformative about which check failed.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// NotFound builds a 404-class error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// UnsupportedFile builds a rejected-upload error.
func UnsupportedFile(msg string) *Error {
	return &Error{Kind: KindUnsupportedFile, Message: msg}
}

// Internal wraps an unexpected fault with a client-safe message.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}
