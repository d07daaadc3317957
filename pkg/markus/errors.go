package markus

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction is returned when a Config cannot be used to build a Client.
	ErrConstruction = errors.New("invalid client configuration")

	// ErrInvalidParameterShape is returned when request parameters do not match
	// the content type they are encoded for.
	ErrInvalidParameterShape = errors.New("parameters do not match content type")

	// ErrUnresolvedMimeType is returned when an upload has no explicit mime type
	// and none can be derived from its filename.
	ErrUnresolvedMimeType = errors.New("unable to resolve mime type")

	// ErrScheme is returned when the endpoint scheme is neither http nor https.
	ErrScheme = errors.New("neither http nor https scheme")

	// ErrDecode is returned when a response body is not valid UTF-8.
	ErrDecode = errors.New("response body is not valid UTF-8")

	// ErrMalformedPayload is returned when a response body is not valid JSON.
	ErrMalformedPayload = errors.New("response body is not valid JSON")

	// ErrGroupNotFound is returned when a group name has no matching group id.
	ErrGroupNotFound = errors.New("group not found")
)

// Error describes a failure of a client operation.
type Error struct {
	Op  string // Operation that failed (e.g., "encode", "decode")
	Err error  // One of the sentinel errors above, or an underlying error
	Msg string // Optional detail
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
