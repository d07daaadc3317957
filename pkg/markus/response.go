package markus

import (
	"encoding/json"
	"unicode/utf8"
)

// Response is the raw result of one API call. A non-2xx StatusCode is not
// an error.
type Response struct {
	StatusCode int
	Reason     string
	Body       []byte
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Text returns the body as a UTF-8 string.
func (r *Response) Text() (string, error) {
	if !utf8.Valid(r.Body) {
		return "", &Error{Op: "decode", Err: ErrDecode}
	}
	return string(r.Body), nil
}

// DecodeJSON parses the body into v.
func (r *Response) DecodeJSON(v any) error {
	text, err := r.Text()
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return &Error{Op: "decode", Err: ErrMalformedPayload, Msg: err.Error()}
	}
	return nil
}

// JSON parses the body into generic Go values (maps, slices, float64, ...).
func (r *Response) JSON() (any, error) {
	var v any
	if err := r.DecodeJSON(&v); err != nil {
		return nil, err
	}
	return v, nil
}
