package markus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"sort"
	"strings"
)

// ContentType identifies one of the request body encodings the API accepts.
type ContentType string

const (
	ContentTypeForm      ContentType = "application/x-www-form-urlencoded"
	ContentTypeMultipart ContentType = "multipart/form-data"
	ContentTypeJSON      ContentType = "application/json"
)

// Body is a request body. It is implemented only by FormBody, JSONBody and
// MultipartBody, each carrying the payload shape of its content type.
type Body interface {
	Kind() ContentType
	encode() (EncodedBody, error)
}

// EncodedBody is the wire form of a Body. ContentType is always the one
// produced by the variant that was encoded.
type EncodedBody struct {
	ContentType string
	Payload     []byte
}

// Encode produces the wire payload for b. A nil body encodes as an empty
// form so every request still carries a content type.
func Encode(b Body) (EncodedBody, error) {
	if b == nil {
		return EncodedBody{ContentType: string(ContentTypeForm)}, nil
	}
	return b.encode()
}

// FormBody is sent as application/x-www-form-urlencoded.
type FormBody url.Values

func (FormBody) Kind() ContentType { return ContentTypeForm }

func (b FormBody) encode() (EncodedBody, error) {
	return EncodedBody{
		ContentType: string(ContentTypeForm),
		Payload:     []byte(url.Values(b).Encode()),
	}, nil
}

// JSONBody is sent as application/json.
type JSONBody struct {
	Value any
}

func (JSONBody) Kind() ContentType { return ContentTypeJSON }

func (b JSONBody) encode() (EncodedBody, error) {
	payload, err := json.Marshal(b.Value)
	if err != nil {
		return EncodedBody{}, &Error{
			Op:  "encode",
			Err: ErrInvalidParameterShape,
			Msg: fmt.Sprintf("%s: %v", ContentTypeJSON, err),
		}
	}
	return EncodedBody{ContentType: string(ContentTypeJSON), Payload: payload}, nil
}

// FilePart is a file attached to a multipart body.
type FilePart struct {
	FieldName string
	FileName  string
	MimeType  string // defaults to application/octet-stream
	Content   []byte
}

// MultipartBody is sent as multipart/form-data. Fields are written in key
// order, followed by Files in slice order.
type MultipartBody struct {
	Fields map[string]string
	Files  []FilePart
}

func (MultipartBody) Kind() ContentType { return ContentTypeMultipart }

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (b MultipartBody) encode() (EncodedBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(b.Fields))
	for k := range b.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := w.WriteField(k, b.Fields[k]); err != nil {
			return EncodedBody{}, fmt.Errorf("failed to write multipart field %s: %w", k, err)
		}
	}

	for _, f := range b.Files {
		if f.FieldName == "" {
			return EncodedBody{}, &Error{
				Op:  "encode",
				Err: ErrInvalidParameterShape,
				Msg: fmt.Sprintf("%s: file part %q has no field name", ContentTypeMultipart, f.FileName),
			}
		}
		mimeType := f.MimeType
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(f.FieldName), quoteEscaper.Replace(f.FileName)))
		h.Set("Content-Type", mimeType)

		part, err := w.CreatePart(h)
		if err != nil {
			return EncodedBody{}, fmt.Errorf("failed to create multipart file part: %w", err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return EncodedBody{}, fmt.Errorf("failed to write multipart file part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return EncodedBody{}, fmt.Errorf("failed to close multipart body: %w", err)
	}

	return EncodedBody{ContentType: w.FormDataContentType(), Payload: buf.Bytes()}, nil
}

// NewBody builds a Body of the given content type from loosely typed
// parameters. It fails with ErrInvalidParameterShape when params do not fit
// the content type.
func NewBody(kind ContentType, params any) (Body, error) {
	switch kind {
	case ContentTypeForm:
		switch p := params.(type) {
		case nil:
			return FormBody{}, nil
		case FormBody:
			return p, nil
		case url.Values:
			return FormBody(p), nil
		case map[string][]string:
			return FormBody(p), nil
		case map[string]string:
			values := make(url.Values, len(p))
			for k, v := range p {
				values.Set(k, v)
			}
			return FormBody(values), nil
		}
	case ContentTypeMultipart:
		switch p := params.(type) {
		case MultipartBody:
			return p, nil
		case *MultipartBody:
			if p != nil {
				return *p, nil
			}
		}
	case ContentTypeJSON:
		if p, ok := params.(JSONBody); ok {
			return p, nil
		}
		return JSONBody{Value: params}, nil
	}

	return nil, &Error{
		Op:  "encode",
		Err: ErrInvalidParameterShape,
		Msg: fmt.Sprintf("%s cannot encode %T", kind, params),
	}
}
