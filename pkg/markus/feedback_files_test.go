package markus

import (
	"bytes"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedbackCollection = "/api/assignments/1/groups/2/feedback_files"

// feedbackServer lists one existing file named out.txt with id 44.
func feedbackServer(w http.ResponseWriter, req recordedRequest) {
	if req.Method == http.MethodGet {
		writeJSON(w, http.StatusOK, `[{"id": 44, "filename": "out.txt"}]`)
		return
	}
	writeJSON(w, http.StatusOK, `{"code":"200"}`)
}

func TestClient_GetFeedbackFiles(t *testing.T) {
	client, rec := newTestClient(t, feedbackServer)

	files, err := client.GetFeedbackFiles(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []FeedbackFile{{ID: 44, Filename: "out.txt"}}, files)
	assert.Equal(t, feedbackCollection+".json", rec.all()[0].Path)
}

func TestClient_GetFeedbackFile(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, req recordedRequest) {
		w.Write([]byte("All tests passed."))
	})

	text, err := client.GetFeedbackFile(context.Background(), 1, 2, 44)
	require.NoError(t, err)
	assert.Equal(t, "All tests passed.", text)
	assert.Equal(t, feedbackCollection+"/44.json", rec.all()[0].Path)
}

func TestClient_GetFeedbackFile_Binary(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, req recordedRequest) {
		w.Write([]byte{0x89, 0x50, 0x4e, 0x47, 0xff, 0xfe})
	})

	_, err := client.GetFeedbackFile(context.Background(), 1, 2, 45)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestClient_UploadFeedbackFile_ReplacesExisting(t *testing.T) {
	client, rec := newTestClient(t, feedbackServer)

	resp, err := client.UploadFeedbackFile(context.Background(), 1, 2, FeedbackFileUpload{
		Title:     "out.txt",
		Contents:  TextContents("2/3 tests passed"),
		Overwrite: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	requests := rec.all()
	require.Len(t, requests, 2)
	assert.Equal(t, http.MethodGet, requests[0].Method)
	assert.Equal(t, feedbackCollection+".json", requests[0].Path)

	assert.Equal(t, http.MethodPut, requests[1].Method)
	assert.Equal(t, feedbackCollection+"/44", requests[1].Path)

	form, err := url.ParseQuery(string(requests[1].Body))
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"filename":     {"out.txt"},
		"file_content": {"2/3 tests passed"},
		"mime_type":    {"text/plain"},
	}, form)
}

func TestClient_UploadFeedbackFile_CreatesNew(t *testing.T) {
	client, rec := newTestClient(t, feedbackServer)

	_, err := client.UploadFeedbackFile(context.Background(), 1, 2, FeedbackFileUpload{
		Title:     "style.txt",
		Contents:  TextContents("ok"),
		Overwrite: true,
	})
	require.NoError(t, err)

	requests := rec.all()
	require.Len(t, requests, 2)
	assert.Equal(t, http.MethodPost, requests[1].Method)
	assert.Equal(t, feedbackCollection, requests[1].Path)
}

func TestClient_UploadFeedbackFile_NoOverwrite(t *testing.T) {
	client, rec := newTestClient(t, feedbackServer)

	_, err := client.UploadFeedbackFile(context.Background(), 1, 2, FeedbackFileUpload{
		Title:    "out.txt",
		Contents: TextContents("again"),
	})
	require.NoError(t, err)

	requests := rec.all()
	require.Len(t, requests, 1, "existing files are only listed when overwriting")
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, feedbackCollection, requests[0].Path)
}

func TestClient_UploadFeedbackFile_Binary(t *testing.T) {
	client, rec := newTestClient(t, feedbackServer)
	content := []byte{0x25, 0x50, 0x44, 0x46, 0x2d, 0x00, 0xff}

	_, err := client.UploadFeedbackFile(context.Background(), 1, 2, FeedbackFileUpload{
		Title:    "report.pdf",
		Contents: BinaryContents(content),
	})
	require.NoError(t, err)

	requests := rec.all()
	require.Len(t, requests, 1)

	mediaType, params, err := mime.ParseMediaType(requests[0].Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(bytes.NewReader(requests[0].Body), params["boundary"])
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)

	assert.Equal(t, []string{"report.pdf"}, form.Value["filename"])
	assert.Equal(t, []string{"application/pdf"}, form.Value["mime_type"])
	require.Len(t, form.File["file_content"], 1)

	fh := form.File["file_content"][0]
	assert.Equal(t, "report.pdf", fh.Filename)
	assert.Equal(t, "application/pdf", fh.Header.Get("Content-Type"))

	f, err := fh.Open()
	require.NoError(t, err)
	defer f.Close()
	got, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestClient_UploadFeedbackFile_ExplicitMimeType(t *testing.T) {
	client, rec := newTestClient(t, feedbackServer)

	_, err := client.UploadFeedbackFile(context.Background(), 1, 2, FeedbackFileUpload{
		Title:    "results",
		Contents: TextContents("{}"),
		MimeType: "application/json",
	})
	require.NoError(t, err)

	form, err := url.ParseQuery(string(rec.all()[0].Body))
	require.NoError(t, err)
	assert.Equal(t, "application/json", form.Get("mime_type"))
}

func TestClient_UploadFeedbackFile_UnresolvedMimeType(t *testing.T) {
	client, rec := newTestClient(t, feedbackServer)

	resp, err := client.UploadFeedbackFile(context.Background(), 1, 2, FeedbackFileUpload{
		Title:     "data",
		Contents:  TextContents("x"),
		Overwrite: true,
	})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrUnresolvedMimeType)
	assert.Empty(t, rec.all(), "no request is sent without a mime type")
}

func TestClient_UploadFeedbackFile_NoContents(t *testing.T) {
	client, rec := newTestClient(t, feedbackServer)

	_, err := client.UploadFeedbackFile(context.Background(), 1, 2, FeedbackFileUpload{Title: "out.txt"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameterShape)
	assert.Empty(t, rec.all())
}
