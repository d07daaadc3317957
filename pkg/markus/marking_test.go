package markus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okServer(w http.ResponseWriter, req recordedRequest) {
	writeJSON(w, http.StatusOK, `{"code":"200","description":"Success"}`)
}

func TestClient_UploadTestGroupResults(t *testing.T) {
	client, rec := newTestClient(t, okServer)

	_, err := client.UploadTestGroupResults(context.Background(), 1, 2, 30, `{"status": "pass"}`)
	require.NoError(t, err)

	req := rec.all()[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/assignments/1/groups/2/test_group_results", req.Path)

	form, err := url.ParseQuery(string(req.Body))
	require.NoError(t, err)
	assert.Equal(t, "30", form.Get("test_run_id"))
	assert.Equal(t, `{"status": "pass"}`, form.Get("test_output"))
}

func TestClient_UploadAnnotations(t *testing.T) {
	client, rec := newTestClient(t, okServer)

	annotations := []Annotation{{
		Filename:               "lists.py",
		AnnotationCategoryName: "Style",
		Content:                "Use a comprehension here.",
		LineStart:              3,
		LineEnd:                5,
		ColumnStart:            0,
		ColumnEnd:              12,
	}}

	_, err := client.UploadAnnotations(context.Background(), 1, 2, annotations, true)
	require.NoError(t, err)

	req := rec.all()[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/assignments/1/groups/2/add_annotations", req.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	var body struct {
		Annotations   []Annotation `json:"annotations"`
		ForceComplete bool         `json:"force_complete"`
	}
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, annotations, body.Annotations)
	assert.True(t, body.ForceComplete)
}

func TestClient_UploadAnnotations_Empty(t *testing.T) {
	client, rec := newTestClient(t, okServer)

	_, err := client.UploadAnnotations(context.Background(), 1, 2, nil, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"annotations": [], "force_complete": false}`, string(rec.all()[0].Body))
}

func TestClient_UpdateMarksSingleGroup(t *testing.T) {
	client, rec := newTestClient(t, okServer)

	_, err := client.UpdateMarksSingleGroup(context.Background(), 1, 2, map[string]Mark{
		"Correctness":     Score(8.5),
		"Style":           Unmarked,
		"Tests (hidden)!": Score(3),
	})
	require.NoError(t, err)

	req := rec.all()[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/assignments/1/groups/2/update_marks", req.Path)

	form, err := url.ParseQuery(string(req.Body))
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"Correctness":     {"8.5"},
		"Style":           {"nil"},
		"Tests (hidden)!": {"3"},
	}, form)
}

func TestClient_UpdateMarkingState(t *testing.T) {
	tests := []struct {
		name  string
		state MarkingState
	}{
		{name: "complete", state: MarkingStateComplete},
		{name: "incomplete", state: MarkingStateIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, okServer)

			_, err := client.UpdateMarkingState(context.Background(), 1, 2, tt.state)
			require.NoError(t, err)

			req := rec.all()[0]
			assert.Equal(t, http.MethodPut, req.Method)
			assert.Equal(t, "/api/assignments/1/groups/2/update_marking_state", req.Path)
			assert.Equal(t, "marking_state="+string(tt.state), string(req.Body))
		})
	}
}
