package markus

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// UploadTestGroupResults uploads the output of a test run for a group.
func (c *Client) UploadTestGroupResults(ctx context.Context, assignmentID, groupID, testRunID int, testOutput string) (*Response, error) {
	params := url.Values{}
	params.Set("test_run_id", strconv.Itoa(testRunID))
	params.Set("test_output", testOutput)

	path := groupPath(assignmentID, groupID, Collection("test_group_results"))
	return c.Do(ctx, http.MethodPost, path, FormBody(params))
}

// UploadAnnotations attaches annotations to a group's submission. This only
// works for plain-text submission files. When forceComplete is set the
// server adds annotations even if the result is already complete.
func (c *Client) UploadAnnotations(ctx context.Context, assignmentID, groupID int, annotations []Annotation, forceComplete bool) (*Response, error) {
	if annotations == nil {
		annotations = []Annotation{}
	}
	requestBody := map[string]interface{}{
		"annotations":    annotations,
		"force_complete": forceComplete,
	}

	path := groupPath(assignmentID, groupID, Collection("add_annotations"))
	return c.Do(ctx, http.MethodPost, path, JSONBody{Value: requestBody})
}

// UpdateMarksSingleGroup sets the marks of one group. Only the criteria in
// marks change. Criteria are keyed by title exactly as shown in MarkUs,
// punctuation included. Values are not range-checked here; the server
// validates them.
func (c *Client) UpdateMarksSingleGroup(ctx context.Context, assignmentID, groupID int, marks map[string]Mark) (*Response, error) {
	params := url.Values{}
	for criterion, mark := range marks {
		params.Set(criterion, mark.String())
	}

	path := groupPath(assignmentID, groupID, Collection("update_marks"))
	return c.Do(ctx, http.MethodPut, path, FormBody(params))
}

// UpdateMarkingState marks a group's result complete or incomplete.
func (c *Client) UpdateMarkingState(ctx context.Context, assignmentID, groupID int, state MarkingState) (*Response, error) {
	params := url.Values{}
	params.Set("marking_state", string(state))

	path := groupPath(assignmentID, groupID, Collection("update_marking_state"))
	return c.Do(ctx, http.MethodPut, path, FormBody(params))
}
