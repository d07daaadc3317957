// Package markus provides a client for the MarkUs grading platform REST API.
//
// # Overview
//
// Every remote capability is exposed as a method on Client. A call builds the
// resource path, encodes the request body for its content type, performs a
// single HTTP round trip and decodes the response. Calls that write data
// return the raw Response; calls that read data decode it into Go types.
//
// HTTP failures (4xx/5xx) are not errors at this layer. A Response carrying a
// non-2xx status is returned as an ordinary result and callers must inspect
// Response.StatusCode themselves.
//
// # Configuration Example
//
//	client, err := markus.NewClient(&markus.Config{
//	  BaseURL:   "https://markus.example.edu/csc108",
//	  AuthToken: os.Getenv("MARKUS_API_KEY"),
//	})
//
// # API Endpoints Used
//
// Users:
//   - GET  /api/users.json
//   - POST /api/users
//
// Assignments and groups:
//   - GET /api/assignments.json
//   - GET /api/assignments/:id.json
//   - GET /api/assignments/:id/group_ids_by_name.json
//   - GET /api/assignments/:id/groups/:id.json
//
// Feedback files:
//   - GET  /api/assignments/:id/groups/:id/feedback_files.json
//   - GET  /api/assignments/:id/groups/:id/feedback_files/:id.json
//   - POST /api/assignments/:id/groups/:id/feedback_files
//   - PUT  /api/assignments/:id/groups/:id/feedback_files/:id
//
// Marking:
//   - POST /api/assignments/:id/groups/:id/test_group_results
//   - POST /api/assignments/:id/groups/:id/add_annotations
//   - PUT  /api/assignments/:id/groups/:id/update_marks
//   - PUT  /api/assignments/:id/groups/:id/update_marking_state
//   - GET  /api/grade_entry_forms/:id.json
//
// # Connections
//
// Each call opens exactly one connection and closes it before returning.
// There is no pooling, retry or caching. A Client is read-only after
// construction and may be shared between goroutines.
//
// # Security
//
//   - Requests carry an "Authorization: MarkUsAuth <token>" header
//   - The auth token is never logged or serialized to JSON
package markus
