package markus

import (
	"fmt"
	"strings"
)

// APIRoot is the prefix of every API path.
const APIRoot = "/api"

// Segment is one level of a resource path: a collection name, optionally
// followed by the id of an item in that collection.
type Segment struct {
	Collection string
	ID         string
	HasID      bool
}

// Collection returns a segment addressing a whole collection.
func Collection(name string) Segment {
	return Segment{Collection: name}
}

// Item returns a segment addressing one item of a collection.
func Item(name string, id any) Segment {
	return Segment{Collection: name, ID: fmt.Sprint(id), HasID: true}
}

// BuildPath composes "/api/<collection>/<id>/<collection>/..." from segments
// in order. Segments without an id contribute only their collection name.
func BuildPath(segments ...Segment) string {
	parts := make([]string, 0, len(segments)*2)
	for _, s := range segments {
		parts = append(parts, s.Collection)
		if s.HasID {
			parts = append(parts, s.ID)
		}
	}
	return APIRoot + "/" + strings.Join(parts, "/")
}

// jsonPath marks a read endpoint.
func jsonPath(path string) string {
	return path + ".json"
}

func groupPath(assignmentID, groupID int, rest ...Segment) string {
	segments := append([]Segment{
		Item("assignments", assignmentID),
		Item("groups", groupID),
	}, rest...)
	return BuildPath(segments...)
}
