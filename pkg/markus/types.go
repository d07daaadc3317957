package markus

import (
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// User is a MarkUs user account.
type User struct {
	ID           int    `json:"id"`
	UserName     string `json:"user_name"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Type         string `json:"type"`
	GraceCredits int    `json:"grace_credits"`
	NotesCount   int    `json:"notes_count"`
	Email        string `json:"email,omitempty"`
	IDNumber     string `json:"id_number,omitempty"`
	Hidden       bool   `json:"hidden,omitempty"`
}

// User types accepted by NewUser.
const (
	UserTypeStudent = "Student"
	UserTypeTA      = "Ta"
	UserTypeAdmin   = "Admin"
)

// NewUser holds the fields for creating a user. SectionName and
// GraceCredits are omitted from the request when empty.
type NewUser struct {
	UserName     string
	Type         string
	FirstName    string
	LastName     string
	SectionName  string
	GraceCredits string
}

// Assignment is a MarkUs assignment.
type Assignment struct {
	ID              int    `json:"id"`
	ShortIdentifier string `json:"short_identifier"`
	Description     string `json:"description"`
	Message         string `json:"message"`
	DueDate         string `json:"due_date"`
	GroupMin        int    `json:"group_min"`
	GroupMax        int    `json:"group_max"`
	IsHidden        bool   `json:"is_hidden"`
}

// Due parses DueDate, accepting the date layouts MarkUs has emitted across
// versions.
func (a Assignment) Due() (time.Time, error) {
	if a.DueDate == "" {
		return time.Time{}, fmt.Errorf("assignment %d has no due date", a.ID)
	}
	t, err := dateparse.ParseAny(a.DueDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse due date %q: %w", a.DueDate, err)
	}
	return t, nil
}

// Group is a submission unit on an assignment.
type Group struct {
	ID        int           `json:"id"`
	GroupName string        `json:"group_name"`
	Members   []GroupMember `json:"members,omitempty"`
}

// GroupMember links a user to a group.
type GroupMember struct {
	MembershipStatus string `json:"membership_status"`
	UserID           int    `json:"user_id"`
}

// FeedbackFile describes a file attached to a group's submission.
type FeedbackFile struct {
	ID       int    `json:"id"`
	Filename string `json:"filename"`
}

// Annotation is a comment attached to a range of a submitted file.
type Annotation struct {
	Filename               string `json:"filename" yaml:"filename"`
	AnnotationCategoryName string `json:"annotation_category_name" yaml:"annotation_category_name"`
	Content                string `json:"content" yaml:"content"`
	LineStart              int    `json:"line_start" yaml:"line_start"`
	LineEnd                int    `json:"line_end" yaml:"line_end"`
	ColumnStart            int    `json:"column_start" yaml:"column_start"`
	ColumnEnd              int    `json:"column_end" yaml:"column_end"`
}

// Mark is the value of one criterion: either a number or Unmarked.
type Mark struct {
	value float64
	unset bool
}

// Unmarked clears a criterion's mark.
var Unmarked = Mark{unset: true}

// Score returns a numeric mark. For rubric criteria this is the rubric
// level; the server applies the weight.
func Score(v float64) Mark {
	return Mark{value: v}
}

// IsUnmarked reports whether m clears the mark.
func (m Mark) IsUnmarked() bool {
	return m.unset
}

// Value returns the numeric mark; it is zero for Unmarked.
func (m Mark) Value() float64 {
	return m.value
}

// String returns the form value sent to the server.
func (m Mark) String() string {
	if m.unset {
		return "nil"
	}
	return strconv.FormatFloat(m.value, 'f', -1, 64)
}

// ParseMark reads "nil" as Unmarked and anything else as a number.
func ParseMark(s string) (Mark, error) {
	if s == "nil" {
		return Unmarked, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Mark{}, fmt.Errorf("invalid mark %q: %w", s, err)
	}
	return Score(v), nil
}

// MarkingState is whether a group's grading is finalized.
type MarkingState string

const (
	MarkingStateComplete   MarkingState = "complete"
	MarkingStateIncomplete MarkingState = "incomplete"
)
