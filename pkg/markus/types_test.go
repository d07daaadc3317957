package markus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark_String(t *testing.T) {
	assert.Equal(t, "8.5", Score(8.5).String())
	assert.Equal(t, "10", Score(10).String())
	assert.Equal(t, "-1", Score(-1).String())
	assert.Equal(t, "nil", Unmarked.String())
	assert.True(t, Unmarked.IsUnmarked())
	assert.False(t, Score(0).IsUnmarked())
}

func TestParseMark(t *testing.T) {
	m, err := ParseMark("nil")
	require.NoError(t, err)
	assert.True(t, m.IsUnmarked())

	m, err = ParseMark("8.5")
	require.NoError(t, err)
	assert.Equal(t, 8.5, m.Value())

	_, err = ParseMark("eight")
	assert.Error(t, err)
}

func TestResolveMimeType(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		explicit string
		expected string
		wantErr  bool
	}{
		{name: "pdf", filename: "report.pdf", expected: "application/pdf"},
		{name: "text", filename: "out.txt", expected: "text/plain"},
		{name: "upper case extension", filename: "REPORT.PDF", expected: "application/pdf"},
		{name: "python", filename: "lists.py", expected: "text/x-python"},
		{name: "explicit wins", filename: "report.pdf", explicit: "text/plain", expected: "text/plain"},
		{name: "explicit without extension", filename: "data", explicit: "text/csv", expected: "text/csv"},
		{name: "no extension", filename: "data", wantErr: true},
		{name: "unknown extension", filename: "data.qqzzx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveMimeType(tt.filename, tt.explicit)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnresolvedMimeType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAssignment_Due(t *testing.T) {
	a := Assignment{ID: 1, DueDate: "2019-01-07T23:59:00Z"}
	due, err := a.Due()
	require.NoError(t, err)
	assert.Equal(t, 7, due.Day())

	_, err = Assignment{ID: 2}.Due()
	assert.Error(t, err)
}
