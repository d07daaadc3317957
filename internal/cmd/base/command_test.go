package base

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markusproject/markusapi/pkg/markus"
)

func newTestCommand(env map[string]string) (*Command, *cli.MockUi, afero.Fs) {
	ui := cli.NewMockUi()
	fs := afero.NewMemMapFs()
	return &Command{
		UI:  ui,
		Log: hclog.NewNullLogger(),
		Fs:  fs,
		Getenv: func(name string) string {
			return env[name]
		},
	}, ui, fs
}

func TestOutput(t *testing.T) {
	groups := []markus.Group{{ID: 7, GroupName: "group_0007"}}

	tests := []struct {
		name   string
		format string
		value  any
		want   string
	}{
		{
			name:   "json",
			format: "json",
			value:  groups,
			want:   "[\n  {\n    \"id\": 7,\n    \"group_name\": \"group_0007\"\n  }\n]\n",
		},
		{
			name:   "yaml uses api field names",
			format: "yaml",
			value:  groups[0],
			want:   "group_name: group_0007\nid: 7\n",
		},
		{
			name:   "text prints strings verbatim",
			format: "text",
			value:  "a,b,c",
			want:   "a,b,c\n",
		},
		{
			name:   "text falls back to json",
			format: "text",
			value:  map[string]int{"g1": 1},
			want:   "{\n  \"g1\": 1\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ui, _ := newTestCommand(nil)
			f := c.NewFlagSet("test")
			require.NoError(t, f.Parse([]string{"-format", tt.format}))

			require.NoError(t, c.Output(tt.value))
			assert.Equal(t, tt.want, ui.OutputWriter.String())
		})
	}
}

func TestOutput_UnknownFormat(t *testing.T) {
	c, _, _ := newTestCommand(nil)
	f := c.NewFlagSet("test")
	require.NoError(t, f.Parse([]string{"-format", "xml"}))

	err := c.Output("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
}

func TestOutputResponse(t *testing.T) {
	c, ui, _ := newTestCommand(nil)

	code := c.OutputResponse(&markus.Response{StatusCode: 201, Reason: "Created", Body: []byte(`{"id":1}`)})
	assert.Equal(t, 0, code)
	assert.Equal(t, "201 Created\n{\"id\":1}\n", ui.OutputWriter.String())

	code = c.OutputResponse(&markus.Response{StatusCode: 422, Reason: "Unprocessable Entity", Body: []byte("bad")})
	assert.Equal(t, 1, code)
	assert.Equal(t, "422 Unprocessable Entity\nbad\n", ui.ErrorWriter.String())
}

func TestClient(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	c, _, fs := newTestCommand(map[string]string{"MARKUS_API_KEY": "from-env"})
	require.NoError(t, afero.WriteFile(fs, "markus.hcl", []byte(`
markus {
  url     = "http://unused.invalid"
  api_key = "from-file"
}
`), 0o600))

	f := c.NewFlagSet("test")
	require.NoError(t, f.Parse([]string{"-config", "markus.hcl", "-url", server.URL, "-log-level", "debug"}))

	client, err := c.Client()
	require.NoError(t, err)

	_, err = client.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "MarkUsAuth from-env", gotAuth)
}

func TestClient_MissingURL(t *testing.T) {
	c, _, _ := newTestCommand(nil)
	c.NewFlagSet("test")

	_, err := c.Client()
	require.Error(t, err)
}

func TestKeyValues(t *testing.T) {
	pairs, err := KeyValues([]string{"Style=8.5", "Correctness=nil", "note=a=b"})
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"Style", "8.5"},
		{"Correctness", "nil"},
		{"note", "a=b"},
	}, pairs)

	_, err = KeyValues([]string{"novalue"})
	assert.Error(t, err)

	_, err = KeyValues([]string{"=x"})
	assert.Error(t, err)
}

func TestFlagSetHelp(t *testing.T) {
	c, _, _ := newTestCommand(nil)
	help := c.NewFlagSet("test").Help()

	assert.Contains(t, help, "Options:")
	assert.Contains(t, help, "-api-key")
	assert.Contains(t, help, "MARKUS_API_KEY")
}
