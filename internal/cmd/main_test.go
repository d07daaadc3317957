package cmd

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markusproject/markusapi/internal/cmd/base"
	"github.com/markusproject/markusapi/internal/version"
)

func TestRun_Version(t *testing.T) {
	ui := cli.NewMockUi()

	code := run("markus", []string{"markus", "version"}, hclog.NewNullLogger(), ui)
	assert.Equal(t, 0, code)
	assert.Equal(t, version.Version+"\n", ui.OutputWriter.String())
}

func TestCommandFactories(t *testing.T) {
	factories := commandFactories(&base.Command{UI: cli.NewMockUi(), Log: hclog.NewNullLogger()})

	for _, name := range []string{
		"annotations",
		"assignments",
		"feedback",
		"feedback get",
		"feedback list",
		"feedback upload",
		"groups",
		"marking-state",
		"marks",
		"request",
		"spreadsheet",
		"test-results",
		"users",
		"version",
	} {
		factory, ok := factories[name]
		require.True(t, ok, name)

		c, err := factory()
		require.NoError(t, err)
		assert.NotEmpty(t, c.Synopsis(), name)
		assert.NotEmpty(t, c.Help(), name)
	}
	assert.Len(t, factories, 14)
}
