package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/worklog/internal/config"
	"github.com/manav03panchal/worklog/internal/output"
)

// =============================================================================
// Context Tests
// =============================================================================

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.NotEmpty(t, opts.DBPath)
	assert.False(t, opts.InMemory)
	assert.Equal(t, output.FormatCLI, opts.Format)
	assert.Equal(t, output.ColorAuto, opts.ColorMode)
	assert.False(t, opts.Debug)
}

func TestNew(t *testing.T) {
	ctx, err := New(Options{InMemory: true})
	require.NoError(t, err)
	defer ctx.Close()

	assert.NotNil(t, ctx.DB)
	assert.NotNil(t, ctx.Entries)
	assert.NotNil(t, ctx.Service)
	assert.NotNil(t, ctx.Formatter)
}

func TestNewWithOptions(t *testing.T) {
	ctx, err := New(Options{
		InMemory:  true,
		Format:    output.FormatJSON,
		ColorMode: output.ColorNever,
		Debug:     true,
	})
	require.NoError(t, err)
	defer ctx.Close()

	assert.Equal(t, output.FormatJSON, ctx.Formatter.Format)
	assert.Equal(t, output.ColorNever, ctx.Formatter.ColorMode)
	assert.True(t, ctx.Debug)
	assert.True(t, ctx.IsJSON())
}

func TestNewWithEnvVariable(t *testing.T) {
	t.Setenv("WORKLOG_DATABASE", ":memory:")
	config.Global.ReloadFromEnv()
	t.Cleanup(func() { config.Global.Reset() })

	ctx, err := New(Options{})
	require.NoError(t, err)
	defer ctx.Close()

	assert.Empty(t, ctx.DB.Path())
}

func TestCLIFormatter(t *testing.T) {
	ctx, err := New(Options{InMemory: true})
	require.NoError(t, err)
	defer ctx.Close()

	assert.NotNil(t, ctx.CLIFormatter())
}

func TestCloseIsIdempotentOnNilDB(t *testing.T) {
	ctx := &Context{}
	assert.NoError(t, ctx.Close())
}
