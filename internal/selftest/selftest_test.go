package selftest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpbase/mcpbase/internal/config"
	"github.com/mcpbase/mcpbase/internal/kvstore"
	"github.com/mcpbase/mcpbase/internal/mcp/tools"
	"github.com/mcpbase/mcpbase/internal/query"
)

func TestRunPasses(t *testing.T) {
	cfg := config.Load()
	d := &tools.Deps{
		Store:  kvstore.New(config.DefaultSeed()),
		Config: cfg,
		Query:  query.NewEngine(),
	}

	require.NoError(t, Run(context.Background(), d))

	// The probe key must not survive the run.
	_, ok := d.Store.Get("selftest_probe")
	assert.False(t, ok)
}

func TestRunReportsBadConfig(t *testing.T) {
	cfg := config.Load()
	cfg.KVStoreURI = ""
	d := &tools.Deps{
		Store:  kvstore.New(nil),
		Config: cfg,
		Query:  query.NewEngine(),
	}

	err := Run(context.Background(), d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config:")
}
