package tools

import (
	"github.com/mcpbase/mcpbase/internal/config"
	"github.com/mcpbase/mcpbase/internal/kvstore"
	"github.com/mcpbase/mcpbase/internal/query"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Store  *kvstore.Store
	Config *config.Config
	Query  *query.Engine
}
