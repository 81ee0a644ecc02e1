package mcpsrv

import (
	"github.com/mcpbase/mcpbase/internal/config"
	"github.com/mcpbase/mcpbase/internal/kvstore"
	"github.com/mcpbase/mcpbase/internal/query"
)

// Deps contains all dependencies available to custom tools.
// This gives custom tools access to the same infrastructure as builtin tools.
type Deps struct {
	Store  *kvstore.Store
	Config *config.Config
	Query  *query.Engine
}
