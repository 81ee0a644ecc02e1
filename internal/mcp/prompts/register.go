package prompts

import (
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all builtin prompts with the MCP server.
func Register(srv *sdkmcp.Server, cfg *Config) error {
	cache, err := newRenderCache(cfg.CacheMaxItems)
	if err != nil {
		return fmt.Errorf("creating prompt cache: %w", err)
	}

	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "code_review",
		Description: "Generate a comprehensive code review prompt template",
		Arguments: []*sdkmcp.PromptArgument{
			{
				Name:        "code",
				Description: "The source code to be reviewed",
				Required:    false,
			},
			{
				Name:        "language",
				Description: "Programming language of the code (default: python)",
				Required:    false,
			},
			{
				Name:        "focus",
				Description: "Review focus area: general, security, performance, readability, best-practices, or maintainability",
				Required:    false,
			},
		},
	}, HandleCodeReview(cfg, cache))

	return nil
}
