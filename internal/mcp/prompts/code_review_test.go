package prompts

import (
	"context"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptText(t *testing.T, res *sdkmcp.GetPromptResult) string {
	t.Helper()
	require.Len(t, res.Messages, 1)
	require.Equal(t, sdkmcp.Role("user"), res.Messages[0].Role)
	content, ok := res.Messages[0].Content.(*sdkmcp.TextContent)
	require.True(t, ok)
	return content.Text
}

func newTestHandler(t *testing.T) func(context.Context, *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	t.Helper()
	cache, err := newRenderCache(8)
	require.NoError(t, err)
	return HandleCodeReview(&Config{CacheMaxItems: 8}, cache)
}

func TestHandleCodeReview(t *testing.T) {
	h := newTestHandler(t)

	res, err := h(context.Background(), &sdkmcp.GetPromptRequest{
		Params: &sdkmcp.GetPromptParams{
			Arguments: map[string]string{
				"code":     "def hello(): return 'world'",
				"language": "python",
				"focus":    "best-practices",
			},
		},
	})
	require.NoError(t, err)

	text := promptText(t, res)
	assert.Contains(t, text, "# Code Review Request")
	assert.Contains(t, text, "def hello(): return 'world'")
	assert.Contains(t, text, "## Code to Review (Python)")
	assert.Contains(t, text, "**Primary Focus:** Best-Practices")
	assert.Contains(t, text, "PEP 8 compliance")
	assert.Contains(t, text, "python idioms and conventions")
	assert.Contains(t, text, "- **Code Length:** 27 characters")
}

func TestHandleCodeReviewDefaults(t *testing.T) {
	h := newTestHandler(t)

	res, err := h(context.Background(), &sdkmcp.GetPromptRequest{
		Params: &sdkmcp.GetPromptParams{},
	})
	require.NoError(t, err)

	text := promptText(t, res)
	assert.Contains(t, text, "# Your code here")
	assert.Contains(t, text, "- **Language:** python")
	assert.Contains(t, text, "- **Focus Area:** general")
}

func TestHandleCodeReviewUnknownLanguageAndFocus(t *testing.T) {
	h := newTestHandler(t)

	res, err := h(context.Background(), &sdkmcp.GetPromptRequest{
		Params: &sdkmcp.GetPromptParams{
			Arguments: map[string]string{"language": "cobol", "focus": "vibes"},
		},
	})
	require.NoError(t, err)

	text := promptText(t, res)
	assert.Contains(t, text, "Language-specific best practices")
	assert.Contains(t, text, "General code quality")
	assert.Contains(t, text, "## Code to Review (Cobol)")
}

func TestHandleCodeReviewCached(t *testing.T) {
	h := newTestHandler(t)
	req := &sdkmcp.GetPromptRequest{
		Params: &sdkmcp.GetPromptParams{
			Arguments: map[string]string{"code": "x = 1"},
		},
	}

	first, err := h(context.Background(), req)
	require.NoError(t, err)
	second, err := h(context.Background(), req)
	require.NoError(t, err)

	// Identical arguments hit the cache, so the rendered text (timestamp
	// included) is byte-for-byte stable.
	assert.Equal(t, promptText(t, first), promptText(t, second))
}

func TestRegister(t *testing.T) {
	srv := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "test", Version: "0.0.1"}, nil)
	err := Register(srv, &Config{CacheMaxItems: 4})
	assert.NoError(t, err)
}
