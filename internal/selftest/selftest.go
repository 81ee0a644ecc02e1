// Package selftest runs a quick end-to-end exercise of the builtin
// components without any transport attached. It is wired to the
// -self-test flag of the mcpbase binary and doubles as a smoke test
// for packaging.
package selftest

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mcpbase/mcpbase/internal/mcp/prompts"
	"github.com/mcpbase/mcpbase/internal/mcp/tools"
	"github.com/mcpbase/mcpbase/internal/result"
)

// Run executes all self-test checks concurrently and returns the first
// failure, if any.
func Run(ctx context.Context, d *tools.Deps) error {
	checks := []struct {
		name string
		fn   func(context.Context, *tools.Deps) error
	}{
		{"store", checkStore},
		{"echo", checkEcho},
		{"reverse", checkReverse},
		{"calculator", checkCalculator},
		{"prompt", checkPrompt},
		{"config", checkConfig},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range checks {
		g.Go(func() error {
			if err := c.fn(gctx, d); err != nil {
				return fmt.Errorf("%s: %w", c.name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func expectSuccess(env result.Envelope) error {
	if env.IsError() {
		return fmt.Errorf("unexpected error envelope: %s", env.Error)
	}
	return nil
}

func checkStore(ctx context.Context, d *tools.Deps) error {
	const key = "selftest_probe"
	d.Store.Set(key, "probe")
	v, ok := d.Store.Get(key)
	if !ok || v != "probe" {
		return fmt.Errorf("round-trip failed: got %v (found=%v)", v, ok)
	}
	if !d.Store.Delete(key) {
		return fmt.Errorf("delete reported key missing")
	}
	return nil
}

func checkEcho(ctx context.Context, d *tools.Deps) error {
	env := tools.ToolEcho(d)(ctx, tools.EchoInput{Message: "ping"})
	if err := expectSuccess(env); err != nil {
		return err
	}
	if env.Result != "Echo: ping" {
		return fmt.Errorf("got %v", env.Result)
	}
	return nil
}

func checkReverse(ctx context.Context, d *tools.Deps) error {
	env := tools.ToolReverse(d)(ctx, tools.ReverseInput{Text: "abc"})
	if err := expectSuccess(env); err != nil {
		return err
	}
	if env.Result != "cba" {
		return fmt.Errorf("got %v", env.Result)
	}
	return nil
}

func checkCalculator(ctx context.Context, d *tools.Deps) error {
	handler := tools.ToolCalculator(d)

	env := handler(ctx, tools.CalculatorInput{Operation: "add", A: 5, B: 3})
	if err := expectSuccess(env); err != nil {
		return err
	}
	if env.Result != float64(8) {
		return fmt.Errorf("5 + 3 produced %v", env.Result)
	}

	env = handler(ctx, tools.CalculatorInput{Operation: "divide", A: 1, B: 0})
	if !env.IsError() {
		return fmt.Errorf("division by zero did not produce an error envelope")
	}
	return nil
}

func checkPrompt(ctx context.Context, d *tools.Deps) error {
	text := prompts.RenderCodeReview("print('hi')", "python", "security")
	if !strings.Contains(text, "Code Review Request") {
		return fmt.Errorf("rendered prompt is missing its header")
	}
	return nil
}

func checkConfig(ctx context.Context, d *tools.Deps) error {
	cfg := d.Config
	if cfg.KVStoreURI == "" {
		return fmt.Errorf("kv store URI is empty")
	}
	if cfg.PromptCacheMaxItems <= 0 {
		return fmt.Errorf("prompt cache size %d is not positive", cfg.PromptCacheMaxItems)
	}
	return nil
}
