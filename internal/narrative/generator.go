// Package narrative produces the sectioned business narratives the
// frameworks engine consumes, either through the Anthropic API or a
// deterministic offline mock.
package narrative

import "context"

// Generator turns an analysis prompt into a narrative. Implementations own
// their timeout and retry semantics; callers bound the call with ctx.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
