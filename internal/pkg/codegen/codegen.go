package codegen

import (
	"context"
	"errors"
	"fmt"
)

// ExistsFunc reports whether a generated code is already taken.
// Repositories satisfy this with a SELECT EXISTS query.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// ErrExhausted is returned when no free code could be found within the
// retry budget. In practice this means the counter seed is badly stale.
var ErrExhausted = errors.New("code generation exhausted retry budget")

const maxAttempts = 1000

// Generator produces human-readable unique codes from a prefix and a
// running counter, e.g. EMP000042 or FIN000317.
type Generator struct {
	width int
}

func New() *Generator {
	return &Generator{width: 6}
}

// Format renders a single candidate without any uniqueness check.
func (g *Generator) Format(prefix string, seq int64) string {
	return fmt.Sprintf("%s%0*d", prefix, g.width, seq)
}

// Next generates the next free code starting from seed+1, re-checking
// each candidate against exists until one is free. The seed is usually
// the current row count of the target table; collisions from deleted
// or imported rows are absorbed by walking the counter forward.
func (g *Generator) Next(ctx context.Context, prefix string, seed int64, exists ExistsFunc) (string, error) {
	seq := seed
	for attempt := 0; attempt < maxAttempts; attempt++ {
		seq++
		code := g.Format(prefix, seq)
		taken, err := exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrExhausted
}
