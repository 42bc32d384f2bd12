package liveness

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mpyw/livevars/internal/ir"
)

// Analyze computes the liveness facts of fn.
//
// fn is validated first; a malformed function yields an error wrapping
// ir.ErrMalformed. In strict mode an unresolvable operand yields an error
// wrapping ErrUnresolved. fn itself is never modified.
func Analyze(fn *ir.Func, opts Options) (*Facts, error) {
	if err := fn.Validate(); err != nil {
		return nil, err
	}

	u := NewUniverse()
	facts := NewFacts(fn, u)
	for _, b := range fn.Blocks {
		local, err := ComputeLocal(b, u, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn.Name, err)
		}
		facts.SetLocal(b, local)
	}

	sweeps := NewSolver(facts, opts).Solve()
	facts.sweeps = sweeps

	opts.logger().Debug("liveness converged",
		zap.String("func", fn.Name),
		zap.Int("blocks", len(fn.Blocks)),
		zap.Int("vars", u.Len()),
		zap.Int("sweeps", sweeps))
	return facts, nil
}
