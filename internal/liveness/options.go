package liveness

import (
	"go.uber.org/zap"

	"github.com/mpyw/livevars/internal/ir"
)

// Options configures an analysis run. The zero value is ready to use.
type Options struct {
	// Strict rejects operands that resolve to neither a constant nor a
	// variable with an error wrapping ErrUnresolved. By default such
	// operands are counted (Facts.Unresolved) and otherwise ignored.
	Strict bool

	// EraseKilledResults removes a binary operation's result identity from
	// the block's Use set when that identity was already killed earlier in
	// the block. Result identities name temporaries, not variables, so the
	// rule is off by default.
	EraseKilledResults bool

	// Logger receives debug-level progress messages. Nil disables logging.
	Logger *zap.Logger

	// OnUpdate, if set, is called whenever the solver changes a block's
	// LiveIn or LiveOut.
	OnUpdate func(Update)
}

// Update describes one solver change to a block.
type Update struct {
	Sweep   int // 1-based
	Block   *ir.Block
	LiveIn  VarSet
	LiveOut VarSet
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
