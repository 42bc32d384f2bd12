package liveness

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/mpyw/livevars/internal/ir"
)

// blockFacts holds the sets of one block. use and kill are fixed after the
// local pass; in and out are replaced (never mutated) by the solver.
type blockFacts struct {
	use, kill  *bitset.BitSet
	in, out    *bitset.BitSet
	unresolved int
}

// Facts is the per-block fact table of one function.
type Facts struct {
	fn     *ir.Func
	u      *Universe
	blocks map[*ir.Block]*blockFacts
	sweeps int
}

// NewFacts creates a table with empty sets for every block of fn.
func NewFacts(fn *ir.Func, u *Universe) *Facts {
	f := &Facts{
		fn:     fn,
		u:      u,
		blocks: make(map[*ir.Block]*blockFacts, len(fn.Blocks)),
	}
	for _, b := range fn.Blocks {
		f.blocks[b] = &blockFacts{
			use:  bitset.New(0),
			kill: bitset.New(0),
			in:   bitset.New(0),
			out:  bitset.New(0),
		}
	}
	return f
}

// SetLocal records the result of ComputeLocal for b.
func (f *Facts) SetLocal(b *ir.Block, local Local) {
	bf := f.block(b)
	if local.Use.bits != nil {
		bf.use = local.Use.bits
	}
	if local.Kill.bits != nil {
		bf.kill = local.Kill.bits
	}
	bf.unresolved = local.Unresolved
}

// Func returns the analyzed function.
func (f *Facts) Func() *ir.Func { return f.fn }

// Universe returns the variable universe of the run.
func (f *Facts) Universe() *Universe { return f.u }

// Sweeps returns the number of solver sweeps Analyze needed, including the
// final sweep that confirmed convergence.
func (f *Facts) Sweeps() int { return f.sweeps }

// Use returns the upward-exposed uses of b.
func (f *Facts) Use(b *ir.Block) VarSet { return newVarSet(f.u, f.block(b).use) }

// Kill returns the variables stored to in b.
func (f *Facts) Kill(b *ir.Block) VarSet { return newVarSet(f.u, f.block(b).kill) }

// LiveIn returns the variables live on entry to b.
func (f *Facts) LiveIn(b *ir.Block) VarSet { return newVarSet(f.u, f.block(b).in) }

// LiveOut returns the variables live on exit from b.
func (f *Facts) LiveOut(b *ir.Block) VarSet { return newVarSet(f.u, f.block(b).out) }

// Unresolved returns how many operands of b resolved to no identity.
func (f *Facts) Unresolved(b *ir.Block) int { return f.block(b).unresolved }

func (f *Facts) block(b *ir.Block) *blockFacts {
	bf, ok := f.blocks[b]
	if !ok {
		panic("liveness: block " + b.String() + " does not belong to " + f.fn.Name)
	}
	return bf
}
