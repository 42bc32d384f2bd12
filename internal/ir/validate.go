package ir

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned by Validate for input the analysis cannot accept.
var ErrMalformed = errors.New("malformed function")

// Validate checks the structural assumptions the analysis relies on:
//   - every block's Index matches its position in Blocks
//   - every edge is recorded on both ends and stays within f
//   - every store, load and binary instruction has its required operands
//
// Upstream front ends are expected to produce valid input; Validate turns a
// violation into an error instead of an index-out-of-range panic later.
func (f *Func) Validate() error {
	if f == nil {
		return fmt.Errorf("%w: nil function", ErrMalformed)
	}
	for i, b := range f.Blocks {
		if b == nil {
			return fmt.Errorf("%w: %s: block %d is nil", ErrMalformed, f.Name, i)
		}
		if b.Index != i {
			return fmt.Errorf("%w: %s: block at position %d has index %d", ErrMalformed, f.Name, i, b.Index)
		}
	}
	for _, b := range f.Blocks {
		for _, s := range b.Succs {
			if !f.owns(s) {
				return fmt.Errorf("%w: %s: successor of %s is not a block of the function", ErrMalformed, f.Name, b)
			}
			if !contains(s.Preds, b) {
				return fmt.Errorf("%w: %s: edge %s -> %s missing from predecessors", ErrMalformed, f.Name, b, s)
			}
		}
		for _, p := range b.Preds {
			if !f.owns(p) {
				return fmt.Errorf("%w: %s: predecessor of %s is not a block of the function", ErrMalformed, f.Name, b)
			}
			if !contains(p.Succs, b) {
				return fmt.Errorf("%w: %s: edge %s -> %s missing from successors", ErrMalformed, f.Name, p, b)
			}
		}
		for j, instr := range b.Instrs {
			if want := instr.Op.arity(); want >= 0 && len(instr.Operands) != want {
				return fmt.Errorf("%w: %s: block %s instruction %d: %s has %d operands, want %d",
					ErrMalformed, f.Name, b, j, instr.Op, len(instr.Operands), want)
			}
		}
	}
	return nil
}

func contains(blocks []*Block, b *Block) bool {
	for _, x := range blocks {
		if x == b {
			return true
		}
	}
	return false
}

// owns reports whether b is one of f's blocks. Indexes were checked first,
// so a block of f sits at its own index.
func (f *Func) owns(b *Block) bool {
	return b != nil && b.Index >= 0 && b.Index < len(f.Blocks) && f.Blocks[b.Index] == b
}
