// Package deadstore finds stores whose value no path ever reads.
//
// It is a consumer of converged liveness facts: each block is walked
// backward starting from its LiveOut set, so liveness is known at every
// instruction boundary without re-solving.
package deadstore

import (
	"github.com/mpyw/livevars/internal/ir"
	"github.com/mpyw/livevars/internal/liveness"
)

// Store is a store to a variable that is not live immediately after it.
type Store struct {
	Instr *ir.Instr
	Var   string
}

// Find returns the dead stores of fn in block and instruction order.
// facts must have been computed for fn.
//
// Stores whose destination does not resolve to a variable are never
// reported.
func Find(fn *ir.Func, facts *liveness.Facts) []Store {
	var found []Store
	for _, b := range fn.Blocks {
		found = append(found, findInBlock(b, facts.LiveOut(b))...)
	}
	return found
}

func findInBlock(b *ir.Block, liveOut liveness.VarSet) []Store {
	live := make(map[string]bool, liveOut.Len())
	for _, name := range liveOut.Names() {
		live[name] = true
	}

	var dead []Store
	for i := len(b.Instrs) - 1; i >= 0; i-- {
		instr := b.Instrs[i]
		switch instr.Op {
		case ir.OpStore:
			if dst := liveness.Resolve(instr.Operands[1]); dst.IsVariable() {
				if !live[dst.Name] {
					dead = append(dead, Store{Instr: instr, Var: dst.Name})
				}
				delete(live, dst.Name)
			}
			use(live, instr.Operands[0])
		case ir.OpLoad:
			use(live, instr.Operands[0])
		case ir.OpBinary:
			if instr.Result != "" {
				delete(live, liveness.StripSuffix(instr.Result))
			}
			use(live, instr.Operands[0])
			use(live, instr.Operands[1])
		}
	}

	// Collected backward.
	for l, r := 0, len(dead)-1; l < r; l, r = l+1, r-1 {
		dead[l], dead[r] = dead[r], dead[l]
	}
	return dead
}

func use(live map[string]bool, op ir.Operand) {
	if res := liveness.Resolve(op); res.IsVariable() {
		live[res.Name] = true
	}
}
