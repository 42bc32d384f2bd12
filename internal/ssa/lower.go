package ssa

import (
	"go/token"

	"golang.org/x/tools/go/ssa"

	"github.com/mpyw/livevars/internal/ir"
	"github.com/mpyw/livevars/internal/liveness"
)

// syntheticCells are Alloc comments the builder uses for cells that do not
// correspond to a source variable.
var syntheticCells = map[string]bool{
	"complit":    true,
	"slicelit":   true,
	"varargs":    true,
	"new":        true,
	"makeslice":  true,
	"rangeindex": true,
}

// Lowered is the IR of one SSA function together with the mapping back.
type Lowered struct {
	Func   *ir.Func
	Source *ssa.Function

	blocks map[*ssa.BasicBlock]*ir.Block
	origin map[*ir.Instr]ssa.Instruction
}

// Block returns the IR block lowered from b, or nil.
func (l *Lowered) Block(b *ssa.BasicBlock) *ir.Block {
	return l.blocks[b]
}

// Origin returns the SSA instruction instr was lowered from.
func (l *Lowered) Origin(instr *ir.Instr) ssa.Instruction {
	return l.origin[instr]
}

// Lower translates fn into the liveness IR.
//
// Instruction mapping:
//
//	*ssa.Store            → store Val, Addr
//	*ssa.UnOp (*x)        → load X
//	*ssa.BinOp            → %tN = binary X, Y
//	everything else       → other
//
// Stores into and loads from builder cells (unnamed results, defer$stack,
// composite literal temporaries) are lowered to other: they move values
// between compiler temporaries and never touch a variable.
//
// Operand mapping:
//
//	*ssa.Const                      → constant
//	*ssa.Alloc (source variable)    → named by its comment
//	*ssa.Parameter, FreeVar, Global → named by their name
//	*ssa.Phi over variable cells    → named by its comment
//	load                            → unnamed, chased through its address
//	binary operation                → named %tN
//	anything else                   → opaque
//
// Binary results carry the liveness.TempPrefix sigil, so they never collide
// with a Go identifier and stay out of every liveness set.
//
// If fn has a Recover block, every other block gets an edge to it: a panic
// recovered by a deferred call resumes there and returns the named results
// as they were at the panic.
//
// fn is not modified.
func Lower(fn *ssa.Function) *Lowered {
	l := &Lowered{
		Func:   ir.NewFunc(fn.String()),
		Source: fn,
		blocks: make(map[*ssa.BasicBlock]*ir.Block, len(fn.Blocks)),
		origin: make(map[*ir.Instr]ssa.Instruction),
	}
	l.Func.Pos = fn.Pos()

	for _, b := range fn.Blocks {
		l.blocks[b] = l.Func.NewBlock(b.Comment)
	}
	for _, b := range fn.Blocks {
		blk := l.blocks[b]
		for _, s := range b.Succs {
			blk.Succs = append(blk.Succs, l.blocks[s])
		}
		for _, p := range b.Preds {
			blk.Preds = append(blk.Preds, l.blocks[p])
		}
	}

	if fn.Recover != nil {
		addPanicEdges(l.Func, l.blocks[fn.Recover])
	}

	// Two passes: an operand may refer to a value defined in a block that
	// comes later in block order.
	values := make(map[ssa.Value]*ir.Instr)
	var pending []*ir.Instr
	for _, b := range fn.Blocks {
		blk := l.blocks[b]
		for _, instr := range b.Instrs {
			lowered := blk.Append(shell(instr))
			l.origin[lowered] = instr
			if v, ok := instr.(ssa.Value); ok && lowered.Op != ir.OpOther {
				values[v] = lowered
			}
			pending = append(pending, lowered)
		}
	}
	for _, lowered := range pending {
		lowered.Operands = operands(lowered, l.origin[lowered], values)
	}
	return l
}

// shell creates the IR instruction for instr without operands.
func shell(instr ssa.Instruction) *ir.Instr {
	out := &ir.Instr{Op: ir.OpOther, Pos: instr.Pos(), Text: render(instr)}
	switch instr := instr.(type) {
	case *ssa.Store:
		if !isBuilderCell(instr.Addr) {
			out.Op = ir.OpStore
		}
	case *ssa.UnOp:
		if instr.Op == token.MUL && !isBuilderCell(instr.X) {
			out.Op = ir.OpLoad
		}
	case *ssa.BinOp:
		out.Op = ir.OpBinary
		out.Result = liveness.TempPrefix + instr.Name()
	}
	return out
}

func operands(lowered *ir.Instr, instr ssa.Instruction, values map[ssa.Value]*ir.Instr) []ir.Operand {
	switch instr := instr.(type) {
	case *ssa.Store:
		if lowered.Op == ir.OpStore {
			return []ir.Operand{operand(instr.Val, values), operand(instr.Addr, values)}
		}
	case *ssa.UnOp:
		if lowered.Op == ir.OpLoad {
			return []ir.Operand{operand(instr.X, values)}
		}
	case *ssa.BinOp:
		return []ir.Operand{operand(instr.X, values), operand(instr.Y, values)}
	}
	return nil
}

// addPanicEdges links every block of fn except rb to rb.
func addPanicEdges(fn *ir.Func, rb *ir.Block) {
	for _, b := range fn.Blocks {
		if b == rb || hasSucc(b, rb) {
			continue
		}
		ir.AddEdge(b, rb)
	}
}

func hasSucc(b, succ *ir.Block) bool {
	for _, s := range b.Succs {
		if s == succ {
			return true
		}
	}
	return false
}

func operand(v ssa.Value, values map[ssa.Value]*ir.Instr) ir.Operand {
	switch v := v.(type) {
	case *ssa.Const:
		return ir.Const()
	case *ssa.Alloc:
		if IsSourceVariable(v) {
			return ir.Var(v.Comment)
		}
	case *ssa.Parameter:
		return ir.Var(v.Name())
	case *ssa.FreeVar:
		return ir.Var(v.Name())
	case *ssa.Global:
		return ir.Var(v.Name())
	case *ssa.Phi:
		if isCellPhi(v) {
			return ir.Var(v.Comment)
		}
	case *ssa.UnOp, *ssa.BinOp:
		if def, ok := values[v]; ok {
			return ir.ValueOf(def)
		}
	}
	return ir.Opaque()
}

// IsSourceVariable reports whether alloc is the cell of a named variable
// rather than a builder temporary or an unnamed result.
func IsSourceVariable(alloc *ssa.Alloc) bool {
	return token.IsIdentifier(alloc.Comment) && alloc.Comment != "_" && !syntheticCells[alloc.Comment]
}

// isBuilderCell reports whether v is an Alloc the builder made for its own
// bookkeeping rather than for a source variable.
func isBuilderCell(v ssa.Value) bool {
	alloc, ok := v.(*ssa.Alloc)
	return ok && !IsSourceVariable(alloc)
}

// isCellPhi reports whether phi merges cells of one variable, as the
// builder does for per-iteration loop variables.
func isCellPhi(phi *ssa.Phi) bool {
	if !token.IsIdentifier(phi.Comment) || len(phi.Edges) == 0 {
		return false
	}
	for _, e := range phi.Edges {
		alloc, ok := e.(*ssa.Alloc)
		if !ok || alloc.Comment != phi.Comment {
			return false
		}
	}
	return true
}

func render(instr ssa.Instruction) string {
	if v, ok := instr.(ssa.Value); ok {
		return v.Name() + " = " + instr.String()
	}
	return instr.String()
}
