package livevars

import (
	"golang.org/x/tools/go/ssa"

	"github.com/mpyw/livevars/internal"
	"github.com/mpyw/livevars/internal/ir"
	"github.com/mpyw/livevars/internal/liveness"
)

// Result is the result of Analyzer: the liveness facts of every analyzed
// function of the package, anonymous functions included.
type Result struct {
	Functions map[*ssa.Function]*Function
}

// Function holds the facts of one function.
//
// Blocks are the function's own *ssa.BasicBlock values, in the naive SSA
// form the analyzer builds. Set accessors return sorted variable names and
// nil for a block of another function.
type Function struct {
	res *internal.FuncResult
}

func newResult(results map[*ssa.Function]*internal.FuncResult) *Result {
	r := &Result{Functions: make(map[*ssa.Function]*Function, len(results))}
	for fn, res := range results {
		r.Functions[fn] = &Function{res: res}
	}
	return r
}

// Lookup returns the facts of the function with the given name, as printed
// by (*ssa.Function).String, or nil.
func (r *Result) Lookup(name string) *Function {
	for fn, f := range r.Functions {
		if fn.String() == name {
			return f
		}
	}
	return nil
}

// Func returns the analyzed function.
func (f *Function) Func() *ssa.Function { return f.res.Lowered.Source }

// Sweeps returns the number of solver sweeps, including the final one that
// observed no change.
func (f *Function) Sweeps() int { return f.res.Facts.Sweeps() }

// Use returns the variables b reads before writing them.
func (f *Function) Use(b *ssa.BasicBlock) []string {
	return f.names(b, f.res.Facts.Use)
}

// Kill returns the variables b writes.
func (f *Function) Kill(b *ssa.BasicBlock) []string {
	return f.names(b, f.res.Facts.Kill)
}

// LiveIn returns the variables that may be live on entry to b.
func (f *Function) LiveIn(b *ssa.BasicBlock) []string {
	return f.names(b, f.res.Facts.LiveIn)
}

// LiveOut returns the variables that may be live on exit from b.
func (f *Function) LiveOut(b *ssa.BasicBlock) []string {
	return f.names(b, f.res.Facts.LiveOut)
}

func (f *Function) names(b *ssa.BasicBlock, set func(*ir.Block) liveness.VarSet) []string {
	blk := f.res.Lowered.Block(b)
	if blk == nil {
		return nil
	}
	return set(blk).Names()
}
