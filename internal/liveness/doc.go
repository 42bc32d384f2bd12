// Package liveness computes backward may-be-live variable analysis over the
// control flow graph of a single function.
//
// # Pipeline
//
//	┌──────────────┐    ┌────────────────────┐    ┌────────────────────┐
//	│ ir.Func      │ →  │ ComputeLocal       │ →  │ Solver             │
//	│ (read only)  │    │ per block, once:   │    │ sweeps to a fixed  │
//	│              │    │ Use, Kill          │    │ point: LiveIn,     │
//	│              │    │ (via Resolve)      │    │ LiveOut            │
//	└──────────────┘    └────────────────────┘    └────────────────────┘
//
// Analyze runs the whole pipeline and returns the per-block Facts.
//
// # Equations
//
//	LiveOut(b) = ⋃ LiveIn(s)   for s in Succs(b)
//	LiveIn(b)  = Use(b) ∪ (LiveOut(b) − Kill(b))
//
// Sets only grow between sweeps and are drawn from the finite set of
// variable names that occur in the function, so the solver terminates.
//
// # Operand resolution
//
// Variables live in memory cells; instructions reach them through store and
// load addresses. Resolve maps an operand to the variable it denotes:
//
//	store 1 -> x.addr        kill x
//	t0 = load x.addr         use x (unless defined or killed earlier)
//	store t0 -> y.addr       use x, kill y
//
// Operands that resolve to no variable (results of calls, field addresses
// and so on) never enter any set. With Options.Strict they are an error.
package liveness
