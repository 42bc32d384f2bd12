// Package ssa is the go/ssa front end of the liveness analysis.
//
// The package contains:
//   - BuildPackage: builds a pass's package in naive form, where locals stay
//     in Alloc cells and every access is an explicit Store or *addr load
//   - SourceFunctions: the declared functions and their closures
//   - Lower: translates an *ssa.Function into the liveness IR
//
// Lifted form (the default, and what buildssa produces) promotes most
// cells to registers and Phi nodes, which removes the stores and loads the
// analysis reasons about.
package ssa
