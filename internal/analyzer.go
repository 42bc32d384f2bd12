// Package internal runs the liveness analysis over the functions of a pass.
//
// # Architecture
//
// This package serves as the bridge between the public analyzer and the
// analysis machinery:
//
//	┌─────────────────────────────────────────────────────────────────────────┐
//	│                         Analysis Flow                                    │
//	│                                                                          │
//	│   analyzer.go (public)                                                   │
//	│        │                                                                 │
//	│        ▼                                                                 │
//	│   internal/analyzer.go   ◀── You are here                                │
//	│   ┌─────────────────────────────────────────────────────────────────┐   │
//	│   │  RunSSA()                                                       │   │
//	│   │    │                                                            │   │
//	│   │    ├── Skip excluded files                                      │   │
//	│   │    ├── Lower each function (internal/ssa)                       │   │
//	│   │    ├── Solve liveness (internal/liveness)                       │   │
//	│   │    ├── Find dead stores (internal/deadstore)                    │   │
//	│   │    └── Apply ignore directives                                  │   │
//	│   └─────────────────────────────────────────────────────────────────┘   │
//	└─────────────────────────────────────────────────────────────────────────┘
//
// # Responsibilities
//
//   - Orchestrate the analysis for all source functions
//   - Report analysis errors at the function position
//   - Report dead stores unless suppressed by ignore directives
//   - Report unused ignore directives
//   - Print fact tables for functions matching the debug filter
package internal

import (
	"fmt"
	"go/token"
	"os"
	"regexp"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ssa"

	"github.com/mpyw/livevars/internal/deadstore"
	"github.com/mpyw/livevars/internal/debug"
	"github.com/mpyw/livevars/internal/directive"
	"github.com/mpyw/livevars/internal/liveness"
	ssautil "github.com/mpyw/livevars/internal/ssa"
)

// Config holds the analyzer flags.
type Config struct {
	DebugFilter string // regexp over function names; empty disables
	Strict      bool   // report unresolvable operands as errors
	DeadStores  bool   // report stores whose value is never read
}

// FuncResult is the analysis outcome of one function.
type FuncResult struct {
	Lowered *ssautil.Lowered
	Facts   *liveness.Facts
}

// =============================================================================
// Entry Point
// =============================================================================

// RunSSA analyzes every source function and returns the results keyed by
// function. Functions that failed analysis are reported and left out.
//
// Processing flow for each function:
//  1. Skip if file is excluded (generated files, etc.)
//  2. Lower to the liveness IR and solve
//  3. Report dead stores (unless suppressed by an ignore directive)
//  4. Print the fact table if the debug filter matches
//
// Unused ignore directives are reported last.
func RunSSA(
	pass *analysis.Pass,
	ssaInfo *ssautil.SSA,
	ignores map[string]*directive.Ignores,
	skipFiles map[string]bool,
	cfg Config,
) map[*ssa.Function]*FuncResult {
	// Compile debug filter regex if provided
	var debugFilterRegex *regexp.Regexp
	if cfg.DebugFilter != "" {
		var err error
		debugFilterRegex, err = regexp.Compile(cfg.DebugFilter)
		if err != nil {
			// Report regex error but continue analysis without debug mode
			pass.Reportf(token.NoPos, "invalid debug filter regex: %v", err)
			debugFilterRegex = nil
		}
	}

	results := make(map[*ssa.Function]*FuncResult, len(ssaInfo.SrcFuncs))
	for _, fn := range ssaInfo.SrcFuncs {
		pos := fn.Pos()
		if !pos.IsValid() {
			continue
		}

		filename := pass.Fset.Position(pos).Filename

		// Skip functions in excluded files
		if skipFiles[filename] {
			continue
		}

		chk := newChecker(pass, ignores[filename], cfg, debugFilterRegex)
		if res := chk.checkFunction(fn); res != nil {
			results[fn] = res
		}
	}

	// Report unused ignore directives. Directives only suppress dead
	// stores, so without that check every directive is unused.
	for _, ig := range ignores {
		if ig == nil || !cfg.DeadStores {
			continue
		}
		for _, pos := range ig.Unused() {
			pass.Reportf(pos, "unused livevars:ignore directive")
		}
	}

	return results
}

// =============================================================================
// Checker
// =============================================================================

// checker wraps the per-function analysis with ignore directive handling.
//
// It ensures:
//   - Dead stores at the same position are only reported once
//   - Function-level and line-level ignore directives suppress reports
//   - Reports go through the analysis.Pass
type checker struct {
	pass             *analysis.Pass     // For reporting diagnostics
	ignores          *directive.Ignores // Ignore directives of the file (may be nil)
	cfg              Config             // Analyzer flags
	reported         map[token.Pos]bool // Deduplication of reports
	debugFilterRegex *regexp.Regexp     // Debug filter regex (nil if disabled)
}

// newChecker creates a new checker for a specific file.
func newChecker(pass *analysis.Pass, ignores *directive.Ignores, cfg Config, debugFilterRegex *regexp.Regexp) *checker {
	return &checker{
		pass:             pass,
		ignores:          ignores,
		cfg:              cfg,
		reported:         make(map[token.Pos]bool),
		debugFilterRegex: debugFilterRegex,
	}
}

// checkFunction analyzes a single function and reports its dead stores.
func (c *checker) checkFunction(fn *ssa.Function) *FuncResult {
	// Check if debug mode is enabled for this function
	debugMode := c.debugFilterRegex != nil && c.debugFilterRegex.MatchString(fn.String())

	opts := liveness.Options{Strict: c.cfg.Strict}
	var rec *debug.Recorder
	if debugMode {
		rec = debug.NewRecorder()
		opts.OnUpdate = rec.Record
		opts.Logger = debugLogger()
	}

	lowered := ssautil.Lower(fn)
	facts, err := liveness.Analyze(lowered.Func, opts)
	if err != nil {
		c.pass.Reportf(fn.Pos(), "livevars: %v", err)
		return nil
	}

	var dead []deadstore.Store
	if c.cfg.DeadStores || debugMode {
		dead = deadstore.Find(lowered.Func, facts)
	}

	// Output debug info if enabled
	if debugMode {
		fmt.Fprintf(os.Stderr, "\n=== Debug output for %s ===\n", fn.String())
		report := debug.NewReport(lowered.Func, facts, dead, rec)
		if err := debug.NewFormatter(c.pass.Fset, !color.NoColor).Format(os.Stderr, report); err != nil {
			c.pass.Reportf(fn.Pos(), "livevars: debug output: %v", err)
		}
	}

	if c.cfg.DeadStores && !c.functionIgnored(fn) {
		for _, s := range dead {
			if pos, ok := sourceStore(lowered, s); ok {
				c.report(pos, fmt.Sprintf("value stored to %s is never read", s.Var))
			}
		}
	}

	return &FuncResult{Lowered: lowered, Facts: facts}
}

// functionIgnored reports whether fn or the declaration enclosing it
// carries a function-level ignore directive.
func (c *checker) functionIgnored(fn *ssa.Function) bool {
	if c.ignores == nil {
		return false
	}
	for fn.Parent() != nil {
		fn = fn.Parent()
	}
	return c.ignores.SuppressesFunc(fn.Pos())
}

// report reports a dead store if not ignored or already reported.
func (c *checker) report(pos token.Pos, message string) {
	// Deduplicate: same position may be reached multiple times
	if c.reported[pos] {
		return
	}
	c.reported[pos] = true

	// Check if line is ignored
	line := c.pass.Fset.Position(pos).Line
	if c.ignores != nil && c.ignores.Suppresses(line) {
		return // Suppressed by ignore directive
	}

	c.pass.Reportf(pos, "%s", message)
}

// sourceStore returns the position of a dead store that the user wrote.
//
// Stores the builder synthesizes are excluded: parameter spills and copies
// of per-iteration loop variables (no position). So are stores to cells
// that escape to the heap, which closures or pointers may read later, and
// stores to results the Recover block returns, which a recovered panic
// between two stores in one block exposes.
func sourceStore(l *ssautil.Lowered, s deadstore.Store) (token.Pos, bool) {
	st, ok := l.Origin(s.Instr).(*ssa.Store)
	if !ok {
		return token.NoPos, false
	}
	alloc, ok := st.Addr.(*ssa.Alloc)
	if !ok || alloc.Heap || !ssautil.IsSourceVariable(alloc) {
		return token.NoPos, false
	}
	if _, ok := st.Val.(*ssa.Parameter); ok {
		return token.NoPos, false
	}
	if recoverReads(l.Source, alloc) {
		return token.NoPos, false
	}
	if !st.Pos().IsValid() {
		return token.NoPos, false
	}
	return st.Pos(), true
}

// recoverReads reports whether fn's Recover block loads alloc.
func recoverReads(fn *ssa.Function, alloc *ssa.Alloc) bool {
	if fn.Recover == nil {
		return false
	}
	for _, instr := range fn.Recover.Instrs {
		if load, ok := instr.(*ssa.UnOp); ok && load.Op == token.MUL && load.X == alloc {
			return true
		}
	}
	return false
}

// debugLogger returns a development logger writing to stderr, or a no-op
// logger if it cannot be built.
func debugLogger() *zap.Logger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger.Named("livevars")
}
