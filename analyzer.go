// Package livevars provides a static analysis tool that computes which local
// variables may be live at the entry and exit of every basic block of a Go
// function, and reports stores whose value is never read.
//
// A variable is live at a point if some path from that point reads it
// before writing it. The analysis runs backward over each function's
// control flow graph, in the naive SSA form where locals stay in memory,
// and iterates to a fixed point.
package livevars

import (
	"go/ast"
	"reflect"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/livevars/internal"
	"github.com/mpyw/livevars/internal/directive"
	ssautil "github.com/mpyw/livevars/internal/ssa"
)

// Analyzer is the main analyzer for livevars.
var Analyzer = &analysis.Analyzer{
	Name:       "livevars",
	Doc:        "computes live variables per basic block and reports stores whose value is never read",
	Run:        run,
	ResultType: reflect.TypeOf(new(Result)),
}

var (
	debugFilter string
	strict      bool
	deadStores  bool
)

// The driver already owns -debug, so the debug filter is -dump.
func init() {
	Analyzer.Flags.StringVar(&debugFilter, "dump", "", "print liveness tables to stderr for functions matching this regexp")
	Analyzer.Flags.BoolVar(&strict, "strict", false, "report operands that resolve to neither a variable nor a constant")
	Analyzer.Flags.BoolVar(&deadStores, "deadstore", true, "report stores whose value is never read")
}

func run(pass *analysis.Pass) (any, error) {
	ssaInfo := ssautil.BuildPackage(pass)

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	// Build ignore directives for each file (excluding skipped files)
	ignores := make(map[string]*directive.Ignores)
	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignores[filename] = directive.ScanIgnores(pass.Fset, file)
	}

	results := internal.RunSSA(pass, ssaInfo, ignores, skipFiles, internal.Config{
		DebugFilter: debugFilter,
		Strict:      strict,
		DeadStores:  deadStores,
	})

	return newResult(results), nil
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
// Test files can be skipped via the driver's built-in -test flag.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename

		// Always skip generated files
		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}
