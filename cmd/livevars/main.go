// Command livevars computes live variables per basic block and reports
// stores whose value is never read.
//
// Usage:
//
//	livevars ./...
//	livevars -dump 'pkg\.Func$' ./pkg
//
// Or as a vet tool:
//
//	go vet -vettool=$(which livevars) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/livevars"
)

func main() {
	singlechecker.Main(livevars.Analyzer)
}
