package liveness

import (
	"testing"

	"github.com/mpyw/livevars/internal/ir"
)

// assertSet fails the test unless got has exactly the names in want.
func assertSet(t *testing.T, what string, got VarSet, want ...string) {
	t.Helper()
	if !equalNames(got.Names(), sortedCopy(want)) {
		t.Errorf("%s = %s, want {%s}", what, got, joinNames(sortedCopy(want)))
	}
}

// checkFixpoint verifies the dataflow equations hold for every block.
func checkFixpoint(t *testing.T, fn *ir.Func, facts *Facts) {
	t.Helper()
	for _, b := range fn.Blocks {
		wantOut := map[string]bool{}
		for _, s := range b.Succs {
			for _, n := range facts.LiveIn(s).Names() {
				wantOut[n] = true
			}
		}
		wantIn := map[string]bool{}
		for n := range wantOut {
			if !facts.Kill(b).Has(n) {
				wantIn[n] = true
			}
		}
		for _, n := range facts.Use(b).Names() {
			wantIn[n] = true
		}
		assertSet(t, "LiveOut("+b.String()+")", facts.LiveOut(b), keys(wantOut)...)
		assertSet(t, "LiveIn("+b.String()+")", facts.LiveIn(b), keys(wantIn)...)
	}
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func sortedCopy(names []string) []string {
	u := NewUniverse()
	return newTestSet(u, names...).Names()
}

func joinNames(names []string) string {
	s := ""
	for i, n := range names {
		if i > 0 {
			s += ", "
		}
		s += n
	}
	return s
}
