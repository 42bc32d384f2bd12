package liveness

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mpyw/livevars/internal/ir"
)

// =============================================================================
// Analyze Tests
// =============================================================================

func TestAnalyze_EmptyFunction(t *testing.T) {
	t.Parallel()

	facts := analyze(t, ir.NewFunc("empty"), Options{})
	if facts.Universe().Len() != 0 {
		t.Errorf("universe has %d names, want 0", facts.Universe().Len())
	}
	if facts.Sweeps() != 1 {
		t.Errorf("Sweeps() = %d, want 1", facts.Sweeps())
	}
}

func TestAnalyze_Malformed(t *testing.T) {
	t.Parallel()

	fn := ir.NewFunc("bad")
	b := fn.NewBlock("entry")
	b.Append(&ir.Instr{Op: ir.OpStore, Operands: []ir.Operand{ir.Const()}})

	_, err := Analyze(fn, Options{})
	if !errors.Is(err, ir.ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestAnalyze_StrictNamesFunction(t *testing.T) {
	t.Parallel()

	fn := ir.NewFunc("pkg.F")
	fn.NewBlock("entry").Load(ir.Opaque())

	_, err := Analyze(fn, Options{Strict: true})
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("err = %v, want ErrUnresolved", err)
	}
	if got := err.Error(); !strings.HasPrefix(got, "pkg.F: ") {
		t.Errorf("error %q should start with the function name", got)
	}
}

func TestAnalyze_UnresolvedCounted(t *testing.T) {
	t.Parallel()

	fn := ir.NewFunc("f")
	b := fn.NewBlock("entry")
	b.Load(ir.Opaque())
	b.Store(ir.Const(), ir.Opaque())

	facts := analyze(t, fn, Options{})
	if got := facts.Unresolved(b); got != 2 {
		t.Errorf("Unresolved = %d, want 2", got)
	}
}

func TestAnalyze_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	fn := complexCFG()
	var counts []int
	for _, b := range fn.Blocks {
		counts = append(counts, len(b.Instrs), len(b.Succs), len(b.Preds))
	}

	analyze(t, fn, Options{})

	i := 0
	for _, b := range fn.Blocks {
		if counts[i] != len(b.Instrs) || counts[i+1] != len(b.Succs) || counts[i+2] != len(b.Preds) {
			t.Errorf("block %s was modified", b)
		}
		i += 3
	}
}

func TestAnalyze_ForeignBlockPanics(t *testing.T) {
	t.Parallel()

	facts := analyze(t, complexCFG(), Options{})
	other := ir.NewFunc("other").NewBlock("entry")

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a block of another function")
		}
	}()
	facts.LiveIn(other)
}

func TestAnalyze_Logs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	fn, _, _ := twoBlock()
	analyze(t, fn, Options{Logger: zap.New(core)})

	if n := logs.FilterMessage("liveness sweep").Len(); n != 2 {
		t.Errorf("%d sweep entries, want 2", n)
	}
	converged := logs.FilterMessage("liveness converged").All()
	if len(converged) != 1 {
		t.Fatalf("%d converged entries, want 1", len(converged))
	}
	fields := converged[0].ContextMap()
	if fields["func"] != "twoBlock" {
		t.Errorf("func field = %v, want twoBlock", fields["func"])
	}
	if fields["vars"] != int64(3) {
		t.Errorf("vars field = %v, want 3", fields["vars"])
	}
}

func TestAnalyze_TemporaryReadInLaterBlock(t *testing.T) {
	t.Parallel()

	// entry:        %t0 = a + b
	// switch.next:  c = %t0 == 1
	fn := ir.NewFunc("tag")
	entry := fn.NewBlock("entry")
	cs := fn.NewBlock("switch.next")
	ir.AddEdge(entry, cs)

	la := entry.Load(ir.Var("a.addr"))
	lb := entry.Load(ir.Var("b.addr"))
	tag := entry.Binary("%t0", ir.ValueOf(la), ir.ValueOf(lb))
	cmp := cs.Binary("%t1", ir.ValueOf(tag), ir.Const())
	cs.Store(ir.ValueOf(cmp), ir.Var("c.addr"))

	facts := analyze(t, fn, Options{Strict: true})
	assertSet(t, "Use(entry)", facts.Use(entry), "a", "b")
	assertSet(t, "LiveIn(entry)", facts.LiveIn(entry), "a", "b")
	assertSet(t, "Use(case)", facts.Use(cs))
	assertSet(t, "LiveIn(case)", facts.LiveIn(cs))
	if facts.Unresolved(cs) != 0 {
		t.Errorf("Unresolved(case) = %d, want 0", facts.Unresolved(cs))
	}
	checkFixpoint(t, fn, facts)
}

func TestAnalyze_ForeignSuccessorIsMalformed(t *testing.T) {
	t.Parallel()

	fn := ir.NewFunc("f")
	b := fn.NewBlock("entry")
	foreign := ir.NewFunc("g").NewBlock("entry")
	ir.AddEdge(b, foreign)

	_, err := Analyze(fn, Options{})
	if !errors.Is(err, ir.ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}
