package debug

import (
	"fmt"
	"go/token"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders reports as text tables.
type Formatter struct {
	fset   *token.FileSet
	header *color.Color
	label  *color.Color
	dead   *color.Color
}

// NewFormatter creates a Formatter. Colors are emitted only when colored
// is true.
func NewFormatter(fset *token.FileSet, colored bool) *Formatter {
	f := &Formatter{
		fset:   fset,
		header: color.New(color.FgCyan, color.Bold),
		label:  color.New(color.FgYellow),
		dead:   color.New(color.FgRed),
	}
	for _, c := range []*color.Color{f.header, f.label, f.dead} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// Format writes r to w.
//
// Example output:
//
//	Function: p.f (2 blocks, 2 sweeps)
//	  0:entry  → 1:if.done
//	    Use      {a}
//	    Kill     {a, x, y}
//	    LiveIn   {a}
//	    LiveOut  {x}
//	    Changed  1
//	  1:if.done  ← 0:entry  (exit)
//	    ...
//
//	  Dead stores:
//	    1. line 4: y (block 0:entry) *y = 1:int
func (f *Formatter) Format(w io.Writer, r *Report) error {
	var buf strings.Builder

	f.header.Fprintf(&buf, "Function: %s", r.Func)
	fmt.Fprintf(&buf, " (%d blocks, %d sweeps)\n", len(r.Blocks), r.Sweeps)

	for _, b := range r.Blocks {
		fmt.Fprintf(&buf, "  %s", f.label.Sprint(b.Label))
		if len(b.Preds) > 0 {
			fmt.Fprintf(&buf, "  ← %s", strings.Join(b.Preds, ", "))
		}
		if len(b.Succs) > 0 {
			fmt.Fprintf(&buf, "  → %s", strings.Join(b.Succs, ", "))
		} else {
			buf.WriteString("  (exit)")
		}
		if b.InLoop {
			buf.WriteString("  (loop)")
		}
		if !b.ReachesExit {
			buf.WriteString("  (no path to exit)")
		}
		buf.WriteByte('\n')

		row(&buf, "Use", b.Use)
		row(&buf, "Kill", b.Kill)
		row(&buf, "LiveIn", b.LiveIn)
		row(&buf, "LiveOut", b.LiveOut)
		if b.Unresolved > 0 {
			fmt.Fprintf(&buf, "    %-8s %d\n", "Unknown", b.Unresolved)
		}
		if len(b.Changes) > 0 {
			fmt.Fprintf(&buf, "    %-8s %s\n", "Changed", joinInts(b.Changes))
		}
	}

	if len(r.DeadStores) > 0 {
		fmt.Fprintf(&buf, "\n  %s\n", f.header.Sprint("Dead stores:"))
		for i, s := range r.DeadStores {
			fmt.Fprintf(&buf, "    %d. ", i+1)
			if s.Pos.IsValid() && f.fset != nil {
				fmt.Fprintf(&buf, "line %d: ", f.fset.Position(s.Pos).Line)
			}
			fmt.Fprintf(&buf, "%s (block %s) %s\n", f.dead.Sprint(s.Var), s.Block, s.Instr)
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

func row(buf *strings.Builder, name string, names []string) {
	fmt.Fprintf(buf, "    %-8s {%s}\n", name, strings.Join(names, ", "))
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}
