package debug

import (
	"go/token"

	"github.com/mpyw/livevars/internal/deadstore"
	"github.com/mpyw/livevars/internal/ir"
	"github.com/mpyw/livevars/internal/liveness"
)

// Report contains the debug view of one analyzed function.
type Report struct {
	Func       string
	Sweeps     int
	Blocks     []BlockInfo
	DeadStores []StoreInfo
}

// BlockInfo contains the facts of a single block.
type BlockInfo struct {
	Label       string
	Preds       []string
	Succs       []string
	Use         []string
	Kill        []string
	LiveIn      []string
	LiveOut     []string
	Unresolved  int
	InLoop      bool
	ReachesExit bool
	Changes     []int // sweeps that changed LiveIn or LiveOut
}

// StoreInfo contains information about a dead store.
type StoreInfo struct {
	Pos   token.Pos
	Var   string
	Block string
	Instr string
}

// NewReport builds a Report from converged facts. rec may be nil.
func NewReport(fn *ir.Func, facts *liveness.Facts, dead []deadstore.Store, rec *Recorder) *Report {
	reaches := fn.ReachesExit()
	loops := fn.LoopBlocks()

	r := &Report{
		Func:   fn.Name,
		Sweeps: facts.Sweeps(),
		Blocks: make([]BlockInfo, 0, len(fn.Blocks)),
	}
	for _, b := range fn.Blocks {
		info := BlockInfo{
			Label:       b.String(),
			Preds:       labels(b.Preds),
			Succs:       labels(b.Succs),
			Use:         facts.Use(b).Names(),
			Kill:        facts.Kill(b).Names(),
			LiveIn:      facts.LiveIn(b).Names(),
			LiveOut:     facts.LiveOut(b).Names(),
			Unresolved:  facts.Unresolved(b),
			InLoop:      loops[b],
			ReachesExit: reaches[b],
		}
		if rec != nil {
			info.Changes = rec.Changes(b)
		}
		r.Blocks = append(r.Blocks, info)
	}
	for _, s := range dead {
		r.DeadStores = append(r.DeadStores, StoreInfo{
			Pos:   s.Instr.Pos,
			Var:   s.Var,
			Block: s.Instr.Block().String(),
			Instr: s.Instr.String(),
		})
	}
	return r
}

func labels(blocks []*ir.Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.String()
	}
	return out
}
