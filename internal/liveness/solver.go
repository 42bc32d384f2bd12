package liveness

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/oleiade/lane"
	"go.uber.org/zap"

	"github.com/mpyw/livevars/internal/ir"
)

// Solver propagates liveness backward over the CFG until a fixed point.
//
// Each sweep walks the graph backward from the exits:
//
//  1. Enqueue every exit block (no successors), in block order.
//  2. Dequeue a block, recompute LiveOut from its successors' LiveIn and
//     LiveIn from the equations, then enqueue its unvisited predecessors.
//  3. When the queue drains, enqueue the first block not yet visited in
//     this sweep and continue. This covers regions with no path to an
//     exit, such as infinite loops.
//
// Every block is visited exactly once per sweep. A sweep that changes no
// LiveIn and no LiveOut ends the iteration.
type Solver struct {
	facts  *Facts
	opts   Options
	log    *zap.Logger
	sweeps int
}

// NewSolver creates a solver over facts, whose Use and Kill sets must
// already be computed.
func NewSolver(facts *Facts, opts Options) *Solver {
	return &Solver{
		facts: facts,
		opts:  opts,
		log:   opts.logger().With(zap.String("func", facts.fn.Name)),
	}
}

// Solve sweeps until nothing changes and returns the total number of
// sweeps performed by this solver.
func (s *Solver) Solve() int {
	for s.Sweep() {
	}
	return s.sweeps
}

// Sweep performs one pass over all blocks and reports whether any block's
// LiveIn or LiveOut changed.
func (s *Solver) Sweep() bool {
	s.sweeps++
	blocks := s.facts.fn.Blocks
	visited := make(map[*ir.Block]bool, len(blocks))
	q := lane.NewQueue()

	for _, exit := range s.facts.fn.Exits() {
		visited[exit] = true
		q.Enqueue(exit)
	}

	changed, updated := false, 0
	next := 0
	for {
		for !q.Empty() {
			b := q.Dequeue().(*ir.Block)
			if s.update(b) {
				changed = true
				updated++
			}
			for _, pred := range b.Preds {
				if !visited[pred] {
					visited[pred] = true
					q.Enqueue(pred)
				}
			}
		}

		for next < len(blocks) && visited[blocks[next]] {
			next++
		}
		if next == len(blocks) {
			break
		}
		visited[blocks[next]] = true
		q.Enqueue(blocks[next])
	}

	s.log.Debug("liveness sweep",
		zap.Int("sweep", s.sweeps),
		zap.Int("updated", updated),
		zap.Bool("changed", changed))
	return changed
}

// update recomputes b's LiveOut and LiveIn and reports whether either
// changed.
func (s *Solver) update(b *ir.Block) bool {
	bf := s.facts.blocks[b]

	out := bitset.New(uint(s.facts.u.Len()))
	for _, succ := range b.Succs {
		out.InPlaceUnion(s.facts.blocks[succ].in)
	}
	in := out.Difference(bf.kill)
	in.InPlaceUnion(bf.use)

	if sameBits(out, bf.out) && sameBits(in, bf.in) {
		return false
	}
	bf.in, bf.out = in, out

	if s.opts.OnUpdate != nil {
		s.opts.OnUpdate(Update{
			Sweep:   s.sweeps,
			Block:   b,
			LiveIn:  newVarSet(s.facts.u, in),
			LiveOut: newVarSet(s.facts.u, out),
		})
	}
	return true
}
