package ir

import (
	"github.com/oleiade/lane"
)

// Exits returns the blocks with no successors, in block order.
func (f *Func) Exits() []*Block {
	var exits []*Block
	for _, b := range f.Blocks {
		if len(b.Succs) == 0 {
			exits = append(exits, b)
		}
	}
	return exits
}

// CanReach reports whether dst is reachable from src by following
// successor edges. A block always reaches itself.
//
// Example CFG:
//
//	0 → 1 → 2
//	    ↑   ↓
//	    └── 3
//
//	CanReach(0, 3) = true  (0 → 1 → 2 → 3)
//	CanReach(3, 1) = true  (back edge)
//	CanReach(2, 0) = false
func (f *Func) CanReach(src, dst *Block) bool {
	if src == nil || dst == nil {
		return false
	}
	if src == dst {
		return true
	}

	visited := map[*Block]bool{src: true}
	q := lane.NewQueue()

	for q.Enqueue(src); !q.Empty(); {
		b := q.Dequeue().(*Block)
		for _, succ := range b.Succs {
			if succ == dst {
				return true
			}
			if !visited[succ] {
				visited[succ] = true
				q.Enqueue(succ)
			}
		}
	}
	return false
}

// ReachesExit returns the set of blocks from which some exit block is
// reachable. Blocks outside the set belong to regions with no way out,
// such as infinite loops; a backward walk seeded at the exits never
// visits them.
func (f *Func) ReachesExit() map[*Block]bool {
	reach := make(map[*Block]bool)
	q := lane.NewQueue()

	for _, exit := range f.Exits() {
		reach[exit] = true
		q.Enqueue(exit)
	}
	for !q.Empty() {
		b := q.Dequeue().(*Block)
		for _, pred := range b.Preds {
			if !reach[pred] {
				reach[pred] = true
				q.Enqueue(pred)
			}
		}
	}
	return reach
}

// LoopBlocks returns the set of blocks inside loops.
//
// An edge b → h is a back edge when h does not come after b in block order
// and h reaches b. Every block from h through b in block order is marked:
//
//	0:entry → 1:for.loop → 2:for.body → 1:for.loop
//	                     → 3:for.done
//
//	back edge 2 → 1: loop blocks {1, 2}
//
// A merge block may come before an else branch in block order, so an edge
// into it can look like a back edge. The reachability check rejects it.
func (f *Func) LoopBlocks() map[*Block]bool {
	loop := make(map[*Block]bool)
	for _, b := range f.Blocks {
		for _, succ := range b.Succs {
			if succ.Index > b.Index || !f.CanReach(succ, b) {
				continue
			}
			for _, m := range f.Blocks[succ.Index : b.Index+1] {
				loop[m] = true
			}
		}
	}
	return loop
}
