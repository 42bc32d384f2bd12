package debug

import (
	"github.com/mpyw/livevars/internal/ir"
	"github.com/mpyw/livevars/internal/liveness"
)

// Recorder collects solver updates for the debug report.
// Pass its Record method as liveness.Options.OnUpdate.
type Recorder struct {
	changes map[*ir.Block][]int
	total   int
}

// NewRecorder creates a new Recorder.
func NewRecorder() *Recorder {
	return &Recorder{changes: make(map[*ir.Block][]int)}
}

// Record stores one solver update.
func (r *Recorder) Record(u liveness.Update) {
	r.changes[u.Block] = append(r.changes[u.Block], u.Sweep)
	r.total++
}

// Changes returns the sweeps in which b changed, in order.
func (r *Recorder) Changes(b *ir.Block) []int {
	return r.changes[b]
}

// Total returns the number of updates recorded.
func (r *Recorder) Total() int {
	return r.total
}
