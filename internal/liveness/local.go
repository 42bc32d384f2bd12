package liveness

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/mpyw/livevars/internal/ir"
)

// ErrUnresolved is returned in strict mode for an operand that resolves to
// neither a constant nor a variable.
var ErrUnresolved = errors.New("unresolved operand")

// Local holds the facts computed from a single block in isolation.
type Local struct {
	Use        VarSet // upward-exposed uses
	Kill       VarSet // variables stored to in the block
	Unresolved int    // operands that resolved to KindUnknown
}

// ComputeLocal scans b once, in instruction order, and returns its Use and
// Kill sets. Names are interned into u.
//
// A variable is in Use only if the block reads it before anything in the
// same block defines it:
//
//	t0 = load a          Use {a}
//	t1 = t0 + 1          (t1 locally defined)
//	store t1 -> b        Kill {b}
//	t2 = load b          b already killed: not a use
//
// The exposure test is the same for every operand: a name is not a use if
// it is locally defined or already in Kill. This includes the value of a
// store, so "x = 1; y = x" has Use {} rather than Use {x}.
//
// Names that resolve to temporaries (TempPrefix) or constants never enter
// either set.
func ComputeLocal(b *ir.Block, u *Universe, opts Options) (Local, error) {
	p := &localPass{
		block:   b,
		u:       u,
		opts:    opts,
		use:     bitset.New(uint(u.Len())),
		kill:    bitset.New(uint(u.Len())),
		defined: make(map[string]bool),
	}
	if err := p.run(); err != nil {
		return Local{}, err
	}
	return Local{
		Use:        newVarSet(u, p.use),
		Kill:       newVarSet(u, p.kill),
		Unresolved: p.unresolved,
	}, nil
}

// localPass is the working state of ComputeLocal for one block.
type localPass struct {
	block *ir.Block
	u     *Universe
	opts  Options

	use        *bitset.BitSet
	kill       *bitset.BitSet
	defined    map[string]bool // result identities defined so far in the block
	unresolved int
}

func (p *localPass) run() error {
	for _, instr := range p.block.Instrs {
		var err error
		switch instr.Op {
		case ir.OpStore:
			err = p.store(instr)
		case ir.OpBinary:
			err = p.binary(instr)
		case ir.OpLoad:
			err = p.load(instr)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// store: the value is a use if exposed; the destination is always killed.
func (p *localPass) store(instr *ir.Instr) error {
	val, err := p.resolve(instr, 0)
	if err != nil {
		return err
	}
	p.useIfExposed(val)

	dst, err := p.resolve(instr, 1)
	if err != nil {
		return err
	}
	if dst.IsVariable() {
		p.kill.Set(p.u.Intern(dst.Name))
	}
	return nil
}

// binary: both operands are uses if exposed; the result becomes locally
// defined for the rest of the block.
func (p *localPass) binary(instr *ir.Instr) error {
	for k := range instr.Operands {
		r, err := p.resolve(instr, k)
		if err != nil {
			return err
		}
		p.useIfExposed(r)
	}

	if instr.Result == "" {
		return nil
	}
	result := StripSuffix(instr.Result)
	if p.opts.EraseKilledResults && p.killed(result) {
		if i, ok := p.u.Lookup(result); ok {
			p.use.Clear(i)
		}
	}
	p.defined[result] = true
	return nil
}

// load: the address is a use if exposed.
func (p *localPass) load(instr *ir.Instr) error {
	addr, err := p.resolve(instr, 0)
	if err != nil {
		return err
	}
	p.useIfExposed(addr)
	return nil
}

func (p *localPass) resolve(instr *ir.Instr, k int) (Resolution, error) {
	r := Resolve(instr.Operands[k])
	if r.Kind != KindUnknown {
		return r, nil
	}
	if p.opts.Strict {
		return r, fmt.Errorf("%w: block %s, instruction %d (%s), operand %d",
			ErrUnresolved, p.block, instr.Index(), instr, k)
	}
	p.unresolved++
	return r, nil
}

func (p *localPass) useIfExposed(r Resolution) {
	if !r.IsVariable() || p.defined[r.Name] || p.killed(r.Name) {
		return
	}
	p.use.Set(p.u.Intern(r.Name))
}

func (p *localPass) killed(name string) bool {
	i, ok := p.u.Lookup(name)
	return ok && p.kill.Test(i)
}
