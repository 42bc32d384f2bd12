// Package ir defines the control flow graph consumed by the liveness core.
//
// The IR is deliberately small: a function is a list of basic blocks, each
// block an ordered list of instructions, and each instruction one of four
// opcode categories. Front ends (see internal/ssa) lower their own
// representation into it; the analysis only ever reads it.
//
//	┌──────────┐   Succs/Preds   ┌──────────┐
//	│ Block 0  │ ──────────────▶ │ Block 1  │
//	│  Instrs  │                 │  Instrs  │
//	└──────────┘                 └──────────┘
//
// Operand shapes:
//
//	Var("x")        named variable reference
//	Const()         unnamed constant
//	ValueOf(load)   unnamed value, chased through the load's address
//	ValueOf(binop)  named temporary (the instruction's Result)
package ir

import (
	"go/token"
	"strconv"
)

// Op is the opcode category of an instruction.
type Op uint8

const (
	// OpOther is any instruction that neither uses nor kills variables.
	OpOther Op = iota
	// OpStore writes Operands[0] (value) to Operands[1] (address).
	OpStore
	// OpLoad reads from Operands[0] (address).
	OpLoad
	// OpBinary combines Operands[0] and Operands[1] into Result.
	OpBinary
)

// String returns the opcode mnemonic.
func (op Op) String() string {
	switch op {
	case OpStore:
		return "store"
	case OpLoad:
		return "load"
	case OpBinary:
		return "binary"
	default:
		return "other"
	}
}

// arity returns the number of operands an opcode requires, or -1 if any.
func (op Op) arity() int {
	switch op {
	case OpStore, OpBinary:
		return 2
	case OpLoad:
		return 1
	default:
		return -1
	}
}

// Operand is an instruction input.
//
// Exactly one of the following holds:
//   - Name != "": a named reference (variable or named temporary)
//   - Const: an unnamed constant
//   - Def != nil: an unnamed value produced by Def
//
// An operand with none of them set is opaque.
type Operand struct {
	Name  string
	Const bool
	Def   *Instr
}

// Var returns a named operand.
func Var(name string) Operand {
	return Operand{Name: name}
}

// Const returns a constant operand.
func Const() Operand {
	return Operand{Const: true}
}

// ValueOf returns an operand referring to the value produced by instr.
// The operand carries instr's Result as its surface name, if any.
func ValueOf(instr *Instr) Operand {
	return Operand{Name: instr.Result, Def: instr}
}

// Opaque returns an operand that carries no name, constant or producer.
func Opaque() Operand {
	return Operand{}
}

// String returns a short description of the operand.
func (o Operand) String() string {
	switch {
	case o.Name != "":
		return o.Name
	case o.Const:
		return "const"
	case o.Def != nil:
		return "(" + o.Def.String() + ")"
	default:
		return "?"
	}
}

// Instr is a single instruction.
type Instr struct {
	Op       Op
	Operands []Operand
	Result   string    // optional result identity
	Pos      token.Pos // optional source position
	Text     string    // optional front-end rendering, for debug output

	block *Block
	index int
}

// Block returns the block containing the instruction.
func (i *Instr) Block() *Block { return i.block }

// Index returns the position of the instruction within its block.
func (i *Instr) Index() int { return i.index }

// String returns the front-end rendering if present, else a generic form.
func (i *Instr) String() string {
	if i.Text != "" {
		return i.Text
	}
	s := i.Op.String()
	if i.Result != "" {
		s = i.Result + " = " + s
	}
	for k, op := range i.Operands {
		if k == 0 {
			s += " "
		} else {
			s += ", "
		}
		s += op.String()
	}
	return s
}

// Block is a basic block.
type Block struct {
	Index   int // position in Func.Blocks
	Comment string
	Instrs  []*Instr
	Succs   []*Block
	Preds   []*Block
}

// String returns a label such as "1:if.then".
func (b *Block) String() string {
	if b.Comment == "" {
		return strconv.Itoa(b.Index)
	}
	return strconv.Itoa(b.Index) + ":" + b.Comment
}

// Func is a single procedure body.
type Func struct {
	Name   string
	Pos    token.Pos
	Blocks []*Block
}

// NewFunc creates an empty function.
func NewFunc(name string) *Func {
	return &Func{Name: name}
}

// NewBlock appends a new block to f.
func (f *Func) NewBlock(comment string) *Block {
	b := &Block{Index: len(f.Blocks), Comment: comment}
	f.Blocks = append(f.Blocks, b)
	return b
}

// AddEdge adds the control flow edge from -> to.
func AddEdge(from, to *Block) {
	from.Succs = append(from.Succs, to)
	to.Preds = append(to.Preds, from)
}

// Append adds instr to the end of b.
func (b *Block) Append(instr *Instr) *Instr {
	instr.block = b
	instr.index = len(b.Instrs)
	b.Instrs = append(b.Instrs, instr)
	return instr
}

// Store appends "store val -> addr".
func (b *Block) Store(val, addr Operand) *Instr {
	return b.Append(&Instr{Op: OpStore, Operands: []Operand{val, addr}})
}

// Load appends "load addr".
func (b *Block) Load(addr Operand) *Instr {
	return b.Append(&Instr{Op: OpLoad, Operands: []Operand{addr}})
}

// Binary appends "result = x op y".
func (b *Block) Binary(result string, x, y Operand) *Instr {
	return b.Append(&Instr{Op: OpBinary, Operands: []Operand{x, y}, Result: result})
}

// Other appends an instruction the analysis ignores.
func (b *Block) Other(text string) *Instr {
	return b.Append(&Instr{Op: OpOther, Text: text})
}
