package liveness

import (
	"strings"

	"github.com/mpyw/livevars/internal/ir"
)

// Separator starts the scope/storage suffix of a surface name.
// Everything from the first separator onward is dropped: "x.addr" is "x".
const Separator = "."

// TempPrefix starts the surface name of a front-end temporary, such as the
// result of a binary operation. Temporaries are not variables: they never
// enter Use, Kill, LiveIn or LiveOut, even when read in a later block.
const TempPrefix = "%"

// maxLoadChain bounds how many loads Resolve chases. Well-formed input
// never comes close; the bound keeps a cyclic producer graph from hanging
// the analysis.
const maxLoadChain = 1 << 10

// Kind classifies the result of Resolve.
type Kind uint8

const (
	// KindUnknown means the operand denotes no traceable variable.
	KindUnknown Kind = iota
	// KindVariable means Resolution.Name holds the variable.
	KindVariable
	// KindConstant means the operand is a constant.
	KindConstant
	// KindTemporary means the operand names a front-end temporary.
	KindTemporary
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindConstant:
		return "constant"
	case KindTemporary:
		return "temporary"
	default:
		return "unknown"
	}
}

// Resolution is the canonical identity of an operand.
type Resolution struct {
	Kind Kind
	Name string // set only for KindVariable
}

// IsVariable reports whether r names a variable.
func (r Resolution) IsVariable() bool {
	return r.Kind == KindVariable
}

// StripSuffix returns name without its scope/storage suffix.
func StripSuffix(name string) string {
	if i := strings.Index(name, Separator); i >= 0 {
		return name[:i]
	}
	return name
}

// Resolve maps an operand to the variable it denotes.
//
//	Var("x.addr")                 → variable x
//	Var("%t3")                    → temporary
//	Const()                       → constant
//	ValueOf(load Var("x.addr"))   → variable x
//	ValueOf(load ValueOf(load p)) → variable p
//	ValueOf(call ...)             → unknown
//
// Resolve is pure: it reads the operand and its producers and nothing else.
func Resolve(op ir.Operand) Resolution {
	for hops := 0; hops < maxLoadChain; hops++ {
		switch {
		case strings.HasPrefix(op.Name, TempPrefix):
			return Resolution{Kind: KindTemporary}
		case op.Name != "":
			name := StripSuffix(op.Name)
			if name == "" {
				return Resolution{Kind: KindUnknown}
			}
			return Resolution{Kind: KindVariable, Name: name}
		case op.Const:
			return Resolution{Kind: KindConstant}
		case op.Def != nil && op.Def.Op == ir.OpLoad && len(op.Def.Operands) == 1:
			op = op.Def.Operands[0]
		default:
			return Resolution{Kind: KindUnknown}
		}
	}
	return Resolution{Kind: KindUnknown}
}
