package ssa

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ssa"
)

// Mode is the builder mode livevars analyzes.
//
// Naive form keeps every source-level local in an Alloc cell accessed by
// Store and *addr loads, which is the memory model the liveness core
// reasons about. The default (lifted) form that buildssa produces replaces
// most cells with registers and Phi nodes.
const Mode = ssa.NaiveForm

// SSA is the naive-form SSA of one package.
type SSA struct {
	Pkg      *ssa.Package
	SrcFuncs []*ssa.Function
}

// BuildPackage builds the naive-form SSA of the pass's package.
//
// It follows what buildssa does for the lifted form: one Program per pass,
// stub packages for every transitive import, then the primary package.
func BuildPackage(pass *analysis.Pass) *SSA {
	prog := ssa.NewProgram(pass.Fset, Mode)

	created := make(map[*types.Package]bool)
	var createAll func(pkgs []*types.Package)
	createAll = func(pkgs []*types.Package) {
		for _, p := range pkgs {
			if !created[p] {
				created[p] = true
				prog.CreatePackage(p, nil, nil, true)
				createAll(p.Imports())
			}
		}
	}
	createAll(pass.Pkg.Imports())

	pkg := prog.CreatePackage(pass.Pkg, pass.Files, pass.TypesInfo, false)
	pkg.Build()

	return &SSA{
		Pkg:      pkg,
		SrcFuncs: SourceFunctions(pkg, pass.Files, pass.TypesInfo),
	}
}

// SourceFunctions returns the functions declared in files, each followed by
// its anonymous functions (recursively), in source order.
func SourceFunctions(pkg *ssa.Package, files []*ast.File, info *types.Info) []*ssa.Function {
	var funcs []*ssa.Function

	var addAnons func(f *ssa.Function)
	addAnons = func(f *ssa.Function) {
		funcs = append(funcs, f)
		for _, anon := range f.AnonFuncs {
			addAnons(anon)
		}
	}

	for _, file := range files {
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}
			obj, ok := info.Defs[fd.Name].(*types.Func)
			if !ok {
				continue
			}
			if f := pkg.Prog.FuncValue(obj); f != nil {
				addAnons(f)
			}
		}
	}
	return funcs
}
