package directive

import (
	"go/ast"
	"go/token"
	"sort"
)

// ignoreEntry tracks an ignore directive and whether it was used.
type ignoreEntry struct {
	pos  token.Pos
	used bool
}

// Ignores holds the ignore directives of one file.
//
// Line-level directives cover their own line and the next one:
//
//	//livevars:ignore          // Line 5
//	x = 1                      // Line 6: suppressed
//
// A directive in the package doc comment covers the whole file, and one in
// a function's doc comment covers that function, including its closures.
type Ignores struct {
	lines map[int]*ignoreEntry
	file  bool
	funcs map[token.Pos]int // function name position → directive line
}

// ScanIgnores collects the ignore directives of file.
func ScanIgnores(fset *token.FileSet, file *ast.File) *Ignores {
	ig := &Ignores{
		lines: make(map[int]*ignoreEntry),
		funcs: make(map[token.Pos]int),
	}

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if IsIgnoreDirective(c.Text) {
				ig.lines[fset.Position(c.Pos()).Line] = &ignoreEntry{pos: c.Pos()}
			}
		}
	}

	// File-level directives are never reported as unused.
	if file.Doc != nil {
		for _, c := range file.Doc.List {
			if IsIgnoreDirective(c.Text) {
				ig.file = true
				ig.lines[fset.Position(c.Pos()).Line].used = true
			}
		}
	}

	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			if IsIgnoreDirective(c.Text) {
				// SSA's Function.Pos() is the name position.
				ig.funcs[fd.Name.Pos()] = fset.Position(c.Pos()).Line
				break
			}
		}
	}

	return ig
}

// Suppresses reports whether a report on line is suppressed by a file-level
// or line-level directive, marking the directive used.
func (ig *Ignores) Suppresses(line int) bool {
	if ig.file {
		return true
	}
	for _, l := range []int{line, line - 1} {
		if entry, ok := ig.lines[l]; ok {
			entry.used = true
			return true
		}
	}
	return false
}

// SuppressesFunc reports whether the function declared at namePos carries
// a function-level directive, marking the directive used.
func (ig *Ignores) SuppressesFunc(namePos token.Pos) bool {
	line, ok := ig.funcs[namePos]
	if !ok {
		return false
	}
	if entry, ok := ig.lines[line]; ok {
		entry.used = true
	}
	return true
}

// Unused returns the positions of line-level directives that suppressed
// nothing, in source order.
func (ig *Ignores) Unused() []token.Pos {
	var unused []token.Pos
	for _, entry := range ig.lines {
		if !entry.used {
			unused = append(unused, entry.pos)
		}
	}
	sort.Slice(unused, func(i, j int) bool { return unused[i] < unused[j] })
	return unused
}
