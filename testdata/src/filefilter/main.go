// Package filefilter tests file filtering functionality.
// Tests that:
// - Generated files are always skipped (see generated.go)
// - Regular files are analyzed
package filefilter

func deadStore() int {
	x := 1 // want `value stored to x is never read`
	x = 2
	return x
}
