// Package result is inspected through the analyzer's Result.
package result

func add(a, b int) int {
	c := a + b
	return c
}

func choose(cond bool, x int) int {
	y := 0
	if cond {
		y = x
	}
	return y
}
