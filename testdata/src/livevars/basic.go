// Package livevars tests dead-store detection.
package livevars

func overwritten() int {
	x := 1 // want `value stored to x is never read`
	x = 2
	return x
}

func afterLastUse(n int) int {
	total := n * 2
	println(total)
	total = 0 // want `value stored to total is never read`
	return n
}

func increment(x int) int {
	y := x
	println(y)
	y++ // want `value stored to y is never read`
	return x
}

func namedResult() (n int) {
	n = 1 // want `value stored to n is never read`
	n = 2
	return
}

func readBeforeOverwrite() int {
	x := 1
	y := x
	x = 2
	return x + y
}

func swap(a, b int) (int, int) {
	a, b = b, a
	return a, b
}

func parameterOverwritten(p int) int {
	p = 3
	return p
}

func parameterOverwrittenTwice(p int) int {
	p = 3 // want `value stored to p is never read`
	p = 4
	return p
}
