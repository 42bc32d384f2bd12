// Package strict tests the -strict flag.
package strict

type point struct{ x int }

func resolved(a, b int) {
	c := a + b
	println(c)
}

func deref(p *int) int {
	return *p
}

func tag(a, b int) int {
	switch a + b {
	case 1:
		return 10
	case 2:
		return 20
	}
	return 0
}

func next() int {
	return 1
}

func callResult() int { // want `livevars: strict\.callResult: unresolved operand`
	x := next()
	return x
}

func fieldStore(p *point) { // want `livevars: strict\.fieldStore: unresolved operand`
	p.x = 1
}
