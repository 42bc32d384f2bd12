package livevars

func sum(xs []int) int {
	s := 0
	for i := 0; i < len(xs); i++ {
		s += xs[i]
	}
	return s
}

func countdown(n int) int {
	steps := 0
	for n > 0 {
		n--
		steps++
	}
	return steps
}

func lastAssignmentInLoop(xs []int) int {
	last := -1
	for _, x := range xs {
		last = x
	}
	return last
}
