package livevars

func onePath(cond bool) int {
	x := 1
	if cond {
		return x
	}
	x = 2
	return x
}

func bothBranches(cond bool) int {
	x := 0 // want `value stored to x is never read`
	if cond {
		x = 1
	} else {
		x = 2
	}
	return x
}

func oneBranchOverwrites(cond bool) int {
	x := 0
	if cond {
		x = 1
	}
	return x
}

func switchDefault(k int) string {
	s := "none" // want `value stored to s is never read`
	switch k {
	case 0:
		s = "zero"
	case 1:
		s = "one"
	default:
		s = "many"
	}
	return s
}

func earlyReturn(cond bool) int {
	v := 10
	if cond {
		v = 20 // want `value stored to v is never read`
		return 0
	}
	return v
}
