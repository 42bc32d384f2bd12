package livevars

func ignoredSameLine() int {
	x := 1 //livevars:ignore
	x = 2
	return x
}

func ignoredPrevLine() int {
	// livevars:ignore - kept for readability
	x := 1
	x = 2
	return x
}

//livevars:ignore
func ignoredFunc() int {
	x := 1
	x = 2
	return x
}

//livevars:ignore
func ignoredFuncClosure() func() int {
	return func() int {
		y := 1
		y = 2
		return y
	}
}

func unusedIgnore() int {
	x := 1 //livevars:ignore // want `unused livevars:ignore directive`
	return x
}
