package livevars

func mayPanic() {
	panic("boom")
}

func recoveredResult() (n int) {
	defer func() { recover() }()
	n = 1
	mayPanic()
	n = 2
	return
}

func recoveredLocal() (n int) {
	defer func() { recover() }()
	x := 1 // want `value stored to x is never read`
	mayPanic()
	x = 2
	n = x
	return
}
