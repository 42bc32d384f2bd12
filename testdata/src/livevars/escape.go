package livevars

func captured() func() int {
	x := 1
	f := func() int { return x }
	x = 2
	return f
}

func addressTaken() int {
	x := 1
	p := &x
	x = 2
	return *p
}

func deferredRead() (err error) {
	defer func() {
		if err != nil {
			println(err.Error())
		}
	}()
	err = nil
	return
}

func closureBody() func() int {
	return func() int {
		y := 1 // want `value stored to y is never read`
		y = 2
		return y
	}
}
