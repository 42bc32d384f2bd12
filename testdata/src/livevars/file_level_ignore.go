// livevars:ignore
package livevars

func fileIgnored() int {
	x := 1
	x = 2
	return x
}
