package mandelview

// Evaluate iterates z ← z² + c from z = 0 and returns the number of
// iterations applied before |z| exceeds 2, or maxIter when the orbit stays
// bounded that long (the point is then treated as inside the set).
//
// The escape test compares |z|² against 4 to avoid a square root per
// iteration, and the loop works on the real and imaginary parts directly
// so each step is three multiplications.
func Evaluate(c complex128, maxIter int) int {
	cre, cim := real(c), imag(c)
	var zre, zim float64
	for i := 0; i < maxIter; i++ {
		zre2, zim2 := zre*zre, zim*zim
		if zre2+zim2 > 4 {
			return i
		}
		zre, zim = zre2-zim2+cre, 2*zre*zim+cim
	}
	return maxIter
}
