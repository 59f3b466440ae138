package mandelview

import "testing"

func TestEvaluateEscapesOutsideRadius(t *testing.T) {
	const cap = 100
	// |c| > 2 diverges immediately, so the count must be far below the cap.
	points := []complex128{
		complex(3, 0),
		complex(-3, 0),
		complex(0, 2.5),
		complex(2, 2),
		complex(-2.1, -2.1),
	}
	for _, c := range points {
		if got := Evaluate(c, cap); got >= cap {
			t.Errorf("Evaluate(%v, %d) = %d, want < %d", c, cap, got, cap)
		}
	}
}

func TestEvaluateOriginIsBounded(t *testing.T) {
	for _, cap := range []int{1, 2, 10, 250, 1000} {
		if got := Evaluate(0, cap); got != cap {
			t.Errorf("Evaluate(0, %d) = %d, want %d", cap, got, cap)
		}
	}
}

func TestEvaluateKnownPoints(t *testing.T) {
	const cap = 500
	inside := []complex128{
		complex(-1, 0),   // period-2 orbit
		complex(0, 1),    // orbit cycles through -1+i, -i
		complex(-0.5, 0), // inside the main cardioid
	}
	for _, c := range inside {
		if got := Evaluate(c, cap); got != cap {
			t.Errorf("Evaluate(%v, %d) = %d, want %d (inside the set)", c, cap, got, cap)
		}
	}

	outside := []complex128{
		complex(1, 0),
		complex(0.5, 0),
		complex(0.3, 0.8),
	}
	for _, c := range outside {
		if got := Evaluate(c, cap); got >= cap {
			t.Errorf("Evaluate(%v, %d) = %d, want < %d (outside the set)", c, cap, got, cap)
		}
	}
}

func BenchmarkEvaluate(b *testing.B) {
	// A point near the boundary that runs the full cap.
	c := complex(-0.7435, 0.1314)
	for i := 0; i < b.N; i++ {
		Evaluate(c, 1000)
	}
}
