package catalog

import "testing"

func TestStepperBounds(t *testing.T) {
	t.Parallel()

	s := Stepper{Min: 1, Max: 49}
	tests := []struct {
		name string
		op   func(int) int
		in   int
		want int
	}{
		{name: "inc from min", op: s.Inc, in: 1, want: 2},
		{name: "inc saturates at max", op: s.Inc, in: 49, want: 49},
		{name: "dec saturates at min", op: s.Dec, in: 1, want: 1},
		{name: "dec from middle", op: s.Dec, in: 10, want: 9},
		{name: "inc repairs out of range low", op: s.Inc, in: -4, want: 2},
		{name: "dec repairs out of range high", op: s.Dec, in: 120, want: 48},
		{name: "clamp zero", op: s.Clamp, in: 0, want: 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.op(tc.in); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestStepperNeverLeavesRange(t *testing.T) {
	t.Parallel()

	s := Stepper{Min: 1, Max: 49}
	q := 1
	for i := 0; i < 100; i++ {
		q = s.Inc(q)
	}
	if q != 49 || s.CanInc(q) {
		t.Fatalf("expected 49 after many increments, got %d", q)
	}
	for i := 0; i < 100; i++ {
		q = s.Dec(q)
	}
	if q != 1 || s.CanDec(q) {
		t.Fatalf("expected 1 after many decrements, got %d", q)
	}
}

func TestSelectImage(t *testing.T) {
	t.Parallel()

	if SelectImage(1, 2) != 1 {
		t.Fatalf("expected valid index kept")
	}
	for _, idx := range []int{-1, 2, 99} {
		if SelectImage(idx, 2) != 0 {
			t.Fatalf("expected fallback for %d", idx)
		}
	}
	if SelectImage(0, 0) != 0 {
		t.Fatalf("expected 0 for empty gallery")
	}
}
