package catalog

// Stepper bounds a quantity selector to [Min, Max].
type Stepper struct {
	Min int
	Max int
}

// Clamp forces q into range.
func (s Stepper) Clamp(q int) int {
	if q < s.Min {
		return s.Min
	}
	if q > s.Max {
		return s.Max
	}
	return q
}

// Inc returns q+1, saturating at Max.
func (s Stepper) Inc(q int) int { return min(s.Clamp(q)+1, s.Max) }

// Dec returns q-1, saturating at Min.
func (s Stepper) Dec(q int) int { return max(s.Clamp(q)-1, s.Min) }

// CanInc reports whether Inc would change q.
func (s Stepper) CanInc(q int) bool { return s.Clamp(q) < s.Max }

// CanDec reports whether Dec would change q.
func (s Stepper) CanDec(q int) bool { return s.Clamp(q) > s.Min }

// SelectImage returns idx when it addresses one of n images, otherwise 0.
func SelectImage(idx, n int) int {
	if idx < 0 || idx >= n {
		return 0
	}
	return idx
}
