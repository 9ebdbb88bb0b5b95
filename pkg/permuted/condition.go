package permuted

// MaxMultiplier is the largest multiple of a candidate that must share its
// digits. Multipliers always run 1..MaxMultiplier.
const MaxMultiplier = 6

// Condition reports whether x, 2x, 3x, 4x, 5x and 6x all have the same
// digit multiset.
//
// The multiples are compared in adjacent pairs, so a mismatch anywhere
// short-circuits and equality of every pair implies equality of all six.
// Multiplying x by 6 must not overflow uint64; callers stay far below that.
func Condition(x uint64) bool {
	// A multiple with more digits than x can never match it.
	if DigitCount(x*MaxMultiplier) != DigitCount(x) {
		return false
	}

	prev := Digits(x)
	for k := uint64(2); k <= MaxMultiplier; k++ {
		next := Digits(x * k)
		if !Equal(prev, next) {
			return false
		}
		prev = next
	}
	return true
}

// Multiples returns x, 2x, ..., MaxMultiplier*x in order.
func Multiples(x uint64) []uint64 {
	out := make([]uint64, 0, MaxMultiplier)
	for k := uint64(1); k <= MaxMultiplier; k++ {
		out = append(out, x*k)
	}
	return out
}
