package permuted

// Solve returns the smallest positive integer x for which Condition(x)
// holds.
//
// Candidates are tried one at a time starting at 1; there is no upper bound
// and no cancellation. The answer is 142857, so the loop terminates after
// that many iterations.
func Solve() uint64 {
	x := uint64(1)
	for !Condition(x) {
		if x%TraceInterval == 0 {
			searchTracef("checked %d candidates", x)
		}
		x++
	}
	searchTracef("found %d after %d candidates", x, x)
	return x
}
