// Package permuted searches for permuted multiples: the smallest positive
// integer x whose multiples x, 2x, 3x, 4x, 5x and 6x all contain exactly
// the same decimal digits.
//
// The package is split the same way the problem is:
//   - Digits extracts the digit multiset of a number
//   - Condition checks one candidate against all six multiples
//   - Solve walks the candidates upward from 1 and returns the first hit
//
// Everything here is pure and single-threaded. The only process-level
// state is the opt-in search trace (see PERMUTED_TRACE).
package permuted

import "sort"

// Digits returns the decimal digits of n sorted ascending.
//
// The result has exactly DigitCount(n) entries; no leading zeros are added,
// so Digits(0) is [0]. Two results compare equal with Equal iff the numbers
// are permutations of each other's digits.
func Digits(n uint64) []int {
	digits := make([]int, 0, DigitCount(n))
	for {
		digits = append(digits, int(n%10))
		n /= 10
		if n == 0 {
			break
		}
	}
	sort.Ints(digits)
	return digits
}

// DigitCount returns the number of decimal digits in n. Zero has one digit.
func DigitCount(n uint64) int {
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}

// Equal reports whether two digit multisets are identical: same length and
// the same digit at every sorted position.
func Equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
