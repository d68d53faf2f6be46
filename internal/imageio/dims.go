package imageio

import "math/bits"

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	if IsPowerOfTwo(n) {
		return n
	}
	return 1 << bits.Len(uint(n))
}

// PreviousPowerOfTwo returns the largest power of two <= n.
func PreviousPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	if IsPowerOfTwo(n) {
		return n
	}
	return 1 << (bits.Len(uint(n)) - 1)
}

// NearestPowerOfTwo returns whichever of NextPowerOfTwo(n) and
// PreviousPowerOfTwo(n) is closer to n, preferring the next power of
// two on a tie.
func NearestPowerOfTwo(n int) int {
	next := NextPowerOfTwo(n)
	prev := PreviousPowerOfTwo(n)

	if next == prev {
		return next
	}

	if (next - n) <= (n - prev) {
		return next
	}

	return prev
}

// RoundUpToMultipleOf4 pads n up to the next multiple of 4.
func RoundUpToMultipleOf4(n int) int {
	rem := n % 4
	if rem == 0 {
		return n
	}
	return n + (4 - rem)
}
