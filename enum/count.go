package enum

import "fmt"

// Counter memoizes the closed-form counting sequences of the 0-rook
// monoid. The zero value is ready to use. A Counter grows its memo
// tables monotonically and is not safe for concurrent use; callers
// that share one across goroutines must serialize access.
type Counter struct {
	rooks map[int]int64
	binom map[[2]int]int64
	fact  map[int]int64
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{}
}

// Rooks returns r(n), the number of rank-n elements, by the OEIS
// A002720 recurrence r(n) = 2n·r(n-1) - (n-1)²·r(n-2) with r(0) = 1
// and r(1) = 2. Supported for 0 ≤ n ≤ MaxCountSize.
func (ct *Counter) Rooks(n int) (int64, error) {
	if n < 0 || n > MaxCountSize {
		return 0, fmt.Errorf("%w: n=%d, counting supports [0, %d]", ErrSizeRange, n, MaxCountSize)
	}
	return ct.rookCount(n), nil
}

// Placements returns t(n,k) = C(n,k)²·k!, the number of rank-n
// elements with exactly k placed values. Supported for
// 0 ≤ k ≤ n ≤ MaxCountSize; every row sums to r(n).
func (ct *Counter) Placements(n, k int) (int64, error) {
	if n < 0 || n > MaxCountSize {
		return 0, fmt.Errorf("%w: n=%d, counting supports [0, %d]", ErrSizeRange, n, MaxCountSize)
	}
	if k < 0 || k > n {
		return 0, fmt.Errorf("%w: k=%d outside [0, %d]", ErrSizeRange, k, n)
	}
	b := ct.binomial(n, k)
	return b * b * ct.factorial(k), nil
}

// rookCount is the unchecked memoized recurrence.
func (ct *Counter) rookCount(n int) int64 {
	if n == 0 {
		return 1
	}
	if n == 1 {
		return 2
	}
	if v, ok := ct.rooks[n]; ok {
		return v
	}
	v := 2*int64(n)*ct.rookCount(n-1) - int64(n-1)*int64(n-1)*ct.rookCount(n-2)
	if ct.rooks == nil {
		ct.rooks = make(map[int]int64)
	}
	ct.rooks[n] = v
	return v
}

// binomial is the memoized Pascal recurrence, valid for 0 ≤ k ≤ n.
func (ct *Counter) binomial(n, k int) int64 {
	if k == 0 || k == n {
		return 1
	}
	key := [2]int{n, k}
	if v, ok := ct.binom[key]; ok {
		return v
	}
	v := ct.binomial(n-1, k-1) + ct.binomial(n-1, k)
	if ct.binom == nil {
		ct.binom = make(map[[2]int]int64)
	}
	ct.binom[key] = v
	return v
}

// factorial is the memoized falling product, valid for 0 ≤ k ≤ 18.
func (ct *Counter) factorial(k int) int64 {
	if k <= 1 {
		return 1
	}
	if v, ok := ct.fact[k]; ok {
		return v
	}
	v := int64(k) * ct.factorial(k-1)
	if ct.fact == nil {
		ct.fact = make(map[int]int64)
	}
	ct.fact[k] = v
	return v
}
