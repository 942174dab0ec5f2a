package bcd

// An Int is an arbitrary-precision signed integer stored as packed BCD.
// The zero value denotes 0 and is ready to use.
//
// Every operation leaves its operands untouched and returns a freshly
// allocated, normalized result: no leading zero words, no negative zero.
// Distinct Int values may therefore be used from different goroutines as
// long as each value is accessed by one goroutine at a time.
type Int struct {
	neg bool
	abs bcd
}

// Copy returns a deep copy of x.
func (x *Int) Copy() *Int {
	return &Int{neg: x.neg, abs: x.abs.clone()}
}

// Swap exchanges the contents of x and y without copying their digits.
func (x *Int) Swap(y *Int) {
	x.neg, y.neg = y.neg, x.neg
	x.abs, y.abs = y.abs, x.abs
}

// Sign returns -1 if x < 0, 0 if x == 0 and +1 if x > 0.
func (x *Int) Sign() int {
	if len(x.abs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool { return len(x.abs) == 0 }

// Cmp compares x and y and returns -1 if x < y, 0 if x == y and +1 if x > y.
func (x *Int) Cmp(y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := x.abs.cmp(y.abs)
	if x.neg {
		c = -c
	}
	return c
}

// Pow returns x**k for k >= 0, computed by repeated squaring over the bits
// of k. Pow(0) is 1 for any x, including 0.
func (x *Int) Pow(k uint) *Int {
	z := &Int{abs: bcd{1}}
	p := x.Copy()
	for k > 0 {
		if k&1 != 0 {
			z = z.Mul(p)
		}
		k >>= 1
		if k > 0 {
			p = p.Mul(p)
		}
	}
	return z
}
