package bcd

// BitValues returns the decimal values of 2**0 through 2**(n-1), built by a
// doubling chain. The table is immutable once built and may be shared
// read-only across operations and goroutines; the bitwise operations below
// take it as an explicit argument.
//
// Bitwise operations on a decimal representation are inherently expensive,
// O(n) additions and comparisons per operand. They are provided for
// completeness, not speed.
func BitValues(n int) []*Int {
	vals := make([]*Int, n)
	v := bcd{1}
	for i := 0; i < n; i++ {
		vals[i] = &Int{abs: v}
		v = digitsAdd(v, v)
	}
	return vals
}

// bitDecompose obtains the bit vector of |x| by trial subtraction against
// the table from the top down. A residue after the whole table has been
// consumed means x does not fit the table's range.
func bitDecompose(x bcd, table []*Int) ([]bool, error) {
	set := make([]bool, len(table))
	rem := x.clone()
	for i := len(table) - 1; i >= 0; i-- {
		if rem.cmp(table[i].abs) >= 0 {
			rem, _ = digitsSub(rem, table[i].abs)
			set[i] = true
		}
	}
	if len(rem) != 0 {
		return nil, ErrRange.New("operand out of range of the bit value table")
	}
	return set, nil
}

// bitCompose sums the table entries selected by the bit vector.
func bitCompose(set []bool, table []*Int) *Int {
	var z bcd
	for i, b := range set {
		if b {
			z = digitsAdd(z, table[i].abs)
		}
	}
	return &Int{abs: z}
}

// And returns the bitwise AND of the magnitudes of x and y over the given
// bit value table.
func (x *Int) And(y *Int, table []*Int) (*Int, error) {
	xb, err := bitDecompose(x.abs, table)
	if err != nil {
		return nil, err
	}
	yb, err := bitDecompose(y.abs, table)
	if err != nil {
		return nil, err
	}
	for i := range xb {
		xb[i] = xb[i] && yb[i]
	}
	return bitCompose(xb, table), nil
}

// Or returns the bitwise OR of the magnitudes of x and y over the given bit
// value table.
func (x *Int) Or(y *Int, table []*Int) (*Int, error) {
	xb, err := bitDecompose(x.abs, table)
	if err != nil {
		return nil, err
	}
	yb, err := bitDecompose(y.abs, table)
	if err != nil {
		return nil, err
	}
	for i := range xb {
		xb[i] = xb[i] || yb[i]
	}
	return bitCompose(xb, table), nil
}

// Xor returns the bitwise XOR of the magnitudes of x and y over the given
// bit value table.
func (x *Int) Xor(y *Int, table []*Int) (*Int, error) {
	xb, err := bitDecompose(x.abs, table)
	if err != nil {
		return nil, err
	}
	yb, err := bitDecompose(y.abs, table)
	if err != nil {
		return nil, err
	}
	for i := range xb {
		xb[i] = xb[i] != yb[i]
	}
	return bitCompose(xb, table), nil
}

// Not returns the complement of the magnitude of x against 2**n - 1 where n
// is the size of the given bit value table.
func (x *Int) Not(table []*Int) (*Int, error) {
	xb, err := bitDecompose(x.abs, table)
	if err != nil {
		return nil, err
	}
	for i := range xb {
		xb[i] = !xb[i]
	}
	return bitCompose(xb, table), nil
}
