package bcd

import "math/bits"

// bcd is an unsigned integer magnitude stored as packed BCD words,
// little-endian by word significance: x[0] holds the 15 least significant
// decimal digits.
//
// A magnitude is normalized if the slice contains no leading zero words and
// every nibble of every word encodes a digit 0..9 with a zero carry nibble.
// During arithmetic operations denormalized values occur but are always
// normalized before the final result is returned. The normalized
// representation of 0 is the empty or nil slice (length = 0).
type bcd []Word

// norm truncates leading zero words. Any word holding a nibble outside 0..9
// at this point indicates a broken arithmetic step, not bad input.
func (x bcd) norm() bcd {
	if debugBCD {
		for _, w := range x {
			if checkWord(w) != 0 || w>>highShift != 0 {
				panic("BUG: invalid digit in bcd word")
			}
		}
	}
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

func (x bcd) clone() bcd {
	if len(x) == 0 {
		return nil
	}
	z := make(bcd, len(x))
	copy(z, x)
	return z
}

// at returns the i'th word of x, reading zero beyond its length.
func (x bcd) at(i int) Word {
	if i < len(x) {
		return x[i]
	}
	return 0
}

// digits returns the number of significant decimal digits in x.
// x must be normalized.
func (x bcd) digits() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*digitsPerWord + (bits.Len64(uint64(x[len(x)-1]))+3)/4
}

// cmp compares the magnitudes |x| and |y|. Packed BCD preserves numeric
// order, so normalized magnitudes compare word-wise from the top.
func (x bcd) cmp(y bcd) (r int) {
	m, n := len(x), len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}
	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}
	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

// digitIter enumerates the decimal digits of a magnitude most significant
// first. Leading zero digits are skipped on construction so that len reports
// the number of significant digits (0 for a zero value).
type digitIter struct {
	x   bcd
	idx int  // number of words left, current digit is in x[idx-1]
	shf uint // bit position of the current digit
}

func (x bcd) iter() digitIter {
	it := digitIter{x: x, idx: len(x), shf: highShift - 4}
	for it.idx > 0 && (it.x[it.idx-1]>>it.shf)&0xf == 0 {
		it.step()
	}
	return it
}

func (it *digitIter) step() {
	if it.shf == 0 {
		it.shf = highShift - 4
		it.idx--
	} else {
		it.shf -= 4
	}
}

// len returns the number of digits left to enumerate.
func (it *digitIter) len() int {
	if it.idx == 0 {
		return 0
	}
	return (it.idx-1)*digitsPerWord + int(it.shf)/4 + 1
}

// next returns the next digit. It panics on a nibble outside 0..9: values
// handed to an iterator have been normalized already, so a bad nibble means
// the representation is corrupt.
func (it *digitIter) next() (byte, bool) {
	if it.idx == 0 {
		return 0, false
	}
	d := byte(it.x[it.idx-1]>>it.shf) & 0xf
	if d > 9 {
		panic("BUG: corrupt bcd number")
	}
	it.step()
	return d, true
}

// leadDigit returns the most significant digit of x, 0 for a zero value.
func leadDigit(x bcd) byte {
	it := x.iter()
	d, _ := it.next()
	return d
}
