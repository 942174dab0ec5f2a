// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcd

import "math/bits"

// A Word is a 64-bit lane of packed binary-coded decimal digits. The low 15
// nibbles hold one decimal digit each; the top nibble is a carry cell and is
// zero in any normalized word.
type Word uint64

const (
	digitsPerWord = 15 // decimal digits per Word
	highShift     = 60 // bit position of the carry nibble
	wordMask      = 0x0fffffffffffffff

	// Per-nibble constants for the excess-six addition trick. See
	// http://www.divms.uiowa.edu/~jones/bcd/bcd.html.
	sixes     Word = 0x0666666666666666
	carryBits Word = 0x1111111111111110
)

const debugBCD = true

// addBCD returns the per-nibble decimal sum of a and b. Each nibble is
// pre-biased by 6 so that a decimal overflow becomes a binary overflow into
// the next nibble; the bias is then removed from the nibbles that did not
// overflow. Any overflow out of the low 15 nibbles surfaces in the carry
// nibble.
func addBCD(a, b Word) Word {
	t1 := a + sixes
	t2 := t1 + b
	t3 := t1 ^ b
	t4 := t2 ^ t3
	t5 := ^t4 & carryBits
	t6 := (t5 >> 2) | (t5 >> 3)
	return t2 - t6
}

// tenComp returns the per-nibble ten's complement of a, computed as the
// two's complement corrected with the same excess-six mask.
func tenComp(a Word) Word {
	t1 := ^a
	t2 := -a
	t3 := t1 ^ 1
	t4 := t2 ^ t3
	t5 := ^t4 & carryBits
	t6 := (t5 >> 2) | (t5 >> 3)
	return t2 - t6
}

func subBCD(a, b Word) Word { return addBCD(a, tenComp(b)) }

func incBCD(a Word) Word { return addBCD(a, 1) }
func decBCD(a Word) Word { return subBCD(a, 1) }

// checkWord returns a non-zero mask iff any digit nibble of a exceeds 9.
func checkWord(a Word) Word {
	t1 := a + sixes
	return (t1 ^ a) & carryBits
}

// carrySplit splits off the carry nibble of a, returning the masked word and
// the carry count.
func carrySplit(a Word) (Word, Word) {
	return a & wordMask, a >> highShift
}

var pow10s = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

var maxDigits = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// mag returns the magnitude of x such that 10**(mag-1) <= x < 10**mag.
// Returns 0 for x == 0.
func mag(x uint64) int {
	d := maxDigits[bits.Len64(x)]
	if x < pow10s[d-1] {
		d--
	}
	return int(d)
}
