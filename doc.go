// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bcd implements arbitrary-precision signed integer arithmetic over a
packed binary-coded decimal representation.

Each 64-bit word carries 15 decimal digits, one per nibble, with the top
nibble reserved as a carry cell. Decimal addition is performed directly in
the binary lanes with the excess-six technique: every nibble is pre-biased
by 6 so that a decimal overflow turns into a binary overflow detectable with
a single mask, letting carries propagate across a whole 15-digit word in
constant time. Subtraction rides on per-nibble ten's complements,
multiplication on a shift-and-add nibble kernel, and division on restoring
long division driven by a floating-point quotient estimator.

The zero value of Int denotes 0 and is ready to use:

	x := new(bcd.Int) // x is an *Int of value 0

Values are constructed from decimal literals (including scientific notation
with a fraction and a signed exponent) or from machine numbers:

	x, err := bcd.Parse("-000123.4500E+2") // x = -12345
	y := bcd.New(7)

Every operation leaves its operands untouched and returns a freshly
allocated result, so values can be shared freely as long as each one is used
by a single goroutine at a time:

	q, r, err := x.QuoRem(y)

Division is truncated: the quotient sign is the XOR of the operand signs and
the remainder takes the dividend's sign, so q*y + r == x always holds.

The bitwise operations work on top of decimal arithmetic via an explicit
table of powers of two built with BitValues. They are correct but expensive,
and exist for callers that need an occasional mask over decimal values, not
for bit twiddling in bulk.
*/
package bcd
