package bcd

import "github.com/zeebo/errs"

// Error classes returned by operations that can fail on caller input.
// Use the Has method of a class to test membership:
//
//	if bcd.ErrSyntax.Has(err) { ... }
//
// Internal consistency failures (an arithmetic step producing an invalid
// digit, the division estimator collapsing) are programming errors and
// panic instead.
var (
	// ErrSyntax reports a malformed decimal literal.
	ErrSyntax = errs.Class("bcd: syntax")
	// ErrRange reports a value outside the representable range of the
	// requested conversion or operation.
	ErrRange = errs.Class("bcd: out of range")
	// ErrDivision reports a division by zero.
	ErrDivision = errs.Class("bcd: division")
	// ErrRounding reports an invalid rounding granularity.
	ErrRounding = errs.Class("bcd: rounding")
	// ErrCorrupt reports a digit outside 0..9 in caller-supplied data.
	ErrCorrupt = errs.Class("bcd: corrupt")
)
