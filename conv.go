package bcd

import "math"

// New returns an Int with the value of x.
func New(x int64) *Int {
	neg := x < 0
	ux := uint64(x)
	if neg {
		ux = -ux
	}
	return &Int{neg: neg, abs: estimateAsBCD(ux, 0)}
}

// NewUint returns an Int with the value of x. The full unsigned range is
// accepted.
func NewUint(x uint64) *Int {
	return &Int{abs: estimateAsBCD(x, 0)}
}

// NewFloat returns an Int with the integral value of x, rounded to the
// nearest integer with halves rounded away from zero (the magnitude is
// rounded half-up). Fractional precision beyond the double's integral value
// is lost; magnitudes beyond the uint64 range saturate.
func NewFloat(x float64) *Int {
	neg := math.Signbit(x)
	f := math.Floor(math.Abs(x) + 0.5)
	var v uint64
	switch {
	case math.IsNaN(f):
		v = 0
	case f >= maxFactor:
		v = math.MaxUint64
	default:
		v = uint64(f)
	}
	z := &Int{neg: neg, abs: estimateAsBCD(v, 0)}
	if len(z.abs) == 0 {
		z.neg = false
	}
	return z
}

// String returns the decimal representation of x: a minus sign iff x is
// negative and non-zero, then the digits most significant first with no
// leading zeros. Zero prints as "0".
func (x *Int) String() string {
	it := x.abs.iter()
	n := it.len()
	if n == 0 {
		return "0"
	}
	buf := make([]byte, 0, n+1)
	if x.neg {
		buf = append(buf, '-')
	}
	for {
		d, ok := it.next()
		if !ok {
			return string(buf)
		}
		buf = append(buf, '0'+d)
	}
}

// maxInt64Digits is the digit count beyond which a value cannot be a
// machine integer.
const maxInt64Digits = 20

// Int64 returns the value of x as an int64 and an ErrRange error when x
// does not fit.
func (x *Int) Int64() (int64, error) {
	it := x.abs.iter()
	if it.len() > maxInt64Digits {
		return 0, ErrRange.New("number out of range to convert it to an integer")
	}
	var v uint64
	for {
		d, ok := it.next()
		if !ok {
			break
		}
		if v > (math.MaxUint64-uint64(d))/10 {
			return 0, ErrRange.New("number out of range to convert it to an integer")
		}
		v = v*10 + uint64(d)
	}
	if x.neg {
		if v > uint64(math.MaxInt64)+1 {
			return 0, ErrRange.New("number out of range to convert it to an integer")
		}
		return -int64(v), nil
	}
	if v > uint64(math.MaxInt64) {
		return 0, ErrRange.New("number out of range to convert it to an integer")
	}
	return int64(v), nil
}

// Float64 returns the value of x evaluated in double precision. The result
// is lossy for large values; there is no error on overflow.
func (x *Int) Float64() float64 {
	var f float64
	it := x.abs.iter()
	for {
		d, ok := it.next()
		if !ok {
			break
		}
		f = f*10 + float64(d)
	}
	if x.neg {
		f = -f
	}
	return f
}
