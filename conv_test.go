package bcd

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 7, 42, -42, 999999999999999, 1000000000000000,
		math.MaxInt64, math.MinInt64} {
		require.Equal(t, strconv.FormatInt(v, 10), New(v).String(), "%d", v)
	}
	require.True(t, New(0).IsZero())
	require.False(t, New(0).neg)
}

func TestNewUint(t *testing.T) {
	for _, v := range []uint64{0, 1, 9, 10, 999999999999999, 1000000000000000,
		math.MaxInt64 + 1, math.MaxUint64} {
		require.Equal(t, strconv.FormatUint(v, 10), NewUint(v).String(), "%d", v)
	}
}

func TestNewFloat(t *testing.T) {
	td := []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{0.4, "0"},
		{0.5, "1"}, // halves go away from zero
		{0.6, "1"},
		{1, "1"},
		{1.5, "2"},
		{2.7, "3"},
		{-2.7, "-3"},
		{-0.5, "-1"},
		{12345.999, "12346"},
		{1e15, "1000000000000000"},
		{1e19, "10000000000000000000"},
	}
	for i, d := range td {
		z := NewFloat(d.f)
		require.Equal(t, d.want, z.String(), "#%d %v", i, d.f)
		if z.IsZero() {
			require.False(t, z.neg)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for i := 0; i < 300; i++ {
		x, bx := randInt(t, 50)
		require.Equal(t, bx.String(), x.String())
		y, err := Parse(x.String())
		require.NoError(t, err)
		require.Zero(t, x.Cmp(y))
	}
}

func TestInt64(t *testing.T) {
	td := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"-42", -42},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
	}
	for i, d := range td {
		v, err := mustParse(t, d.in).Int64()
		require.NoError(t, err, "#%d", i)
		require.Equal(t, d.want, v, "#%d", i)
	}

	for _, s := range []string{
		"9223372036854775808",
		"-9223372036854775809",
		"18446744073709551616",
		"99999999999999999999",
		"100000000000000000000",
		"123456789012345678901234567890",
	} {
		_, err := mustParse(t, s).Int64()
		require.Error(t, err, "%q", s)
		require.True(t, ErrRange.Has(err), "%q", s)
	}

	for i := 0; i < 200; i++ {
		want := rnd.Int63() - rnd.Int63()
		v, err := New(want).Int64()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
}

func TestFloat64(t *testing.T) {
	td := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"42", 42},
		{"-42", -42},
		{"9007199254740992", 9007199254740992}, // 2**53, exactly representable
		{"1000000000000000000", 1e18},
	}
	for i, d := range td {
		require.Equal(t, d.want, mustParse(t, d.in).Float64(), "#%d", i)
	}
}
