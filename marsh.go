// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ints.

package bcd

import "encoding/binary"

// Gob codec version. Permits backward-compatible changes to the encoding.
const intGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
func (x *Int) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	buf := make([]byte, 2+len(x.abs)*8)
	buf[0] = intGobVersion
	if x.neg {
		buf[1] = 1
	}
	for i, w := range x.abs {
		binary.BigEndian.PutUint64(buf[2+i*8:], uint64(w))
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface. The payload is
// validated before use: a nibble outside 0..9 or a non-zero carry cell is
// reported as an ErrCorrupt error rather than trusted.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Int{}
		return nil
	}
	if buf[0] != intGobVersion {
		return ErrCorrupt.New("encoding version %d not supported", buf[0])
	}
	if (len(buf)-2)%8 != 0 {
		return ErrCorrupt.New("truncated word array")
	}
	abs := make(bcd, (len(buf)-2)/8)
	for i := range abs {
		w := Word(binary.BigEndian.Uint64(buf[2+i*8:]))
		if checkWord(w) != 0 || w>>highShift != 0 {
			return ErrCorrupt.New("invalid digit in word %d", i)
		}
		abs[i] = w
	}
	z.abs = abs.norm()
	z.neg = buf[1]&1 != 0 && len(z.abs) > 0
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Int) MarshalText() ([]byte, error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Int) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*z = *v
	return nil
}
