//
// point.go
//
// Copyright (c) 2025-2026 The andgate authors
//
// All rights reserved.
//

package ecc

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

const sec1Tag = 0x04

// Marshal serializes the point in SEC1 uncompressed form. The result
// is always PointSize bytes starting with the 0x04 tag.
func Marshal(p Point) []byte {
	buf := make([]byte, PointSize)
	buf[0] = sec1Tag
	p.X.FillBytes(buf[1 : 1+ScalarSize])
	p.Y.FillBytes(buf[1+ScalarSize:])
	return buf
}

// Unmarshal parses an SEC1 uncompressed point. It fails with
// ErrInvalidPoint if the bytes are ill-formed, the point is not on the
// curve, or the point is the point at infinity.
func Unmarshal(data []byte) (Point, error) {
	if len(data) != PointSize {
		return Point{}, errors.Wrapf(ErrInvalidPoint,
			"length %d, expected %d", len(data), PointSize)
	}
	if data[0] != sec1Tag {
		return Point{}, errors.Wrapf(ErrInvalidPoint,
			"tag 0x%02x, expected 0x%02x", data[0], sec1Tag)
	}
	p := Point{
		X: new(big.Int).SetBytes(data[1 : 1+ScalarSize]),
		Y: new(big.Int).SetBytes(data[1+ScalarSize:]),
	}
	if !OnCurve(p) {
		return Point{}, errors.Wrap(ErrInvalidPoint, "not on curve")
	}
	return p, nil
}
