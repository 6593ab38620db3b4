//
// curve.go
//
// Copyright (c) 2025-2026 The andgate authors
//
// All rights reserved.
//

// Package ecc implements the NIST P-256 group operations used by the
// oblivious transfer: uniform scalar sampling, point multiplication,
// and SEC1 uncompressed point serialization.
package ecc

import (
	"crypto/elliptic"
	"io"
	"math/big"

	"github.com/cockroachdb/errors"
)

const (
	// ScalarSize is the byte length of a group scalar.
	ScalarSize = 32

	// PointSize is the byte length of an SEC1 uncompressed point:
	// 0x04 tag followed by two 32-byte coordinates.
	PointSize = 65
)

// ErrInvalidPoint signals that point bytes failed curve validation.
var ErrInvalidPoint = errors.New("ecc: invalid point")

var curve = elliptic.P256()

// Point describes an affine P-256 point.
type Point struct {
	// X is the affine x-coordinate.
	X *big.Int

	// Y is the affine y-coordinate.
	Y *big.Int
}

// NewScalar samples a uniform scalar in [0, N). It draws ScalarSize
// bytes from rand, interprets them big-endian, and reduces modulo the
// group order. The reduction bias is negligible for P-256.
func NewScalar(rand io.Reader) (*big.Int, error) {
	var buf [ScalarSize]byte

	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return nil, errors.Wrap(err, "ecc: scalar sampling failed")
	}
	s := new(big.Int).SetBytes(buf[:])
	return s.Mod(s, curve.Params().N), nil
}

// Order returns the group order N.
func Order() *big.Int {
	return new(big.Int).Set(curve.Params().N)
}

// Base returns the group generator G.
func Base() Point {
	params := curve.Params()
	return Point{
		X: new(big.Int).Set(params.Gx),
		Y: new(big.Int).Set(params.Gy),
	}
}

// BaseMul computes s*G.
func BaseMul(s *big.Int) Point {
	x, y := curve.ScalarBaseMult(s.Bytes())
	return Point{X: x, Y: y}
}

// Mul computes s*P.
func Mul(s *big.Int, p Point) Point {
	x, y := curve.ScalarMult(p.X, p.Y, s.Bytes())
	return Point{X: x, Y: y}
}

// MulAdd computes s1*P1 + s2*P2. Point subtraction is expressed as
// MulAdd(1, P1, N-1, P2).
func MulAdd(s1 *big.Int, p1 Point, s2 *big.Int, p2 Point) Point {
	x1, y1 := curve.ScalarMult(p1.X, p1.Y, s1.Bytes())
	x2, y2 := curve.ScalarMult(p2.X, p2.Y, s2.Bytes())
	x, y := curve.Add(x1, y1, x2, y2)
	return Point{X: x, Y: y}
}

// OnCurve reports whether p is a valid affine point on the curve.
func OnCurve(p Point) bool {
	return p.X != nil && p.Y != nil && curve.IsOnCurve(p.X, p.Y)
}

// Wipe overwrites the scalar value with zero. Callers use it to
// destroy session ephemerals when an exchange returns.
func Wipe(s *big.Int) {
	if s != nil {
		s.SetInt64(0)
	}
}
