//
// co_helpers.go
//
// Copyright (c) 2025-2026 The andgate authors
//
// All rights reserved.
//

package ot

import (
	"io"
	"math/big"

	"github.com/cockroachdb/errors"

	"github.com/twopc/andgate/crypt"
	"github.com/twopc/andgate/ecc"
)

var one = big.NewInt(1)

// SenderSetup contains the sender's ephemerals for one transfer: the
// secret scalar a and the public point A = a*G. The setup must not be
// reused across transfers.
type SenderSetup struct {
	// Scalar stores the secret exponent 'a'.
	Scalar *big.Int

	// A is the public point a*G.
	A ecc.Point
}

// NewSenderSetup samples the sender randomness.
func NewSenderSetup(rand io.Reader) (SenderSetup, error) {
	// a <- Zp
	a, err := ecc.NewScalar(rand)
	if err != nil {
		return SenderSetup{}, err
	}
	// A = a*G
	return SenderSetup{
		Scalar: a,
		A:      ecc.BaseMul(a),
	}, nil
}

// SenderKeys derives the two masking keys from the receiver's point:
// k0 = H(a*B) and k1 = H(a*(B-A)), where H is SHA-256 over the SEC1
// uncompressed serialization of the point. Exactly one of the keys
// matches the receiver's key H(b*A).
func SenderKeys(setup SenderSetup, b ecc.Point) (
	k0, k1 [crypt.DigestSize]byte, err error) {

	if !ecc.OnCurve(b) {
		err = errors.Wrap(ecc.ErrInvalidPoint, "ot: receiver point")
		return
	}

	// K0 = a*B
	key0 := ecc.Mul(setup.Scalar, b)

	// K1 = a*(B - A), with B - A computed as B + (N-1)*A.
	nm1 := new(big.Int).Sub(ecc.Order(), one)
	diff := ecc.MulAdd(one, b, nm1, setup.A)
	key1 := ecc.Mul(setup.Scalar, diff)

	k0 = crypt.Digest(ecc.Marshal(key0))
	k1 = crypt.Digest(ecc.Marshal(key1))
	return
}

// Choice contains the receiver's ephemerals for one transfer.
type Choice struct {
	// Scalar stores the secret exponent 'b'.
	Scalar *big.Int

	// Bit is the receiver's choice bit.
	Bit bool

	// A is the sender's public point.
	A ecc.Point

	// B is the point transmitted to the sender: b*G for choice 0,
	// A + b*G for choice 1.
	B ecc.Point
}

// NewChoice samples the receiver randomness and builds the point B
// for the choice bit. The sender cannot distinguish the two cases
// because b*G is uniform in the group either way.
func NewChoice(rand io.Reader, a ecc.Point, bit bool) (Choice, error) {
	if !ecc.OnCurve(a) {
		return Choice{}, errors.Wrap(ecc.ErrInvalidPoint, "ot: sender point")
	}

	// b <- Zp
	b, err := ecc.NewScalar(rand)
	if err != nil {
		return Choice{}, err
	}

	t := ecc.BaseMul(b)
	if bit {
		t = ecc.MulAdd(one, a, one, t)
	}

	return Choice{
		Scalar: b,
		Bit:    bit,
		A:      a,
		B:      t,
	}, nil
}

// ReceiverKey derives the receiver's masking key k = H(b*A).
func ReceiverKey(choice Choice) [crypt.DigestSize]byte {
	k := ecc.Mul(choice.Scalar, choice.A)
	return crypt.Digest(ecc.Marshal(k))
}

// maskLabel XORs data in place with the repeating key stream
// key[i mod 32]. The mask is used exactly once per label.
func maskLabel(key [crypt.DigestSize]byte, data []byte) {
	for i := range data {
		data[i] ^= key[i%len(key)]
	}
}

func wipeBytes(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
