//
// prng.go
//
// Copyright (c) 2025-2026 The andgate authors
//
// All rights reserved.
//

// Package prng provides the random number generator capability used by
// the curve, gate, and OT packages. The generator is always passed in
// explicitly so tests can substitute a deterministic stream.
package prng

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/chacha20"
)

// SeedSize is the seed length of the deterministic generator.
const SeedSize = chacha20.KeySize

// System returns the process-wide cryptographic random number
// generator.
func System() io.Reader {
	return rand.Reader
}

// Deterministic implements a seeded pseudo random generator. It is
// used by tests and debug runs; it is not a substitute for System in
// real exchanges.
type Deterministic struct {
	stream *chacha20.Cipher
}

// NewDeterministic creates a new deterministic generator for the seed.
func NewDeterministic(seed [SeedSize]byte) (*Deterministic, error) {
	var nonce [chacha20.NonceSize]byte

	stream, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &Deterministic{
		stream: stream,
	}, nil
}

// Read fills buf with pseudo random bytes. It never fails.
func (d *Deterministic) Read(buf []byte) (int, error) {
	for i := range buf {
		buf[i] = 0
	}
	d.stream.XORKeyStream(buf, buf)
	return len(buf), nil
}
