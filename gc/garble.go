//
// garble.go
//
// Copyright (c) 2025-2026 The andgate authors
//
// All rights reserved.
//

package gc

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/twopc/andgate/crypt"
)

// EncryptEntry builds one table entry for the input labels wa, wb and
// the output bit. The 32-byte payload carries the bit in byte 0 and
// zeros in bytes 1..31; the zeros act as the evaluator's validity
// check. The payload is encrypted first under wa's key with a fresh
// IV, then under wb's key with a second fresh IV.
func EncryptEntry(rand io.Reader, wa, wb Label, bit bool) (TableEntry, error) {
	var entry TableEntry

	iv1 := entry[:crypt.IVSize]
	iv2 := entry[crypt.IVSize : 2*crypt.IVSize]
	if _, err := io.ReadFull(rand, entry[:2*crypt.IVSize]); err != nil {
		return entry, errors.Wrap(err, "gc: IV generation failed")
	}

	var payload [PayloadSize]byte
	if bit {
		payload[0] = 1
	}

	inner, err := crypt.EncryptCBC(wa.Key[:], iv1, payload[:])
	if err != nil {
		return entry, errors.Wrap(err, "gc: inner encryption failed")
	}
	outer, err := crypt.EncryptCBC(wb.Key[:], iv2, inner)
	if err != nil {
		return entry, errors.Wrap(err, "gc: outer encryption failed")
	}
	copy(entry[2*crypt.IVSize:], outer)

	return entry, nil
}

// NewANDTable creates the garbled AND table for the wire labels. The
// entry for input combination (i,j) is stored at index 2i+j.
func NewANDTable(rand io.Reader, a0, a1, b0, b1 Label) (Table, error) {
	var table Table

	// a b c
	// -----
	// 0 0 0
	// 0 1 0
	// 1 0 0
	// 1 1 1
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			wa := a0
			if i == 1 {
				wa = a1
			}
			wb := b0
			if j == 1 {
				wb = b1
			}
			entry, err := EncryptEntry(rand, wa, wb, i == 1 && j == 1)
			if err != nil {
				return table, err
			}
			table[2*i+j] = entry
		}
	}
	return table, nil
}
