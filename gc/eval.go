//
// eval.go
//
// Copyright (c) 2025-2026 The andgate authors
//
// All rights reserved.
//

package gc

import (
	"github.com/cockroachdb/errors"

	"github.com/twopc/andgate/crypt"
)

// ErrEvalFailed signals that no table entry passed the validity
// check. It indicates corrupted table bytes or mismatched input
// labels.
var ErrEvalFailed = errors.New("gc: gate evaluation failed")

// errEntryMiss marks an entry that did not decrypt to a valid
// payload. It is internal to evaluation: a miss only moves the
// evaluator to the next entry.
var errEntryMiss = errors.New("gc: entry miss")

// DecryptEntry attempts to open one table entry with the input labels
// wa, wb. Decryption runs in the reverse of the encryption order:
// outer under wb's key, inner under wa's key. The payload is accepted
// iff bytes 1..31 are zero and byte 0 is 0 or 1.
func DecryptEntry(wa, wb Label, entry TableEntry) (bool, error) {
	iv1 := entry[:crypt.IVSize]
	iv2 := entry[crypt.IVSize : 2*crypt.IVSize]

	inner, err := crypt.DecryptCBC(wb.Key[:], iv2, entry[2*crypt.IVSize:])
	if err != nil {
		return false, errors.Wrap(err, "gc: outer decryption failed")
	}
	payload, err := crypt.DecryptCBC(wa.Key[:], iv1, inner)
	if err != nil {
		return false, errors.Wrap(err, "gc: inner decryption failed")
	}

	for i := 1; i < PayloadSize; i++ {
		if payload[i] != 0 {
			return false, errEntryMiss
		}
	}
	switch payload[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, errEntryMiss
}

// Evaluate opens the garbled table with the input labels. It tries
// the entries in index order and returns the first bit that
// validates. Only the bit is returned, not the index of the entry
// that validated; the table is not permuted, so that index is 2i+j
// of the input combination.
func Evaluate(wa, wb Label, table Table) (bool, error) {
	for i := range table {
		bit, err := DecryptEntry(wa, wb, table[i])
		if err != nil {
			if errors.Is(err, errEntryMiss) {
				continue
			}
			return false, err
		}
		return bit, nil
	}
	return false, ErrEvalFailed
}
