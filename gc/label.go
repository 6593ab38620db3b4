//
// label.go
//
// Copyright (c) 2025-2026 The andgate authors
//
// All rights reserved.
//

// Package gc implements the garbled AND gate: wire labels, the
// four-entry ciphertext table, table construction on the garbler side,
// and blind evaluation on the evaluator side.
package gc

import (
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/twopc/andgate/crypt"
)

const (
	// KeySize is the symmetric key length of a wire label.
	KeySize = crypt.KeySize

	// LabelSize is the transport image of a label: the key bytes
	// followed by one permute byte.
	LabelSize = KeySize + 1
)

// LabelData contains label data as a byte array. This is the exact
// byte blob the oblivious transfer masks and carries.
type LabelData [LabelSize]byte

// Label implements a wire label: a 128-bit symmetric key and a
// permute bit. Each wire has two labels, one per logical value. The
// permute bit is transmitted but not consulted during evaluation.
type Label struct {
	Key     [KeySize]byte
	Permute bool
}

// NewLabel creates a new label with a fresh random key and the given
// permute bit.
func NewLabel(rand io.Reader, permute bool) (Label, error) {
	var label Label

	if _, err := io.ReadFull(rand, label.Key[:]); err != nil {
		return label, errors.Wrap(err, "gc: label key generation failed")
	}
	label.Permute = permute
	return label, nil
}

func (l Label) String() string {
	var p int
	if l.Permute {
		p = 1
	}
	return fmt.Sprintf("%x/%d", l.Key, p)
}

// Equal tests if the labels are equal. The key comparison is
// constant-time.
func (l Label) Equal(o Label) bool {
	return subtle.ConstantTimeCompare(l.Key[:], o.Key[:]) == 1 &&
		l.Permute == o.Permute
}

// GetData gets the label as label data.
func (l Label) GetData(buf *LabelData) {
	copy(buf[:KeySize], l.Key[:])
	if l.Permute {
		buf[KeySize] = 1
	} else {
		buf[KeySize] = 0
	}
}

// SetData sets the label from label data. Any non-zero permute byte
// counts as a set permute bit.
func (l *Label) SetData(data *LabelData) {
	copy(l.Key[:], data[:KeySize])
	l.Permute = data[KeySize] != 0
}

// Bytes returns the label data as bytes.
func (l Label) Bytes(buf *LabelData) []byte {
	l.GetData(buf)
	return buf[:]
}

// SetBytes sets the label from bytes.
func (l *Label) SetBytes(data []byte) error {
	if len(data) != LabelSize {
		return errors.Newf("gc: label data length %d, expected %d",
			len(data), LabelSize)
	}
	var buf LabelData
	copy(buf[:], data)
	l.SetData(&buf)
	return nil
}
