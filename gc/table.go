//
// table.go
//
// Copyright (c) 2025-2026 The andgate authors
//
// All rights reserved.
//

package gc

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

const (
	// EntrySize is the byte length of one table entry:
	// iv1(16) || iv2(16) || ciphertext(32).
	EntrySize = 64

	// PayloadSize is the plaintext payload length of one entry.
	PayloadSize = 32

	// TableEntries is the number of entries in a two-input gate table.
	TableEntries = 4

	// TableSize is the byte length of a serialized table.
	TableSize = TableEntries * EntrySize
)

// TableEntry is an opaque doubly-encrypted table row.
type TableEntry [EntrySize]byte

func (e TableEntry) String() string {
	return fmt.Sprintf("%x-%x-%x", e[:16], e[16:32], e[32:])
}

// Table is a garbled AND table: entry (i,j) at index 2i+j encodes the
// output bit i AND j under input labels (A_i, B_j).
type Table [TableEntries]TableEntry

// Bytes serializes the table as the concatenation of its entries in
// index order.
func (t *Table) Bytes() []byte {
	buf := make([]byte, 0, TableSize)
	for i := range t {
		buf = append(buf, t[i][:]...)
	}
	return buf
}

// TableFromBytes parses a table serialized with Bytes.
func TableFromBytes(data []byte) (Table, error) {
	var t Table

	if len(data) != TableSize {
		return t, errors.Newf("gc: table length %d, expected %d",
			len(data), TableSize)
	}
	for i := range t {
		copy(t[i][:], data[i*EntrySize:(i+1)*EntrySize])
	}
	return t, nil
}
