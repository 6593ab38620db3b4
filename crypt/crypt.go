//
// crypt.go
//
// Copyright (c) 2025-2026 The andgate authors
//
// All rights reserved.
//

// Package crypt provides the symmetric primitives of the garbled gate:
// AES-128-CBC with an explicit IV and no padding, and SHA-256.
package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"

	"github.com/cockroachdb/errors"
)

const (
	// KeySize is the AES-128 key length.
	KeySize = 16

	// IVSize is the CBC initialization vector length.
	IVSize = aes.BlockSize

	// DigestSize is the SHA-256 digest length.
	DigestSize = sha256.Size
)

// ErrBlockSize signals input whose length is not a multiple of the
// AES block size. Callers must supply length-aligned data; no padding
// is added or removed.
var ErrBlockSize = errors.New("crypt: input not block aligned")

// EncryptCBC encrypts pt with AES-128-CBC under key and iv. The
// plaintext length must be a multiple of the block size.
func EncryptCBC(key, iv, pt []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}
	if len(pt)%aes.BlockSize != 0 {
		return nil, errors.Wrapf(ErrBlockSize, "plaintext length %d", len(pt))
	}
	ct := make([]byte, len(pt))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, pt)
	return ct, nil
}

// DecryptCBC decrypts ct with AES-128-CBC under key and iv. The
// ciphertext length must be a multiple of the block size.
func DecryptCBC(key, iv, ct []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}
	if len(ct)%aes.BlockSize != 0 {
		return nil, errors.Wrapf(ErrBlockSize, "ciphertext length %d", len(ct))
	}
	pt := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(pt, ct)
	return pt, nil
}

func newBlock(key, iv []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, errors.Newf("crypt: key length %d, expected %d",
			len(key), KeySize)
	}
	if len(iv) != IVSize {
		return nil, errors.Newf("crypt: IV length %d, expected %d",
			len(iv), IVSize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "crypt: cipher init failed")
	}
	return block, nil
}

// Digest computes the SHA-256 digest over the concatenation of the
// argument chunks.
func Digest(chunks ...[]byte) [DigestSize]byte {
	hash := sha256.New()
	for _, chunk := range chunks {
		hash.Write(chunk)
	}
	var sum [DigestSize]byte
	hash.Sum(sum[:0])
	return sum
}
