// Copyright 2026 The spongekit Authors
// This file is part of the keccak library.
//
// The keccak library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The keccak library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the keccak library. If not, see <http://www.gnu.org/licenses/>.

// Package keccak computes Keccak-256 and Keccak-512 digests with the
// original (pre-NIST) pad10*1 padding. Digests do NOT match SHA3-256 or
// SHA3-512, which use domain-separated padding.
package keccak

import (
	"bytes"
	"io"
)

// Sum256 computes the Keccak-256 digest of everything readable from r,
// consuming r to completion. Read errors are returned verbatim and yield
// no digest.
func Sum256(r io.Reader) (Hash, error) {
	var h Hash
	s := newSponge(HashLength)
	if err := s.readFrom(r); err != nil {
		return Hash{}, err
	}
	s.squeeze(h[:])
	return h, nil
}

// Sum512 computes the Keccak-512 digest of everything readable from r,
// consuming r to completion.
func Sum512(r io.Reader) (Hash512, error) {
	var h Hash512
	s := newSponge(Hash512Length)
	if err := s.readFrom(r); err != nil {
		return Hash512{}, err
	}
	s.squeeze(h[:])
	return h, nil
}

// Keccak256Hash computes the Keccak-256 digest of the concatenation of data.
func Keccak256Hash(data ...[]byte) Hash {
	h, _ := Sum256(concat(data))
	return h
}

// Keccak512Hash computes the Keccak-512 digest of the concatenation of data.
func Keccak512Hash(data ...[]byte) Hash512 {
	h, _ := Sum512(concat(data))
	return h
}

// Keccak256 computes the Keccak-256 digest of the concatenation of data and
// returns it as a fresh 32-byte slice.
func Keccak256(data ...[]byte) []byte {
	h := Keccak256Hash(data...)
	return h[:]
}

// Keccak512 computes the Keccak-512 digest of the concatenation of data and
// returns it as a fresh 64-byte slice.
func Keccak512(data ...[]byte) []byte {
	h := Keccak512Hash(data...)
	return h[:]
}

// concat presents a list of byte slices as one contiguous stream. Reads
// from in-memory slices cannot fail, so the one-shot helpers ignore the
// error from the sum functions.
func concat(data [][]byte) io.Reader {
	readers := make([]io.Reader, len(data))
	for i, b := range data {
		readers[i] = bytes.NewReader(b)
	}
	return io.MultiReader(readers...)
}
