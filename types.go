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

package keccak

import (
	"bytes"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/spongekit/keccak/hexutil"
)

// Digest lengths in bytes.
const (
	HashLength    = 32
	Hash512Length = 64
)

// Hash is a 256-bit Keccak digest. The zero value is valid and never equals
// a computed digest. Hash is comparable and can be used as a map key; for
// comparisons of secret material use Equal, which runs in constant time.
//
// Rendering convention for both digest types: String returns bare lowercase
// hex, Hex and the %#x verb prepend "0x".
type Hash [HashLength]byte

// BytesToHash sets b to a Hash, left-padding or truncating from the left so
// that the rightmost bytes of b survive, as with integer conversions.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// HexToHash parses s, with or without 0x prefix, into a Hash.
func HexToHash(s string) Hash { return BytesToHash(hexutil.FromHex(s)) }

// Bytes returns a copy-free view of the hash as a byte slice.
func (h Hash) Bytes() []byte { return h[:] }

// SetBytes sets the hash to the value of b. If b is longer than the hash,
// b is cropped from the left; if shorter, it is left-padded with zeros.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

// Hex returns the 0x-prefixed lowercase hex encoding of the hash.
func (h Hash) Hex() string { return hexutil.Encode(h[:]) }

// String returns the bare lowercase hex encoding of the hash.
func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// Format implements fmt.Formatter. %s and %v render bare hex, %x/%X render
// hex honoring the # flag, %q quotes the bare hex string.
func (h Hash) Format(s fmt.State, c rune) {
	formatDigest(s, c, h[:], "keccak.Hash")
}

// Equal reports whether h and other hold the same bytes. The comparison is
// constant-time, so Hash values may carry secret material (e.g. MAC values)
// without leaking through timing. Plain == remains available where timing
// does not matter.
func (h Hash) Equal(other Hash) bool {
	return subtle.ConstantTimeCompare(h[:], other[:]) == 1
}

// Cmp compares two hashes lexicographically, returning -1, 0 or 1. Cmp is
// not constant-time; it exists for ordering (sorting, tree keys), not for
// verifying secrets.
func (h Hash) Cmp(other Hash) int { return bytes.Compare(h[:], other[:]) }

// IsZero reports whether the hash is all zero bytes.
func (h Hash) IsZero() bool { return h == Hash{} }

// MarshalText returns the 0x-prefixed hex encoding of h.
func (h Hash) MarshalText() ([]byte, error) {
	return hexutil.Bytes(h[:]).MarshalText()
}

// UnmarshalText parses a hash in 0x-prefixed hex syntax.
func (h *Hash) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Hash", input, h[:])
}

// UnmarshalJSON parses a hash in 0x-prefixed hex syntax.
func (h *Hash) UnmarshalJSON(input []byte) error {
	return hexutil.UnmarshalFixedJSON("Hash", input, h[:])
}

// Hash512 is a 512-bit Keccak digest. It follows the same conventions as
// Hash, except that it defines no ordering.
type Hash512 [Hash512Length]byte

// BytesToHash512 sets b to a Hash512, cropping or left-padding like
// BytesToHash.
func BytesToHash512(b []byte) Hash512 {
	var h Hash512
	h.SetBytes(b)
	return h
}

// HexToHash512 parses s, with or without 0x prefix, into a Hash512.
func HexToHash512(s string) Hash512 { return BytesToHash512(hexutil.FromHex(s)) }

// Bytes returns a copy-free view of the hash as a byte slice.
func (h Hash512) Bytes() []byte { return h[:] }

// SetBytes sets the hash to the value of b, cropping from the left or
// left-padding with zeros as needed.
func (h *Hash512) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-Hash512Length:]
	}
	copy(h[Hash512Length-len(b):], b)
}

// Hex returns the 0x-prefixed lowercase hex encoding of the hash.
func (h Hash512) Hex() string { return hexutil.Encode(h[:]) }

// String returns the bare lowercase hex encoding of the hash.
func (h Hash512) String() string { return hex.EncodeToString(h[:]) }

// Format implements fmt.Formatter with the same verbs as Hash.Format.
func (h Hash512) Format(s fmt.State, c rune) {
	formatDigest(s, c, h[:], "keccak.Hash512")
}

// Equal reports whether h and other hold the same bytes, in constant time.
func (h Hash512) Equal(other Hash512) bool {
	return subtle.ConstantTimeCompare(h[:], other[:]) == 1
}

// IsZero reports whether the hash is all zero bytes.
func (h Hash512) IsZero() bool { return h == Hash512{} }

// MarshalText returns the 0x-prefixed hex encoding of h.
func (h Hash512) MarshalText() ([]byte, error) {
	return hexutil.Bytes(h[:]).MarshalText()
}

// UnmarshalText parses a hash in 0x-prefixed hex syntax.
func (h *Hash512) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Hash512", input, h[:])
}

// UnmarshalJSON parses a hash in 0x-prefixed hex syntax.
func (h *Hash512) UnmarshalJSON(input []byte) error {
	return hexutil.UnmarshalFixedJSON("Hash512", input, h[:])
}

func formatDigest(s fmt.State, c rune, b []byte, typname string) {
	switch c {
	case 'v', 's':
		fmt.Fprintf(s, "%s", hex.EncodeToString(b))
	case 'x', 'X':
		enc := hex.EncodeToString(b)
		if c == 'X' {
			enc = fmt.Sprintf("%X", b)
		}
		if s.Flag('#') {
			enc = "0x" + enc
		}
		fmt.Fprint(s, enc)
	case 'q':
		fmt.Fprintf(s, "%q", hex.EncodeToString(b))
	default:
		fmt.Fprintf(s, "%%!%c(%s=%s)", c, typname, hex.EncodeToString(b))
	}
}
