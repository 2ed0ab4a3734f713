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

import "encoding/binary"

// Lane layout on the wire is little-endian regardless of host order. The
// explicit binary.LittleEndian loops make no assumptions about alignment
// or memory layout.

// xorBlockIn XORs buf into the leading lanes of the state, 8 bytes per lane.
// len(buf) must be a multiple of 8 and at most the sponge rate, so capacity
// lanes are never touched.
func xorBlockIn(a *[numLanes]uint64, buf []byte) {
	n := len(buf) / 8
	for i := 0; i < n; i++ {
		a[i] ^= binary.LittleEndian.Uint64(buf)
		buf = buf[8:]
	}
}

// copyLanesOut writes the leading lanes of the state into out.
// len(out) must be a multiple of 8.
func copyLanesOut(a *[numLanes]uint64, out []byte) {
	for i := 0; len(out) >= 8; i++ {
		binary.LittleEndian.PutUint64(out, a[i])
		out = out[8:]
	}
}
