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

import "math/bits"

// The 1600-bit permutation state is 25 little-endian 64-bit lanes arranged
// as a 5x5 matrix, lane (x, y) at index x + 5y.
const (
	numLanes  = 25
	numRounds = 24
)

// roundConstants holds the per-round value XORed into lane 0 by the iota step.
var roundConstants = [numRounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a,
	0x8000000080008000, 0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008a,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotationOffsets and piLookup drive the fused rho+pi step: entry k says
// "rotate the value in flight by rotationOffsets[k] and place it at lane
// piLookup[k]". The lookup table is a single 24-step cycle starting and
// ending at lane 1; lane 0 is not moved or rotated.
var rotationOffsets = [numLanes - 1]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var piLookup = [numLanes - 1]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// keccakF1600 applies the full 24-round Keccak-f[1600] permutation to the
// state in place. Each round is theta, rho+pi, chi, iota, in that order.
func keccakF1600(a *[numLanes]uint64) {
	for round := 0; round < numRounds; round++ {
		// theta: XOR each lane with the parity of its two neighbour columns.
		var c [5]uint64
		for i := 0; i < 5; i++ {
			c[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			d := c[(i+4)%5] ^ bits.RotateLeft64(c[(i+1)%5], 1)
			for j := 0; j < numLanes; j += 5 {
				a[i+j] ^= d
			}
		}

		// rho and pi: walk the lookup cycle, carrying the displaced lane
		// forward so no slot is read after it has been overwritten.
		wanderer := a[1]
		for k := 0; k < numLanes-1; k++ {
			j := piLookup[k]
			rotated := bits.RotateLeft64(wanderer, rotationOffsets[k])
			wanderer = a[j]
			a[j] = rotated
		}

		// chi: per row, mix from a snapshot taken before the row mutates.
		var b [5]uint64
		for j := 0; j < numLanes; j += 5 {
			for i := 0; i < 5; i++ {
				b[i] = a[i+j]
			}
			for i := 0; i < 5; i++ {
				a[i+j] ^= ^b[(i+1)%5] & b[(i+2)%5]
			}
		}

		// iota
		a[0] ^= roundConstants[round]
	}
}
