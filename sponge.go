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

import "io"

// sponge is a single-use Keccak sponge. The rate follows from the output
// length as 200 - 2*outLen bytes (136 for Keccak-256, 72 for Keccak-512);
// the remaining capacity lanes are never exposed to input or output.
type sponge struct {
	state  [numLanes]uint64
	rate   int
	outLen int
}

func newSponge(outLen int) *sponge {
	return &sponge{rate: 8*numLanes - 2*outLen, outLen: outLen}
}

// readFrom consumes r to completion, XORing rate-sized blocks into the state
// and permuting after each one. The final short block (possibly empty) is
// padded with the original Keccak pad10*1 rule: 0x01 after the data, 0x80 on
// the last byte of the block. A stream whose length is an exact multiple of
// the rate therefore still absorbs one extra padding-only block.
//
// Any read error other than end of stream aborts immediately; the state is
// not usable afterwards and no partial digest exists.
func (s *sponge) readFrom(r io.Reader) error {
	block := make([]byte, s.rate)
	for {
		n, err := io.ReadFull(r, block)
		switch err {
		case nil:
			xorBlockIn(&s.state, block)
			keccakF1600(&s.state)
			continue
		case io.EOF, io.ErrUnexpectedEOF:
			// Final block; n < rate, possibly zero.
		default:
			return err
		}
		for i := n; i < s.rate; i++ {
			block[i] = 0
		}
		block[n] ^= 0x01
		block[s.rate-1] ^= 0x80
		xorBlockIn(&s.state, block)
		keccakF1600(&s.state)
		return nil
	}
}

// squeeze copies the first outLen bytes of the state into out. Both output
// widths fit inside one rate-sized block, so a single extraction suffices.
func (s *sponge) squeeze(out []byte) {
	copyLanesOut(&s.state, out[:s.outLen])
}
