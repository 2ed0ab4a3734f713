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
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

const rate256 = 136 // 200 - 2*32
const rate512 = 72  // 200 - 2*64

// digitBlock returns n bytes of the repeating pattern 0123456789...
// One full Keccak-256 rate block of it underlies the boundary fixtures.
func digitBlock(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + i%10))
	}
	return b.String()
}

func TestKnownDigests256(t *testing.T) {
	block := digitBlock(rate256)
	tests := []struct {
		input string
		want  string
	}{
		{"", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"A", "03783fac2efed8fbc9ad443e592ee30e61d65f471140c10ca155e937b435b760"},
		{"abc", "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
		{"0123", "3eb0fa86b29ff88ffdd4458cd1f554dd6ad43237a86e38c862ab6c440a387964"},
		{block[:133], "8a5065b879e6e40d546d443e21b14c2fbcac03d9c9c6bf56b7840d559ac6412b"},
		{block[:134], "2a271cee3f8b64a4030387b5ca89be46a1ede06bf8c8875be50f93a8ed3463f5"},
		// rate-1: padding still fits in the first block, 0x01 and 0x80
		// coincide on the final byte.
		{block[:135], "e1c34dc088c34f47a3d746bb2cdd07231130c59a9727360e79f4a264e949cb87"},
		// exactly one rate: forces an extra all-padding block.
		{block, "01247d7ddfd57394d74920f8ffeefcb196ba43c15801b6888a34a383c2866088"},
		// rate+1: second block holds one byte plus padding.
		{digitBlock(rate256 + 1), "b6086ab48f4c24720d6e4d136b3e73c1a8406a2dc3295c3d1b66e0c85fd791cc"},
		{block + block[:135], "6a9af1e56f93ecbbc859e440eded0a3ce5f97981c1e97b87c12748298d6dbbc6"},
		{block + block, "962246ee09dd4e3737ebd1760082da5b7526e78217fc239b9f214ec02263d160"},
		{block + block + block, "88087f98947b8679da6c44c3996cde147de2e23ba4cf816e683ca0b697a386ca"},
	}
	for _, test := range tests {
		h, err := Sum256(strings.NewReader(test.input))
		require.NoError(t, err)
		require.Equal(t, test.want, h.String(), "input length %d", len(test.input))

		// The one-shot helpers must agree with the stream form.
		require.Equal(t, h, Keccak256Hash([]byte(test.input)))
		require.Equal(t, h.Bytes(), Keccak256([]byte(test.input)))
	}
}

func TestKnownDigests512(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "0eab42de4c3ceb9235fc91acffe746b29c29a8c366b7c60e4e67c466f36a4304c00fa9caf9d87976ba469bcbe06713b435f091ef2769fb160cdab33d3670680e"},
		{"abc", "18587dc2ea106b9a1563e32b3312421ca164c7f1f07bc922a9c83d77cea3a1e5d0c69910739025372dc14ac9642629379540c17e2a65b19d77aa511a9d00bb96"},
	}
	for _, test := range tests {
		h, err := Sum512(strings.NewReader(test.input))
		require.NoError(t, err)
		require.Equal(t, test.want, h.String())
		require.Equal(t, h, Keccak512Hash([]byte(test.input)))
	}
}

// TestAgainstReference cross-checks both variants against the legacy Keccak
// constructors in x/crypto, covering the rate boundaries of each variant and
// a spread of random lengths.
func TestAgainstReference(t *testing.T) {
	lengths := []int{
		0, 1, 7, 8, 9, 63, 64, 65,
		rate512 - 1, rate512, rate512 + 1,
		rate256 - 1, rate256, rate256 + 1,
		2*rate512 - 1, 2 * rate512, 2*rate512 + 1,
		2*rate256 - 1, 2 * rate256, 2*rate256 + 1,
		3 * rate256, 1000, 4096,
	}
	rnd := rand.New(rand.NewSource(42))
	for _, n := range lengths {
		data := make([]byte, n)
		rnd.Read(data)

		want256 := sha3.NewLegacyKeccak256()
		want256.Write(data)
		h256, err := Sum256(bytes.NewReader(data))
		require.NoError(t, err)
		require.Equal(t, want256.Sum(nil), h256.Bytes(), "Keccak-256 length %d", n)

		want512 := sha3.NewLegacyKeccak512()
		want512.Write(data)
		h512, err := Sum512(bytes.NewReader(data))
		require.NoError(t, err)
		require.Equal(t, want512.Sum(nil), h512.Bytes(), "Keccak-512 length %d", n)
	}
}

// TestBoundaryPathsDistinct asserts the three code paths around each rate
// boundary produce three different digests, and that repeated full blocks
// do not cycle or reset the state.
func TestBoundaryPathsDistinct(t *testing.T) {
	block := []byte(digitBlock(rate256))
	one := Keccak256Hash(block)
	two := Keccak256Hash(block, block)
	three := Keccak256Hash(block, block, block)
	require.NotEqual(t, one, two)
	require.NotEqual(t, two, three)
	require.NotEqual(t, one, three)

	around := map[int]Hash{}
	for _, n := range []int{rate256 - 1, rate256, rate256 + 1} {
		around[n] = Keccak256Hash([]byte(digitBlock(n)))
	}
	require.NotEqual(t, around[rate256-1], around[rate256])
	require.NotEqual(t, around[rate256], around[rate256+1])
	require.NotEqual(t, around[rate256-1], around[rate256+1])
}

func TestDeterministic(t *testing.T) {
	data := []byte(digitBlock(300))
	first, err := Sum256(bytes.NewReader(data))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := Sum256(bytes.NewReader(data))
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

// TestChunkingIrrelevant feeds the same bytes through readers with different
// native chunk sizes; the driver's internal buffering must hide the
// difference.
func TestChunkingIrrelevant(t *testing.T) {
	data := []byte(digitBlock(2*rate256 + 17))

	whole, err := Sum256(bytes.NewReader(data))
	require.NoError(t, err)

	byByte, err := Sum256(iotest.OneByteReader(bytes.NewReader(data)))
	require.NoError(t, err)
	require.Equal(t, whole, byByte)

	halfFull, err := Sum256(iotest.HalfReader(bytes.NewReader(data)))
	require.NoError(t, err)
	require.Equal(t, whole, halfFull)

	wide, err := Sum512(iotest.OneByteReader(bytes.NewReader(data)))
	require.NoError(t, err)
	wideWhole, err := Sum512(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, wideWhole, wide)
}

type failingReader struct {
	r   io.Reader
	err error
}

func (f *failingReader) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	if err == io.EOF {
		return n, f.err
	}
	return n, err
}

func TestReadErrorAborts(t *testing.T) {
	boom := errors.New("disk on fire")
	data := []byte(digitBlock(rate256 + 5))

	h, err := Sum256(&failingReader{r: bytes.NewReader(data), err: boom})
	require.ErrorIs(t, err, boom)
	require.True(t, h.IsZero(), "no partial digest on read failure")

	h512, err := Sum512(&failingReader{r: bytes.NewReader(data), err: boom})
	require.ErrorIs(t, err, boom)
	require.True(t, h512.IsZero())
}

func TestZeroDigestNeverComputed(t *testing.T) {
	var zero Hash
	empty, err := Sum256(strings.NewReader(""))
	require.NoError(t, err)
	require.NotEqual(t, zero, empty)
	require.False(t, empty.IsZero())

	var zero512 Hash512
	empty512, err := Sum512(strings.NewReader(""))
	require.NoError(t, err)
	require.NotEqual(t, zero512, empty512)
}
