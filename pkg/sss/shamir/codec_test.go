/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shamir

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesToElements(t *testing.T) {
	mustBigInt := func(s string) *big.Int {
		value, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok)

		return value
	}

	pattern16 := []byte{10, 33, 255, 23, 123, 111, 6, 99, 0, 158, 160, 22, 233, 222, 21, 145}
	pattern32 := append(append([]byte{}, pattern16...), pattern16...)

	t.Run("short input becomes a single element", func(t *testing.T) {
		elements := bytesToElements([]byte{10, 33})
		require.Len(t, elements, 1)
		require.Zero(t, elements[0].Cmp(mustBigInt("2593")))
	})

	t.Run("16 bytes become a single element", func(t *testing.T) {
		elements := bytesToElements(pattern16)
		require.Len(t, elements, 1)
		require.Zero(t, elements[0].Cmp(mustBigInt("13468799629078354179291325055507502481")))
	})

	t.Run("32 bytes become a single element", func(t *testing.T) {
		elements := bytesToElements(pattern32)
		require.Len(t, elements, 1)
		require.Zero(t, elements[0].Cmp(
			mustBigInt("4583195017366640394614729638310681267193810345231665377656985560666360124817")))
	})

	t.Run("chunking preserves order", func(t *testing.T) {
		input := bytes.Repeat(pattern32, 4)

		elements := bytesToElements(input)
		require.Len(t, elements, 4)

		for _, element := range elements {
			require.Zero(t, element.Cmp(
				mustBigInt("4583195017366640394614729638310681267193810345231665377656985560666360124817")))
		}
	})

	t.Run("empty input yields no elements", func(t *testing.T) {
		require.Empty(t, bytesToElements(nil))
	})
}

func TestElementsToBytes(t *testing.T) {
	t.Run("small elements are left-zero-padded to 32 bytes", func(t *testing.T) {
		out := elementsToBytes([]*big.Int{big.NewInt(2593)})
		require.Len(t, out, chunkSize)
		require.Equal(t, bytes.Repeat([]byte{0}, 30), out[:30])
		require.Equal(t, []byte{10, 33}, out[30:])
	})

	t.Run("round-trip for multiples of the chunk size", func(t *testing.T) {
		for _, size := range []int{32, 64, 128, 256, 512} {
			input := make([]byte, size)
			_, err := rand.Read(input)
			require.NoError(t, err)

			require.Equal(t, input, elementsToBytes(bytesToElements(input)))
		}
	})

	t.Run("final short chunk does not round-trip at its original width", func(t *testing.T) {
		input := []byte{1, 2, 3, 4}

		out := elementsToBytes(bytesToElements(input))
		require.Len(t, out, chunkSize)
		require.Equal(t, input, out[chunkSize-len(input):])
	})
}
