/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shamir

import "math/big"

// chunkSize is the number of secret bytes packed into one field element.
const chunkSize = 32

// pointSize is the serialized size of one (x, y) share point.
const pointSize = 2 * chunkSize

// bytesToElements splits b into consecutive chunks of up to chunkSize bytes and
// interprets each chunk as an unsigned big-endian integer, in order. It does
// not enforce a multiple-of-chunkSize length; that contract belongs to the
// calling layer. A final short chunk therefore decodes, but will not
// round-trip through elementsToBytes at its original width.
func bytesToElements(b []byte) []*big.Int {
	elements := make([]*big.Int, 0, (len(b)+chunkSize-1)/chunkSize)

	for start := 0; start < len(b); start += chunkSize {
		end := start + chunkSize
		if end > len(b) {
			end = len(b)
		}

		elements = append(elements, new(big.Int).SetBytes(b[start:end]))
	}

	return elements
}

// elementsToBytes serializes each element to exactly chunkSize bytes,
// big-endian and left-zero-padded, and concatenates them in order. The
// serialization is fixed-width regardless of the original chunk's width, so
// the codec is lossless only when every input chunk was exactly chunkSize
// bytes.
func elementsToBytes(elements []*big.Int) []byte {
	out := make([]byte, len(elements)*chunkSize)

	for i, element := range elements {
		element.FillBytes(out[i*chunkSize : (i+1)*chunkSize])
	}

	return out
}
