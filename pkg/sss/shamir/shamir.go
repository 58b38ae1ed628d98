/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package shamir implements Shamir's Secret Sharing over a fixed 256-bit prime
// field. A secret is chunked into 32-byte field elements; each chunk is the
// constant term of a fresh random polynomial of degree min-1, and every share
// holds one (x, y) evaluation point per chunk, serialized as 64 bytes.
//
// A combine cannot know the threshold the shares were created with: given
// fewer than min shares it runs to completion and returns a value that is not
// the original secret, without error. This is inherent to the scheme, not a
// defect of this implementation.
package shamir

import (
	"fmt"
	"math/big"
)

// sharePoint is one polynomial evaluation carried by a share: the abscissa x
// and the polynomial's value y at that abscissa.
type sharePoint struct {
	x *big.Int
	y *big.Int
}

// CreateShares splits secret into total shares, any min of which reconstruct
// it via CombineShares. Each share is chunkCount*64 bytes: per 32-byte chunk
// of the secret, a 32-byte big-endian abscissa followed by the 32-byte
// big-endian polynomial value at it. The abscissa is drawn fresh per (share,
// chunk) pair.
//
// The secret's byte length is the calling layer's contract (see Splitter);
// CreateShares only requires it to be nonzero. Parameter validation happens
// before any randomness is consumed.
func CreateShares(min, total int, secret []byte) ([][]byte, error) {
	if min < 1 {
		return nil, ErrMinBelowOne
	}

	if min > total {
		return nil, ErrMinAboveTotal
	}

	if len(secret) == 0 {
		return nil, ErrSecretSize
	}

	chunks := bytesToElements(secret)

	// One polynomial per chunk: the chunk value is the constant term, the
	// remaining min-1 coefficients are independent uniform draws. The
	// polynomials live only for the duration of this call.
	polynomials := make([][]*big.Int, len(chunks))

	for i, chunk := range chunks {
		coefficients := make([]*big.Int, min)
		coefficients[0] = chunk

		for j := 1; j < min; j++ {
			coefficient, err := randomFieldElement()
			if err != nil {
				return nil, fmt.Errorf("draw polynomial coefficient: %w", err)
			}

			coefficients[j] = coefficient
		}

		polynomials[i] = coefficients
	}

	shares := make([][]byte, total)

	for s := range shares {
		share := make([]byte, 0, len(chunks)*pointSize)

		for _, polynomial := range polynomials {
			x, err := randomFieldElement()
			if err != nil {
				return nil, fmt.Errorf("draw share abscissa: %w", err)
			}

			y := evaluate(polynomial, x)

			share = append(share, elementsToBytes([]*big.Int{x, y})...)
		}

		shares[s] = share
	}

	return shares, nil
}

// CombineShares reconstructs the secret from the given shares by Lagrange
// interpolation at x = 0, chunk by chunk. It is invariant under permutation of
// the share list. The output length is always chunkCount*32 bytes.
//
// All structural validation happens before any arithmetic: every share must
// have the same nonzero length, and that length must be a multiple of 64.
func CombineShares(shares [][]byte) ([]byte, error) {
	if len(shares) == 0 {
		return nil, ErrNoShares
	}

	for i, share := range shares {
		if len(share) == 0 || len(share)%pointSize != 0 {
			return nil, fmt.Errorf("share %d: %w", i, ErrShareSize)
		}

		if len(share) != len(shares[0]) {
			return nil, fmt.Errorf("share %d: %w", i, ErrShareSizeMismatch)
		}
	}

	chunkCount := len(shares[0]) / pointSize

	points := make([][]sharePoint, len(shares))

	for i, share := range shares {
		points[i] = make([]sharePoint, chunkCount)

		for j := 0; j < chunkCount; j++ {
			window := share[j*pointSize : (j+1)*pointSize]
			points[i][j] = sharePoint{
				x: new(big.Int).SetBytes(window[:chunkSize]),
				y: new(big.Int).SetBytes(window[chunkSize:]),
			}
		}
	}

	secret := make([]*big.Int, chunkCount)

	for j := 0; j < chunkCount; j++ {
		candidate := new(big.Int)

		for i := range points {
			origin := points[i][j]
			numerator := big.NewInt(1)
			denominator := big.NewInt(1)

			for k := range points {
				if k == i {
					continue
				}

				current := points[k][j].x
				numerator = mulMod(numerator, new(big.Int).Neg(current))
				denominator = mulMod(denominator, subMod(origin.x, current))
			}

			inverse := modInverse(denominator)
			if inverse == nil {
				return nil, fmt.Errorf("chunk %d: %w", j, ErrShareCollision)
			}

			term := mulMod(mulMod(origin.y, numerator), inverse)
			candidate = addMod(candidate, term)
		}

		secret[j] = candidate
	}

	return elementsToBytes(secret), nil
}
