/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shamir

import (
	"crypto/rand"
	"math/big"
)

// defaultPrime is the 256-bit prime modulus of the field all share arithmetic
// is performed in. Every stored field value lies in [0, defaultPrime).
const defaultPrime = "115792089237316195423570985008687907853269984665640564039457584007913129639747"

// nolint:gochecknoglobals // process-wide arithmetic constant
var prime = mustPrime(defaultPrime)

func mustPrime(s string) *big.Int {
	p, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("shamir: invalid prime constant")
	}

	return p
}

// randomFieldElement draws a uniform value from [0, prime) using the
// platform's cryptographically secure random source. crypto/rand rejection
// samples against the byte width of the prime, so the result carries no modulo
// bias. A failure of the random source is returned as-is; there is no fallback.
func randomFieldElement() (*big.Int, error) {
	return rand.Int(rand.Reader, prime)
}

// addMod returns a+b reduced into [0, prime).
func addMod(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), prime)
}

// subMod returns a-b reduced into [0, prime). big.Int.Mod follows Euclidean
// division, so a negative difference normalizes into the field rather than
// keeping the truncated-remainder sign.
func subMod(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), prime)
}

// mulMod returns a*b reduced into [0, prime).
func mulMod(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), prime)
}

// modInverse returns the multiplicative inverse of a modulo the prime, or nil
// when no inverse exists (a congruent to 0).
func modInverse(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, prime)
}

// evaluate computes the polynomial's value at x with Horner's method,
// accumulating from the highest-degree coefficient down to the constant term
// and reducing after every step. Coefficients are ordered constant term first.
func evaluate(coefficients []*big.Int, x *big.Int) *big.Int {
	result := new(big.Int)

	for i := len(coefficients) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, coefficients[i])
		result.Mod(result, prime)
	}

	return result
}
