/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shamir

// Splitter is an sss.SecretSplitter over the prime-field engine. It enforces
// the engine's input contract: the secret's byte length must be a positive
// multiple of 32.
type Splitter struct{}

// Split divides secret into numParts shares with a reconstruction threshold.
// The secret size is validated here, before the engine consumes any
// randomness.
func (s *Splitter) Split(secret []byte, numParts, threshold int) ([][]byte, error) {
	if len(secret) == 0 || len(secret)%chunkSize != 0 {
		return nil, ErrSecretSize
	}

	return CreateShares(threshold, numParts, secret)
}

// Combine reconstructs the secret from the given shares. It does not validate
// that the shares originate from the same Split call, nor that enough of them
// are present; an under-provisioned or mixed set yields a wrong secret, not an
// error.
func (s *Splitter) Combine(secretParts [][]byte) ([]byte, error) {
	return CombineShares(secretParts)
}
