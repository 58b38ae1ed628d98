/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// package base contains a byte-oriented Splitter implementation over GF(256).
// Unlike the prime-field splitter it accepts secrets of any nonzero length,
// at the cost of requiring a threshold of at least 2. Parts produced here are
// not interchangeable with prime-field shares.

package base

import (
	"errors"
	"fmt"

	"github.com/hashicorp/vault/shamir"
)

// DefaultNumParts is the default number of splits of a secret.
const DefaultNumParts = 2

// ErrThresholdAboveNumParts is used when a split is requested with a threshold that exceeds the part count.
var ErrThresholdAboveNumParts = errors.New("threshold cannot be bigger than the number of parts")

// Splitter splits a secret into multiple parts over GF(256) and reconstructs
// it from a quorum of those parts.
type Splitter struct{}

// Split a secret into numParts parts with a minimum threshold (at least 2)
// required to reconstruct it. Each part is one byte longer than the secret.
func (b *Splitter) Split(secret []byte, numParts, threshold int) ([][]byte, error) {
	if threshold > numParts {
		return nil, ErrThresholdAboveNumParts
	}

	parts, err := shamir.Split(secret, numParts, threshold)
	if err != nil {
		return nil, fmt.Errorf("split secret: %w", err)
	}

	return parts, nil
}

// Combine the split secretParts into a combined secret. It does not validate
// whether secretParts were split from the same original secret; the caller of
// Split() must verify that the returned value matches the original.
func (b *Splitter) Combine(secretParts [][]byte) ([]byte, error) {
	secret, err := shamir.Combine(secretParts)
	if err != nil {
		return nil, fmt.Errorf("combine parts: %w", err)
	}

	return secret, nil
}
