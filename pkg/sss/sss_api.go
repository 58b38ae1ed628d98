/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// package sss provides an API for splitting a secret []byte into multiple parts
// and reconstructing it from a quorum of those parts.

package sss

// SecretSplitter is a service that splits a secret []byte into multiple parts.
// Parts produced by different implementations use different wire formats and
// are not interchangeable.
type SecretSplitter interface {
	// Split divides secret into numParts parts, of which any threshold suffice
	// to reconstruct it.
	Split(secret []byte, numParts, threshold int) ([][]byte, error)
	// Combine reconstructs the secret from the given parts. Passing fewer parts
	// than the threshold used during Split does not fail; it yields a value that
	// is not the original secret.
	Combine(secretParts [][]byte) ([]byte, error)
}
