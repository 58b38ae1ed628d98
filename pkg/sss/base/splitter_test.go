/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package base_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cipher-Bureau/shamirsss/pkg/sss"
	"github.com/Cipher-Bureau/shamirsss/pkg/sss/base"
)

func TestSplitter(t *testing.T) {
	secret := []byte("randomSecret")

	var splitter sss.SecretSplitter = &base.Splitter{}

	secrets, err := splitter.Split(secret, base.DefaultNumParts, base.DefaultNumParts)
	require.NoError(t, err)
	require.Len(t, secrets, base.DefaultNumParts)

	t.Run("call Combine with a random part should not match original secret", func(t *testing.T) {
		reconstructed, err := splitter.Combine([][]byte{secrets[1], []byte("someRandomPart")[:len(secrets[0])]})
		require.NoError(t, err)
		require.NotEqualValues(t, secret, reconstructed)
	})

	t.Run("call Combine with the original split parts should match original secret", func(t *testing.T) {
		reconstructed, err := splitter.Combine(secrets)
		require.NoError(t, err)
		require.EqualValues(t, secret, reconstructed)
	})

	t.Run("any threshold-sized subset reconstructs", func(t *testing.T) {
		parts, err := splitter.Split(secret, 5, 3)
		require.NoError(t, err)
		require.Len(t, parts, 5)

		reconstructed, err := splitter.Combine([][]byte{parts[4], parts[0], parts[2]})
		require.NoError(t, err)
		require.EqualValues(t, secret, reconstructed)
	})

	t.Run("threshold above part count is rejected", func(t *testing.T) {
		parts, err := splitter.Split(secret, 2, 3)
		require.True(t, errors.Is(err, base.ErrThresholdAboveNumParts))
		require.Nil(t, parts)
	})

	t.Run("empty secret is rejected by the GF(256) engine", func(t *testing.T) {
		parts, err := splitter.Split(nil, 2, 2)
		require.Error(t, err)
		require.Nil(t, parts)
	})
}
