/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shamir_test

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cipher-Bureau/shamirsss/pkg/sss"
	"github.com/Cipher-Bureau/shamirsss/pkg/sss/shamir"
)

func TestSplitter(t *testing.T) {
	var splitter sss.SecretSplitter = &shamir.Splitter{}

	secret := make([]byte, 128)
	_, err := rand.Read(secret)
	require.NoError(t, err)

	t.Run("split and combine round trip", func(t *testing.T) {
		shares, err := splitter.Split(secret, 5, 4)
		require.NoError(t, err)
		require.Len(t, shares, 5)

		// 4 chunks x 64 bytes per share.
		for _, share := range shares {
			require.Len(t, share, 256)
		}

		reconstructed, err := splitter.Combine([][]byte{shares[4], shares[1], shares[0], shares[2]})
		require.NoError(t, err)
		require.Equal(t, secret, reconstructed)

		reconstructed, err = splitter.Combine(shares)
		require.NoError(t, err)
		require.Equal(t, secret, reconstructed)

		underProvisioned, err := splitter.Combine(shares[:3])
		require.NoError(t, err)
		require.NotEqual(t, secret, underProvisioned)
	})

	t.Run("secret size not a multiple of 32 is rejected", func(t *testing.T) {
		shares, err := splitter.Split(secret[:100], 5, 3)
		require.True(t, errors.Is(err, shamir.ErrSecretSize))
		require.Nil(t, shares)
	})

	t.Run("empty secret is rejected", func(t *testing.T) {
		shares, err := splitter.Split(nil, 5, 3)
		require.True(t, errors.Is(err, shamir.ErrSecretSize))
		require.Nil(t, shares)
	})

	t.Run("threshold above part count is rejected", func(t *testing.T) {
		shares, err := splitter.Split(secret, 3, 5)
		require.True(t, errors.Is(err, shamir.ErrMinAboveTotal))
		require.Nil(t, shares)
	})
}
