/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package encoding_test

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cipher-Bureau/shamirsss/pkg/encoding"
)

func TestParseEncoding(t *testing.T) {
	enc, err := encoding.ParseEncoding("hex")
	require.NoError(t, err)
	require.Equal(t, encoding.Hex, enc)
	require.Equal(t, "hex", enc.String())

	enc, err = encoding.ParseEncoding("base64")
	require.NoError(t, err)
	require.Equal(t, encoding.Base64, enc)
	require.Equal(t, "base64", enc.String())

	_, err = encoding.ParseEncoding("base58")
	require.True(t, errors.Is(err, encoding.ErrUnknownEncoding))
}

func TestSecretRoundTrip(t *testing.T) {
	secret := make([]byte, 64)
	_, err := rand.Read(secret)
	require.NoError(t, err)

	for _, enc := range []encoding.Encoding{encoding.Hex, encoding.Base64} {
		t.Run(enc.String(), func(t *testing.T) {
			text, err := encoding.EncodeSecret(secret, enc)
			require.NoError(t, err)
			require.NotEmpty(t, text)

			decoded, err := encoding.DecodeSecret(text, enc)
			require.NoError(t, err)
			require.Equal(t, secret, decoded)
		})
	}
}

func TestSharesRoundTrip(t *testing.T) {
	shares := [][]byte{make([]byte, 64), make([]byte, 64), make([]byte, 64)}
	for _, share := range shares {
		_, err := rand.Read(share)
		require.NoError(t, err)
	}

	for _, enc := range []encoding.Encoding{encoding.Hex, encoding.Base64} {
		t.Run(enc.String(), func(t *testing.T) {
			texts, err := encoding.EncodeShares(shares, enc)
			require.NoError(t, err)
			require.Len(t, texts, len(shares))

			decoded, err := encoding.DecodeShares(texts, enc)
			require.NoError(t, err)
			require.Equal(t, shares, decoded)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Run("malformed secret", func(t *testing.T) {
		decoded, err := encoding.DecodeSecret("not-hex!", encoding.Hex)
		require.Error(t, err)
		require.Contains(t, err.Error(), "decode secret")
		require.Nil(t, decoded)
	})

	t.Run("malformed share is identified by position", func(t *testing.T) {
		decoded, err := encoding.DecodeShares([]string{"00ff", "zz"}, encoding.Hex)
		require.Error(t, err)
		require.Contains(t, err.Error(), "decode share 1")
		require.Nil(t, decoded)
	})

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := encoding.EncodeSecret([]byte{1}, encoding.Encoding(42))
		require.True(t, errors.Is(err, encoding.ErrUnknownEncoding))

		_, err = encoding.DecodeSecret("00", encoding.Encoding(42))
		require.True(t, errors.Is(err, encoding.ErrUnknownEncoding))
	})
}
