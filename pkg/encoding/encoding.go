/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// package encoding converts secrets and shares between raw bytes and a textual
// transport representation. The set of encodings is fixed and small, so it is
// modeled as a closed enum selecting between pure byte<->string functions.
// Nothing here touches field arithmetic or affects share semantics.

package encoding

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

// Encoding selects the textual representation used for secrets and shares.
type Encoding int

const (
	// Hex is lowercase hexadecimal.
	Hex Encoding = iota
	// Base64 is standard (padded) base64.
	Base64
)

// ErrUnknownEncoding is used when an Encoding value outside the closed set is supplied.
var ErrUnknownEncoding = errors.New("unknown encoding")

// ParseEncoding returns the Encoding named by s ("hex" or "base64").
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "hex":
		return Hex, nil
	case "base64":
		return Base64, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}

// String returns the name accepted by ParseEncoding.
func (e Encoding) String() string {
	switch e {
	case Hex:
		return "hex"
	case Base64:
		return "base64"
	}

	return fmt.Sprintf("encoding(%d)", int(e))
}

// EncodeSecret encodes secret bytes to a string in the given encoding.
func EncodeSecret(secret []byte, enc Encoding) (string, error) {
	return encodeToString(secret, enc)
}

// DecodeSecret decodes a secret string in the given encoding back to bytes.
func DecodeSecret(s string, enc Encoding) ([]byte, error) {
	b, err := decodeString(s, enc)
	if err != nil {
		return nil, fmt.Errorf("decode secret: %w", err)
	}

	return b, nil
}

// EncodeShares encodes each share's bytes to a string in the given encoding,
// order preserved.
func EncodeShares(shares [][]byte, enc Encoding) ([]string, error) {
	encoded := make([]string, len(shares))

	for i, share := range shares {
		s, err := encodeToString(share, enc)
		if err != nil {
			return nil, err
		}

		encoded[i] = s
	}

	return encoded, nil
}

// DecodeShares decodes each share string in the given encoding back to bytes,
// order preserved. The first malformed share fails the whole call, identified
// by its position.
func DecodeShares(encoded []string, enc Encoding) ([][]byte, error) {
	shares := make([][]byte, len(encoded))

	for i, s := range encoded {
		b, err := decodeString(s, enc)
		if err != nil {
			return nil, fmt.Errorf("decode share %d: %w", i, err)
		}

		shares[i] = b
	}

	return shares, nil
}

func encodeToString(b []byte, enc Encoding) (string, error) {
	switch enc {
	case Hex:
		return hex.EncodeToString(b), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(b), nil
	}

	return "", fmt.Errorf("%w: %d", ErrUnknownEncoding, int(enc))
}

func decodeString(s string, enc Encoding) ([]byte, error) {
	switch enc {
	case Hex:
		return hex.DecodeString(s)
	case Base64:
		return base64.StdEncoding.DecodeString(s)
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, int(enc))
}
