/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shamir

import "errors"

// ErrMinBelowOne is used when a split is requested with a threshold below one.
var ErrMinBelowOne = errors.New("minimum share count must be at least 1")

// ErrMinAboveTotal is used when a split is requested with a threshold that exceeds the total share count.
var ErrMinAboveTotal = errors.New("minimum share count cannot be bigger than the total share count")

// ErrSecretSize is used when the secret is empty or its size is not a multiple of the 32-byte chunk size.
var ErrSecretSize = errors.New("secret size must be a positive multiple of 32 bytes")

// ErrNoShares is used when a combine is attempted with an empty share list.
var ErrNoShares = errors.New("at least one share is required")

// ErrShareSize is used when a share's size is zero or not a multiple of the 64-byte point size.
var ErrShareSize = errors.New("share size must be a positive multiple of 64 bytes")

// ErrShareSizeMismatch is used when the given shares do not all have the same size.
var ErrShareSizeMismatch = errors.New("all shares must have the same size")

// ErrShareCollision is used when two shares carry the same x coordinate for the same chunk,
// which leaves the interpolation denominator without a modular inverse.
var ErrShareCollision = errors.New("duplicate x coordinate across shares, denominator has no modular inverse")
