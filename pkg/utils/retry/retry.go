/*
Copyright SecureKey Technologies Inc. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

// package retry provides an opt-in retry policy for callers of operations that
// can fail transiently, such as share creation when the secure random source
// is temporarily exhausted. The secret-sharing engine itself never retries;
// re-attempting with fresh randomness is strictly a caller decision.

package retry

import (
	"time"

	"github.com/cenkalti/backoff"
)

// Params are used to define how retry attempts are handled.
type Params struct {
	MaxRetries     uint
	InitialBackoff time.Duration
	BackoffFactor  float64
}

// Invocation represents a function that is desired to be retried until it succeeds (i.e. it returns nil).
type Invocation func() error

// Permanent marks err as not retryable. Retry stops as soon as the Invocation
// returns it, regardless of how many attempts remain, and returns the original
// err unwrapped.
func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return backoff.Permanent(err)
}

// Retry retries the given Invocation based on the given Params until it returns no error, at which point this
// function returns no error as well.
// A MaxRetries of zero means the Invocation runs exactly once, with no retries.
// If the retry attempts are exhausted, this function returns the most recent error returned from the given Invocation.
func Retry(invocation Invocation, params *Params) error {
	// backoff treats a zero retry cap as uncapped, so a single attempt must
	// bypass it entirely.
	if params.MaxRetries == 0 {
		return unwrapPermanent(invocation())
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = params.InitialBackoff
	expBackoff.Multiplier = params.BackoffFactor
	expBackoff.RandomizationFactor = 0
	expBackoff.MaxElapsedTime = 0

	return backoff.Retry(backoff.Operation(invocation), backoff.WithMaxRetries(expBackoff, uint64(params.MaxRetries)))
}

func unwrapPermanent(err error) error {
	if permanent, ok := err.(*backoff.PermanentError); ok {
		return permanent.Err
	}

	return err
}
