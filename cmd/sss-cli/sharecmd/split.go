/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sharecmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Cipher-Bureau/shamirsss/pkg/encoding"
	"github.com/Cipher-Bureau/shamirsss/pkg/sss"
	"github.com/Cipher-Bureau/shamirsss/pkg/sss/base"
	"github.com/Cipher-Bureau/shamirsss/pkg/sss/shamir"
	cmdutils "github.com/Cipher-Bureau/shamirsss/pkg/utils/cmd"
	"github.com/Cipher-Bureau/shamirsss/pkg/utils/retry"
)

const (
	secretFlagName      = "secret"
	secretFlagShorthand = "s"
	secretFlagUsage     = "Secret to split, encoded per the --encoding flag." +
		" Alternatively, this can be set with the following environment variable: " + secretEnvKey
	secretEnvKey = "SSS_SECRET"

	thresholdFlagName      = "threshold"
	thresholdFlagShorthand = "t"
	thresholdFlagUsage     = "Minimum number of shares required to reconstruct the secret." +
		" Alternatively, this can be set with the following environment variable: " + thresholdEnvKey
	thresholdEnvKey = "SSS_THRESHOLD"

	numPartsFlagName      = "num-parts"
	numPartsFlagShorthand = "n"
	numPartsFlagUsage     = "Total number of shares to create." +
		" Alternatively, this can be set with the following environment variable: " + numPartsEnvKey
	numPartsEnvKey = "SSS_NUM_PARTS"

	maxRetriesFlagName  = "max-retries"
	maxRetriesFlagUsage = "Number of times to retry splitting when randomness cannot be drawn." +
		" Defaults to 0 (no retries)." +
		" Alternatively, this can be set with the following environment variable: " + maxRetriesEnvKey
	maxRetriesEnvKey = "SSS_MAX_RETRIES"

	splitRetryInitialBackoff = 50 * time.Millisecond
	splitRetryBackoffFactor  = 2
)

type splitParameters struct {
	secret     []byte
	threshold  int
	numParts   int
	maxRetries uint
	splitter   sss.SecretSplitter
	enc        encoding.Encoding
}

// GetSplitCmd returns the Cobra split command.
func GetSplitCmd() *cobra.Command {
	splitCmd := createSplitCmd()

	createSplitFlags(splitCmd)

	return splitCmd
}

func createSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split",
		Short: "Split a secret into threshold shares",
		Long:  "Split a secret into shares of which a threshold-sized subset can reconstruct it",
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters, err := getSplitParameters(cmd)
			if err != nil {
				return err
			}

			return runSplit(cmd, parameters)
		},
	}
}

func createSplitFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(secretFlagName, secretFlagShorthand, "", secretFlagUsage)
	cmd.Flags().StringP(thresholdFlagName, thresholdFlagShorthand, "", thresholdFlagUsage)
	cmd.Flags().StringP(numPartsFlagName, numPartsFlagShorthand, "", numPartsFlagUsage)
	cmd.Flags().StringP(maxRetriesFlagName, "", "", maxRetriesFlagUsage)
	createCommonFlags(cmd)
}

func getSplitParameters(cmd *cobra.Command) (*splitParameters, error) {
	if err := setLogLevel(cmd); err != nil {
		return nil, err
	}

	enc, err := getEncoding(cmd)
	if err != nil {
		return nil, err
	}

	splitter, err := getSplitter(cmd)
	if err != nil {
		return nil, err
	}

	secretText, err := cmdutils.GetUserSetVarFromString(cmd, secretFlagName, secretEnvKey, false)
	if err != nil {
		return nil, err
	}

	secret, err := encoding.DecodeSecret(secretText, enc)
	if err != nil {
		return nil, err
	}

	threshold, err := getIntVar(cmd, thresholdFlagName, thresholdEnvKey)
	if err != nil {
		return nil, err
	}

	numParts, err := getIntVar(cmd, numPartsFlagName, numPartsEnvKey)
	if err != nil {
		return nil, err
	}

	maxRetries, err := getOptionalUintVar(cmd, maxRetriesFlagName, maxRetriesEnvKey)
	if err != nil {
		return nil, err
	}

	return &splitParameters{
		secret:     secret,
		threshold:  threshold,
		numParts:   numParts,
		maxRetries: maxRetries,
		splitter:   splitter,
		enc:        enc,
	}, nil
}

func runSplit(cmd *cobra.Command, parameters *splitParameters) error {
	var shares [][]byte

	err := retry.Retry(func() error {
		var splitErr error

		shares, splitErr = parameters.splitter.Split(parameters.secret, parameters.numParts, parameters.threshold)
		if isValidationError(splitErr) {
			return retry.Permanent(splitErr)
		}

		return splitErr
	}, &retry.Params{
		MaxRetries:     parameters.maxRetries,
		InitialBackoff: splitRetryInitialBackoff,
		BackoffFactor:  splitRetryBackoffFactor,
	})
	if err != nil {
		return fmt.Errorf("failed to split secret: %w", err)
	}

	encoded, err := encoding.EncodeShares(shares, parameters.enc)
	if err != nil {
		return err
	}

	logger.Debugf("created %d shares with threshold %d", parameters.numParts, parameters.threshold)

	for _, share := range encoded {
		fmt.Fprintln(cmd.OutOrStdout(), share)
	}

	return nil
}

// isValidationError reports whether err is a deterministic parameter failure.
// Re-running the split cannot change the outcome for these, so they must not
// consume retry attempts; only transient failures (randomness exhaustion) are
// worth re-attempting.
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		shamir.ErrMinBelowOne,
		shamir.ErrMinAboveTotal,
		shamir.ErrSecretSize,
		base.ErrThresholdAboveNumParts,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}

func getIntVar(cmd *cobra.Command, flagName, envKey string) (int, error) {
	value, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, false)
	if err != nil {
		return 0, err
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value [%s]: %w", flagName, value, err)
	}

	return parsed, nil
}

func getOptionalUintVar(cmd *cobra.Command, flagName, envKey string) (uint, error) {
	value, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return 0, err
	}

	if value == "" {
		return 0, nil
	}

	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value [%s]: %w", flagName, value, err)
	}

	return uint(parsed), nil
}
