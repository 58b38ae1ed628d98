/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sharecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cipher-Bureau/shamirsss/pkg/encoding"
	"github.com/Cipher-Bureau/shamirsss/pkg/sss"
	cmdutils "github.com/Cipher-Bureau/shamirsss/pkg/utils/cmd"
)

const (
	shareFlagName      = "share"
	shareFlagShorthand = "r"
	shareFlagUsage     = "Share to combine, encoded per the --encoding flag. Repeat the flag once per share." +
		" Alternatively, this can be set with the following environment variable (comma-separated): " + shareEnvKey
	shareEnvKey = "SSS_SHARES"
)

type combineParameters struct {
	shares   [][]byte
	splitter sss.SecretSplitter
	enc      encoding.Encoding
}

// GetCombineCmd returns the Cobra combine command.
func GetCombineCmd() *cobra.Command {
	combineCmd := createCombineCmd()

	createCombineFlags(combineCmd)

	return combineCmd
}

func createCombineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combine",
		Short: "Reconstruct a secret from shares",
		Long:  "Reconstruct a secret from a threshold-sized (or larger) set of shares",
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters, err := getCombineParameters(cmd)
			if err != nil {
				return err
			}

			return runCombine(cmd, parameters)
		},
	}
}

func createCombineFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP(shareFlagName, shareFlagShorthand, nil, shareFlagUsage)
	createCommonFlags(cmd)
}

func getCombineParameters(cmd *cobra.Command) (*combineParameters, error) {
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

	shareTexts, err := cmdutils.GetUserSetVarFromArrayString(cmd, shareFlagName, shareEnvKey, false)
	if err != nil {
		return nil, err
	}

	shares, err := encoding.DecodeShares(shareTexts, enc)
	if err != nil {
		return nil, err
	}

	return &combineParameters{
		shares:   shares,
		splitter: splitter,
		enc:      enc,
	}, nil
}

func runCombine(cmd *cobra.Command, parameters *combineParameters) error {
	secret, err := parameters.splitter.Combine(parameters.shares)
	if err != nil {
		return fmt.Errorf("failed to combine shares: %w", err)
	}

	encoded, err := encoding.EncodeSecret(secret, parameters.enc)
	if err != nil {
		return err
	}

	logger.Debugf("combined %d shares", len(parameters.shares))

	fmt.Fprintln(cmd.OutOrStdout(), encoded)

	return nil
}
