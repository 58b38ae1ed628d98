/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sharecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cipher-Bureau/shamirsss/pkg/encoding"
	"github.com/Cipher-Bureau/shamirsss/pkg/log"
	"github.com/Cipher-Bureau/shamirsss/pkg/sss"
	"github.com/Cipher-Bureau/shamirsss/pkg/sss/base"
	"github.com/Cipher-Bureau/shamirsss/pkg/sss/shamir"
	cmdutils "github.com/Cipher-Bureau/shamirsss/pkg/utils/cmd"
)

const (
	modeFlagName      = "mode"
	modeFlagShorthand = "m"
	modeFlagUsage     = "Secret sharing mode to use: 'field' (256-bit prime field, 32-byte chunks)" +
		" or 'gf256' (byte-wise GF(256)). Defaults to 'field'." +
		" Alternatively, this can be set with the following environment variable: " + modeEnvKey
	modeEnvKey = "SSS_MODE"

	encodingFlagName      = "encoding"
	encodingFlagShorthand = "e"
	encodingFlagUsage     = "Text encoding for secrets and shares: 'hex' or 'base64'. Defaults to 'hex'." +
		" Alternatively, this can be set with the following environment variable: " + encodingEnvKey
	encodingEnvKey = "SSS_ENCODING"

	logLevelFlagName  = "log-level"
	logLevelFlagUsage = "Logging level to set. Supported options: CRITICAL, ERROR, WARNING, INFO, DEBUG." +
		" Defaults to INFO if not set. Setting to INFO means that CRITICAL, ERROR, WARNING and INFO" +
		" log statements will be displayed." +
		" Alternatively, this can be set with the following environment variable: " + logLevelEnvKey
	logLevelEnvKey = "SSS_LOG_LEVEL"

	modeField = "field"
	modeGF256 = "gf256"
)

var logger = log.New("sss-cli/sharecmd")

func createCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(modeFlagName, modeFlagShorthand, "", modeFlagUsage)
	cmd.Flags().StringP(encodingFlagName, encodingFlagShorthand, "", encodingFlagUsage)
	cmd.Flags().StringP(logLevelFlagName, "", "", logLevelFlagUsage)
}

func getSplitter(cmd *cobra.Command) (sss.SecretSplitter, error) {
	mode, err := cmdutils.GetUserSetVarFromString(cmd, modeFlagName, modeEnvKey, true)
	if err != nil {
		return nil, err
	}

	switch mode {
	case "", modeField:
		return &shamir.Splitter{}, nil
	case modeGF256:
		return &base.Splitter{}, nil
	default:
		return nil, fmt.Errorf("unsupported mode: %s", mode)
	}
}

func getEncoding(cmd *cobra.Command) (encoding.Encoding, error) {
	name, err := cmdutils.GetUserSetVarFromString(cmd, encodingFlagName, encodingEnvKey, true)
	if err != nil {
		return 0, err
	}

	if name == "" {
		return encoding.Hex, nil
	}

	return encoding.ParseEncoding(name)
}

func setLogLevel(cmd *cobra.Command) error {
	logLevel, err := cmdutils.GetUserSetVarFromString(cmd, logLevelFlagName, logLevelEnvKey, true)
	if err != nil {
		return err
	}

	if logLevel == "" {
		return nil
	}

	if err := log.SetSpec(logLevel); err != nil {
		return fmt.Errorf("failed to set log level: %w", err)
	}

	logger.Debugf("logger level set to %s", logLevel)

	return nil
}
