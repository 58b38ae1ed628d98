/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// package cmd contains helpers for resolving command values from either
// command line flags or environment variables.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// GetUserSetVarFromString returns the value set for the given flag, falling back to the given environment
// variable when the flag was not provided on the command line. When isOptional is false, one of the two
// must be set to a nonempty value.
func GetUserSetVarFromString(cmd *cobra.Command, flagName, envKey string, isOptional bool) (string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf("%s flag not found", flagName)
		}

		if value == "" {
			return "", fmt.Errorf("%s value is empty", flagName)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)
	if isSet {
		if value == "" {
			return "", fmt.Errorf("%s value is empty", envKey)
		}

		return value, nil
	}

	if isOptional {
		return "", nil
	}

	return "", fmt.Errorf("Neither %s (command line flag) nor %s (environment variable) have been set.",
		flagName, envKey)
}

// GetUserSetVarFromArrayString returns the values set for the given repeatable flag, falling back to the
// given environment variable (comma-separated) when the flag was not provided on the command line. When
// isOptional is false, one of the two must be set to a nonempty value.
func GetUserSetVarFromArrayString(cmd *cobra.Command, flagName, envKey string, isOptional bool) ([]string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetStringArray(flagName)
		if err != nil {
			return nil, fmt.Errorf("%s flag not found", flagName)
		}

		if len(value) == 0 || (len(value) == 1 && value[0] == "") {
			return nil, fmt.Errorf("%s value is empty", flagName)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)
	if isSet {
		if value == "" {
			return nil, fmt.Errorf("%s value is empty", envKey)
		}

		return strings.Split(value, ","), nil
	}

	if isOptional {
		return nil, nil
	}

	return nil, fmt.Errorf("Neither %s (command line flag) nor %s (environment variable) have been set.",
		flagName, envKey)
}
