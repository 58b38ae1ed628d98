/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"github.com/spf13/cobra"

	"github.com/Cipher-Bureau/shamirsss/cmd/sss-cli/sharecmd"
	"github.com/Cipher-Bureau/shamirsss/pkg/log"
)

var logger = log.New("sss-cli")

func main() {
	rootCmd := &cobra.Command{
		Use:          "sss-cli",
		Short:        "Split secrets into threshold shares and recombine them",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(sharecmd.GetSplitCmd())
	rootCmd.AddCommand(sharecmd.GetCombineCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("Failed to run sss-cli: %s", err.Error())
	}
}
