package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vitalvas/apispec/openapi"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <document>",
		Short: "Validate an OpenAPI document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			if err := openapi.Verify(cmd.Context(), data); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			return nil
		},
	}
}
