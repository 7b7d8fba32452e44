package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "apispec",
		Short: "Generate OpenAPI documents from route manifests",
		Long: `apispec turns a list of routes (path, method and component schema names) plus a
schema map into an OpenAPI 3.0.0 document.`,
		SilenceUsage: true,
	}

	root.AddCommand(newGenerateCmd(), newVerifyCmd())

	return root
}
