package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vitalvas/apispec/openapi"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an OpenAPI document from a manifest",
		Long: `Read a YAML manifest of routes and schemas and write the OpenAPI document.
The output defaults to openapi.json in the working directory; a .yaml or .yml
output path writes YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()

			manifestPath, err := flags.GetString("file")
			if err != nil {
				return err
			}
			output, err := flags.GetString("output")
			if err != nil {
				return err
			}
			strict, err := flags.GetBool("strict")
			if err != nil {
				return err
			}
			verify, err := flags.GetBool("verify")
			if err != nil {
				return err
			}
			verbose, err := flags.GetBool("verbose")
			if err != nil {
				return err
			}

			m, err := openapi.LoadManifestFile(manifestPath)
			if err != nil {
				return err
			}

			cfg := m.Config()
			cfg.Output = output
			cfg.Strict = strict
			if flags.Changed("prefix") {
				if cfg.PathPrefix, err = flags.GetString("prefix"); err != nil {
					return err
				}
			}
			if flags.Changed("title") {
				if cfg.Info.Title, err = flags.GetString("title"); err != nil {
					return err
				}
			}
			if flags.Changed("version") {
				if cfg.Info.Version, err = flags.GetString("version"); err != nil {
					return err
				}
			}
			if verbose {
				cfg.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
			}

			doc, err := openapi.NewGenerator(cfg).Generate(m.Routes, m.Schemas)
			if err != nil {
				return err
			}

			if verify {
				data, err := os.ReadFile(output)
				if err != nil {
					return err
				}
				if err := openapi.Verify(cmd.Context(), data); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d paths, %d schemas\n",
				output, len(doc.Paths), len(doc.Components.Schemas))

			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "apispec.yaml", "route manifest to read")
	cmd.Flags().StringP("output", "o", "openapi.json", "write the generated document to a file")
	cmd.Flags().Bool("strict", false, "fail on schema names missing from the manifest")
	cmd.Flags().Bool("verify", false, "validate the written document with kin-openapi")
	cmd.Flags().String("prefix", "", `routing prefix segment to strip ("-" keeps paths)`)
	cmd.Flags().String("title", "", "override info.title")
	cmd.Flags().String("version", "", "override info.version")
	cmd.Flags().BoolP("verbose", "v", false, "log generation details to stderr")

	return cmd
}
