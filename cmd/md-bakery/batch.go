package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/md-bakery/internal/document"
	"github.com/pdiddy/md-bakery/internal/manifest"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Bake every document listed in a manifest",
	Long: `Batch reads a YAML manifest (md-bakery.yaml by default) listing input and
output documents and bakes each of them. Paths in the manifest are relative
to the manifest's directory. A failing document is reported and left
unwritten; the others are still baked.`,
	RunE: runBatch,
}

func init() {
	addManifestFlag(batchCmd)

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(manifestPath(cmd))
	if err != nil {
		return err
	}

	result := document.BakeBatch(m, cmd.OutOrStdout())
	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed baking", result.Failed)
	}
	return nil
}
