package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/md-bakery/internal/document"
	"github.com/pdiddy/md-bakery/internal/manifest"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report documents whose baked output is out of date",
	Long: `Check bakes every document in the manifest in memory and compares the
result with the output on disk without writing anything. It exits non-zero
when any output is missing, differs, or cannot be baked, which makes it
suitable for CI.`,
	RunE: runCheck,
}

func init() {
	addManifestFlag(checkCmd)

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(manifestPath(cmd))
	if err != nil {
		return err
	}

	result := document.CheckBatch(m, cmd.OutOrStdout())
	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed checking", result.Failed)
	}
	if result.Stale > 0 {
		return fmt.Errorf("%d document(s) out of date", result.Stale)
	}
	return nil
}
