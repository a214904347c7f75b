// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the md-bakery CLI.
// The root command bakes a single document; batch and check work from a
// manifest of documents.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/md-bakery/internal/document"
	"github.com/pdiddy/md-bakery/internal/manifest"
	"github.com/pdiddy/md-bakery/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()

// rootCmd bakes one Markdown template into one output document.
var rootCmd = &cobra.Command{
	Use:   "md-bakery",
	Short: "Inline source-code fragments into Markdown documents",
	Long: `md-bakery replaces placeholder code fences in a Markdown template with the
content of the source files they reference:

    ` + "```rust:source@snippet-a path/to/file.rs    ```" + `

Source files mark regions with "[md-bakery: begin @name]" and
"[md-bakery: end]" comments. Without a matching region the whole file is
inlined. Write "!source" to keep a placeholder literally in the output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
	},
	RunE: runBake,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./md-bakery.yaml or ~/.config/md-bakery/md-bakery.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "report region fallbacks and other notices")

	rootCmd.Flags().StringP("input", "i", "", "Markdown template file name")
	rootCmd.Flags().StringP("output", "o", "", "Markdown generated file name")
	rootCmd.Flags().StringP("root", "r", "", "source files root path (default: current directory)")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")
}

// envRoot is the environment variable viper maps onto the root key.
const envRoot = "MD_BAKERY_ROOT"

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("md-bakery")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "md-bakery"))
		}
	}

	viper.SetEnvPrefix("MD_BAKERY")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("root", rootCmd.Flags().Lookup("root"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}
}

func runBake(cmd *cobra.Command, args []string) error {
	cfg := bakeConfigFromFlags(cmd)

	res, err := document.Bake(cfg, notices(cmd))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "baked: %s -> %s (%s)\n", cfg.Input, cfg.Output, document.Summary(res))
	return nil
}

// bakeConfigFromFlags builds the single-document config.
func bakeConfigFromFlags(cmd *cobra.Command) types.BakeConfig {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	return types.BakeConfig{
		Input:  input,
		Output: output,
		Root:   sourceRoot(cmd),
	}
}

// sourceRoot returns the root from the flag, MD_BAKERY_ROOT or the config
// file, in that order. Flag and environment values are relative to the
// current directory; a config file root is relative to the config file,
// as it is for manifests.
func sourceRoot(cmd *cobra.Command) string {
	root := viper.GetString("root")
	if cmd.Flags().Changed("root") {
		return root
	}
	if os.Getenv(envRoot) != "" {
		return root
	}
	if cfg := viper.ConfigFileUsed(); cfg != "" && viper.InConfig("root") {
		return manifest.ResolvePath(filepath.Dir(cfg), root)
	}
	return root
}

// notices returns where engine notices go: stderr with --verbose, nowhere otherwise.
func notices(cmd *cobra.Command) io.Writer {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return cmd.ErrOrStderr()
	}
	return nil
}

// manifestPath returns the manifest named by --manifest, else the loaded
// config file, else the default name in the current directory.
func manifestPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("manifest"); p != "" {
		return p
	}
	if p := viper.ConfigFileUsed(); p != "" {
		return p
	}
	return manifest.DefaultFile
}

// addManifestFlag declares the --manifest flag shared by batch and check.
func addManifestFlag(cmd *cobra.Command) {
	cmd.Flags().String("manifest", "", "manifest file (default: the config file or ./md-bakery.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorLabel("error:"), err)
		os.Exit(1)
	}
}
