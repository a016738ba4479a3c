// Package main is the entry point for the researcher CLI. It wires the
// researcher tools to an engine built from configuration and runs a single
// research invocation per command.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "researcher",
	Short: "Generate research reports from the web or a local document directory",
	Long: `researcher exposes the research-report tools on the command line.

The web subcommand gathers source material from web search; the local
subcommand reads the document directory configured via DOC_PATH (or
GPTR_DOC_PATH). Both run the engine's two-step sequence, conduct research
then write report, and print the report to stdout.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the researcher version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML); environment variables take precedence")
	rootCmd.AddCommand(webCmd, localCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
