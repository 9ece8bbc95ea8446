package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "linecrunch",
	Short: "Linecrunch - genetic lineup optimizer for NHL daily fantasy",
	Long: `Linecrunch evolves DraftKings NHL lineups under the salary cap with a
time-bounded genetic search. It reads a DKSalaries CSV export, breeds an
elite pool of high-projection lineups, and writes them back out as CSV,
including an upload-ready sheet.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
