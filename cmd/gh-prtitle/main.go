package main

import (
	"fmt"
	"os"

	"github.com/githubnext/gh-prtitle/pkg/cli"
	"github.com/githubnext/gh-prtitle/pkg/constants"
	"github.com/githubnext/gh-prtitle/pkg/logger"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var mainLog = logger.New("cmd:main")

var rootCmd = &cobra.Command{
	Use:   string(constants.CLIExtensionPrefix),
	Short: "Check pull request titles against the project's title convention",
	Long: `gh prtitle checks that pull request titles follow the conventional title schema
used to generate changelogs:

  type(scope)!: subject

Run it in a pull_request workflow to validate the current pull request, or locally
on any title.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the gh prtitle version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", constants.CLIExtensionPrefix, version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "validation", Title: "Validation Commands:"},
		&cobra.Group{ID: "setup", Title: "Setup Commands:"},
	)

	validateCmd := cli.NewValidateCommand()
	validateCmd.GroupID = "validation"
	configCmd := cli.NewConfigCommand()
	configCmd.GroupID = "setup"

	rootCmd.AddCommand(validateCmd, configCmd, versionCmd)
}

func main() {
	mainLog.Printf("Starting %s %s: args=%v", constants.CLIExtensionPrefix, version, os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		cli.PrintCommandError(os.Stderr, err)
		os.Exit(1)
	}
}
