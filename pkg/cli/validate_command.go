package cli

import (
	"os"

	"github.com/githubnext/gh-prtitle/pkg/constants"
	"github.com/githubnext/gh-prtitle/pkg/logger"
	"github.com/spf13/cobra"
)

var validateLog = logger.New("cli:validate_command")

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [title]...",
		Short: "Validate pull request titles against the project's title convention",
		Long: `Validate one or more pull request titles against the conventional title schema:

  type(scope)!: subject

The type and scope must come from the configured vocabularies, or the scope may name
a registered component as "<Name> Node". The subject must start lowercase, use the
present tense, not end with a period, and may only carry the skip-changelog marker as
its last word. Ticket numbers are not allowed.

Titles are taken from the arguments, from --file, from a pull request (--pr), or, inside
a GitHub Actions pull_request workflow, from the event payload.

Examples:
  ` + string(constants.CLIExtensionPrefix) + ` validate "feat(core): add retries"   # Validate a title
  ` + string(constants.CLIExtensionPrefix) + ` validate --pr 1234                    # Validate a pull request in this repository
  ` + string(constants.CLIExtensionPrefix) + ` validate --pr 1234 --repo owner/name  # Validate a pull request elsewhere
  ` + string(constants.CLIExtensionPrefix) + ` validate                              # Validate the pull request of the current workflow run
  git log --format=%s | ` + string(constants.CLIExtensionPrefix) + ` validate --file -  # Validate many titles
  ` + string(constants.CLIExtensionPrefix) + ` validate --json "fix: Fixed it."       # Output results in JSON format`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			eventPath, _ := cmd.Flags().GetString("event")
			file, _ := cmd.Flags().GetString("file")
			pr, _ := cmd.Flags().GetInt("pr")
			repo, _ := cmd.Flags().GetString("repo")
			registryPatterns, _ := cmd.Flags().GetStringArray("registry")
			jsonOutput, _ := cmd.Flags().GetBool("json")
			failFast, _ := cmd.Flags().GetBool("fail-fast")
			verbose, _ := cmd.Flags().GetBool("verbose")

			if !cmd.Flags().Changed("event") {
				eventPath = os.Getenv(constants.GitHubEventPathEnv)
			}

			validateLog.Printf("Running validate command: titles=%d, file=%s, pr=%d, event=%s", len(args), file, pr, eventPath)

			_, err := RunValidate(ValidateOptions{
				Titles:           args,
				TitleFile:        file,
				PRNumber:         pr,
				Repo:             repo,
				EventPath:        eventPath,
				ConfigPath:       configPath,
				ConfigOptional:   !cmd.Flags().Changed("config"),
				RegistryPatterns: registryPatterns,
				JSONOutput:       jsonOutput,
				FailFast:         failFast,
				Verbose:          verbose,
				Stdin:            cmd.InOrStdin(),
				Stdout:           cmd.OutOrStdout(),
				Stderr:           cmd.ErrOrStderr(),
			})
			return err
		},
	}

	cmd.Flags().StringP("config", "c", constants.DefaultConfigFile, "Configuration file")
	cmd.Flags().String("event", "", "GitHub Actions event payload (default: $"+constants.GitHubEventPathEnv+")")
	cmd.Flags().StringP("file", "f", "", "Read titles from a file, one per line (- for stdin)")
	cmd.Flags().Int("pr", 0, "Validate the title of this pull request number")
	cmd.Flags().StringP("repo", "r", "", "Repository of --pr as owner/name or URL (default: current repository)")
	cmd.Flags().StringArray("registry", nil, "Component description files (glob) to add to the registry; repeatable")
	cmd.Flags().BoolP("json", "j", false, "Output results in JSON format")
	cmd.Flags().Bool("fail-fast", false, "Report only the first issue of each title")

	return cmd
}
