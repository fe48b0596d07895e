// Package constants holds the defaults shared by the validator, the config
// loader, and the CLI.
package constants

import "path/filepath"

// CommandPrefix is the prefix used in help text examples.
type CommandPrefix string

// CLIExtensionPrefix is how the tool is invoked as a gh extension.
const CLIExtensionPrefix CommandPrefix = "gh prtitle"

// DefaultConfigFile is looked up relative to the repository root.
var DefaultConfigFile = filepath.Join(".github", "pr-title.yml")

// GitHubEventPathEnv names the variable GitHub Actions sets to the event payload path.
const GitHubEventPathEnv = "GITHUB_EVENT_PATH"

// DefaultSkipChangelogMarker excludes a PR from generated changelogs when it
// is the last token of the subject.
const DefaultSkipChangelogMarker = "(no-changelog)"

// DefaultNodeSuffix marks a scope as naming a registered component.
const DefaultNodeSuffix = " Node"

// DefaultConventionalSchemaPattern splits a title into type, scope, and subject.
const DefaultConventionalSchemaPattern = `^(?P<type>[^\s():!]+)(?:\((?P<scope>[^()]*)\))?!?: (?P<subject>.+)$`

// DefaultTicketPattern matches issue tracker references such as ENG-1234.
const DefaultTicketPattern = `\b[A-Z][A-Z0-9]{1,9}-\d+\b`

// DefaultTypes are the accepted commit kinds.
var DefaultTypes = []string{
	"feat",
	"fix",
	"perf",
	"test",
	"docs",
	"refactor",
	"build",
	"ci",
	"chore",
	"revert",
}

// DefaultScopes are the accepted project areas besides component scopes.
var DefaultScopes = []string{
	"API",
	"benchmark",
	"core",
	"editor",
	"deps",
}
