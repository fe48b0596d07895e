package prtitle

import (
	"errors"
	"fmt"
	"regexp"
	"slices"

	"github.com/githubnext/gh-prtitle/pkg/constants"
)

// Config is the project-specific vocabulary and pattern set a Validator
// enforces.
type Config struct {
	// Types is the closed set of accepted commit kinds. Case-sensitive.
	Types []string
	// Scopes is the closed set of accepted plain scopes, matched verbatim.
	Scopes []string
	// SkipChangelogMarker must be the last, space-separated token of a
	// subject when present.
	SkipChangelogMarker string
	// NodeSuffix turns a scope into a component reference, e.g. "Slack Node".
	NodeSuffix string
	// SchemaPattern must define the type, scope, and subject named groups.
	SchemaPattern string
	// TicketPattern matches issue tracker references anywhere in the title.
	TicketPattern string
}

// DefaultConfig returns a fresh copy of the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Types:               slices.Clone(constants.DefaultTypes),
		Scopes:              slices.Clone(constants.DefaultScopes),
		SkipChangelogMarker: constants.DefaultSkipChangelogMarker,
		NodeSuffix:          constants.DefaultNodeSuffix,
		SchemaPattern:       constants.DefaultConventionalSchemaPattern,
		TicketPattern:       constants.DefaultTicketPattern,
	}
}

// compiledConfig holds the regular expressions derived from a Config.
type compiledConfig struct {
	schema       *regexp.Regexp
	typeIdx      int
	scopeIdx     int
	subjectIdx   int
	ticket       *regexp.Regexp
	markerSuffix *regexp.Regexp
}

func (cfg Config) compile() (*compiledConfig, error) {
	if cfg.SkipChangelogMarker == "" {
		return nil, errors.New("skip-changelog marker must not be empty")
	}
	if cfg.NodeSuffix == "" {
		return nil, errors.New("node suffix must not be empty")
	}

	schema, err := regexp.Compile(cfg.SchemaPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid conventional schema pattern: %w", err)
	}
	c := &compiledConfig{
		schema:     schema,
		typeIdx:    schema.SubexpIndex("type"),
		scopeIdx:   schema.SubexpIndex("scope"),
		subjectIdx: schema.SubexpIndex("subject"),
	}
	for _, group := range []string{"type", "scope", "subject"} {
		if schema.SubexpIndex(group) < 0 {
			return nil, fmt.Errorf("conventional schema pattern is missing the %q named group", group)
		}
	}

	if cfg.TicketPattern == "" {
		return nil, errors.New("ticket pattern must not be empty")
	}
	if c.ticket, err = regexp.Compile(cfg.TicketPattern); err != nil {
		return nil, fmt.Errorf("invalid ticket pattern: %w", err)
	}

	c.markerSuffix = regexp.MustCompile(" " + regexp.QuoteMeta(cfg.SkipChangelogMarker) + "$")
	return c, nil
}
