// This file provides the pull request title validator.
//
// # Validation Pipeline
//
// A title goes through the checks below in a fixed order. The first two are
// terminal: when either fires, its issue is the whole result. The rest
// accumulate so a single run reports every problem.
//
//   - schema.go: conventional schema match, then ticket number detection
//   - vocabulary.go: type and scope membership, component ("Node") scopes
//   - subject.go: casing, final period, present tense, changelog marker
//
// # Collaborators
//
// The validator does no I/O. The component registry, the base-form reducer,
// and the closest-match helper are injected with options and default to the
// shared English lemmatizer, Levenshtein matching, and an empty registry.
//
// A Validator is immutable once built and safe for concurrent use.

package prtitle

import (
	"slices"

	"github.com/githubnext/gh-prtitle/pkg/lemma"
	"github.com/githubnext/gh-prtitle/pkg/logger"
	"github.com/githubnext/gh-prtitle/pkg/stringutil"
)

var validatorLog = logger.New("prtitle:validator")

// BaseFormFunc reduces a word to its dictionary base form.
type BaseFormFunc func(word string) string

// ClosestMatchFunc returns the entry of refs closest to candidate.
type ClosestMatchFunc func(candidate string, refs []string) string

// ComponentRegistry supplies the current component display names.
type ComponentRegistry interface {
	DisplayNames() []string
}

// RegistryFunc adapts a plain function to ComponentRegistry.
type RegistryFunc func() []string

// DisplayNames calls f.
func (f RegistryFunc) DisplayNames() []string {
	return f()
}

// Option customizes a Validator.
type Option func(*Validator)

// WithRegistry sets the component registry consulted for Node scopes.
func WithRegistry(r ComponentRegistry) Option {
	return func(v *Validator) {
		if r != nil {
			v.registry = r
		}
	}
}

// WithBaseForm sets the reducer used by the present tense check.
func WithBaseForm(f BaseFormFunc) Option {
	return func(v *Validator) {
		if f != nil {
			v.baseForm = f
		}
	}
}

// WithClosestMatch sets the helper used for Node scope suggestions.
func WithClosestMatch(f ClosestMatchFunc) Option {
	return func(v *Validator) {
		if f != nil {
			v.closest = f
		}
	}
}

// WithFailFast stops validation at the first issue.
func WithFailFast() Option {
	return func(v *Validator) {
		v.failFast = true
	}
}

// Validator checks titles against one Config.
type Validator struct {
	cfg      Config
	compiled *compiledConfig
	messages map[IssueCode]string

	registry ComponentRegistry
	baseForm BaseFormFunc
	closest  ClosestMatchFunc
	failFast bool
}

// NewValidator compiles cfg and applies opts. It fails only when cfg itself
// is unusable.
func NewValidator(cfg Config, opts ...Option) (*Validator, error) {
	compiled, err := cfg.compile()
	if err != nil {
		return nil, err
	}

	cfg.Types = slices.Clone(cfg.Types)
	cfg.Scopes = slices.Clone(cfg.Scopes)

	v := &Validator{
		cfg:      cfg,
		compiled: compiled,
		messages: buildMessages(cfg),
		registry: RegistryFunc(func() []string { return nil }),
		baseForm: lemma.BaseForm,
		closest:  stringutil.ClosestMatch,
	}
	for _, opt := range opts {
		opt(v)
	}

	validatorLog.Printf("Created validator: types=%d, scopes=%d, fail_fast=%v", len(cfg.Types), len(cfg.Scopes), v.failFast)
	return v, nil
}

// Config returns a copy of the configuration the validator enforces.
func (v *Validator) Config() Config {
	cfg := v.cfg
	cfg.Types = slices.Clone(v.cfg.Types)
	cfg.Scopes = slices.Clone(v.cfg.Scopes)
	return cfg
}

// Validate returns every issue found in title, in check order. An empty
// result means the title is valid.
func (v *Validator) Validate(title string) Issues {
	validatorLog.Printf("Validating title: %q", title)
	c := newIssueCollector(v.failFast)

	m, ok := v.matchSchema(title)
	if !ok {
		c.Add(v.issue(ConventionalSchemaMismatch))
		return c.Issues()
	}
	if v.containsTicketNumber(title) {
		c.Add(v.issue(TicketNumberPresent))
		return c.Issues()
	}

	checks := []func(match, *issueCollector) bool{
		v.checkType,
		v.checkScope,
		v.checkSubject,
	}
	for _, check := range checks {
		if stop := check(m, c); stop {
			break
		}
	}

	validatorLog.Printf("Validation complete: issues=%d", c.Count())
	return c.Issues()
}

func (v *Validator) issue(code IssueCode) Issue {
	return Issue{Code: code, Message: v.messages[code]}
}
