//go:build !integration

package prtitle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBaseForm reduces the few inflected words used in these tests.
func stubBaseForm(word string) string {
	switch word {
	case "Fixed", "fixed":
		return "fix"
	case "added", "adding", "adds":
		return "add"
	case "Updated", "updated":
		return "update"
	}
	return word
}

func stubRegistry(names ...string) ComponentRegistry {
	return RegistryFunc(func() []string { return names })
}

func newTestValidator(t *testing.T, opts ...Option) *Validator {
	t.Helper()
	defaults := []Option{
		WithBaseForm(stubBaseForm),
		WithRegistry(stubRegistry("Bar", "Slack", "Google Sheets", "Gmail")),
	}
	v, err := NewValidator(DefaultConfig(), append(defaults, opts...)...)
	require.NoError(t, err, "Default config should compile")
	return v
}

func TestValidate_SchemaMismatch(t *testing.T) {
	v := newTestValidator(t)

	titles := []string{
		"",
		"add support",
		"feat add support",
		"feat:add support",
		"feat: ",
		"feat(api: add support",
		"feat (api): add support",
	}

	for _, title := range titles {
		t.Run(title, func(t *testing.T) {
			issues := v.Validate(title)
			assert.Equal(t, []IssueCode{ConventionalSchemaMismatch}, issues.Codes(), "Title %q should only fail the schema", title)
			assert.Equal(t, "PR title does not conform to PR title convention", issues[0].Message)
		})
	}
}

func TestValidate_TicketNumberIsExclusive(t *testing.T) {
	v := newTestValidator(t)

	titles := []string{
		"feat: add support ENG-123",
		"fix(PAY-42): handle webhook",
		"Feat(unknown): Added stuff. CAT-7",
	}

	for _, title := range titles {
		t.Run(title, func(t *testing.T) {
			issues := v.Validate(title)
			require.Len(t, issues, 1, "Ticket number should be the only issue")
			assert.Equal(t, TicketNumberPresent, issues[0].Code)
			assert.Equal(t, "PR title must not contain a ticket number", issues[0].Message)
		})
	}
}

func TestValidate_ValidTitles(t *testing.T) {
	v := newTestValidator(t)

	titles := []string{
		"feat: add support",
		"fix(editor): handle empty canvas",
		"feat(core)!: drop legacy flag",
		"perf!: reduce memory use",
		"feat(Slack Node): add channel option",
		"feat(Google Sheets Node): add range option",
		"feat(Slack Trigger Node): add event filter",
		"chore: update deps (no-changelog)",
		"feat(): add support",
		"fix: 2fa prompt shows twice",
		"fix: Élan handles unicode",
	}

	for _, title := range titles {
		t.Run(title, func(t *testing.T) {
			issues := v.Validate(title)
			assert.Empty(t, issues, "Title %q should be valid", title)
			assert.True(t, issues.Valid())
			assert.NotNil(t, issues, "Valid result should be an empty, non-nil list")
		})
	}
}

func TestValidate_InvalidType(t *testing.T) {
	v := newTestValidator(t)

	issues := v.Validate("Feat: add support")

	assert.Equal(t, []IssueCode{InvalidType}, issues.Codes(), "Type vocabulary is case-sensitive")
	assert.Equal(t, "Unknown `type` in PR title. Expected one of: feat, fix, perf, test, docs, refactor, build, ci, chore, revert", issues[0].Message)
}

func TestValidate_TypeNotFoundAndInvalidTypeAreIndependent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SchemaPattern = `^(?P<type>[a-z]*)(?:\((?P<scope>[^()]*)\))?!?: (?P<subject>.+)$`
	v, err := NewValidator(cfg, WithBaseForm(stubBaseForm))
	require.NoError(t, err)

	issues := v.Validate("(core): add support")

	assert.Equal(t, []IssueCode{TypeNotFound, InvalidType}, issues.Codes())
	assert.Equal(t, "Failed to find `type` in PR title", issues[0].Message)
}

func TestValidate_SubjectIssuesAccumulateInOrder(t *testing.T) {
	v := newTestValidator(t)

	issues := v.Validate("fix(api): Fixed the bug.")

	assert.Equal(t, []IssueCode{
		InvalidScope,
		UppercaseInitialInSubject,
		FinalPeriodInSubject,
		NoPresentTenseInSubject,
	}, issues.Codes(), "Scope is case-sensitive and all subject checks should fire")
	assert.Equal(t, []string{
		"Unknown `scope` in PR title",
		"First char of subject must be lowercase",
		"Subject must not end with a period",
		"Subject must use present tense",
	}, issues.Messages())
}

func TestValidate_Scope(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		registry []string
		message  string
	}{
		{
			name:     "unknown component suggests closest name",
			title:    "fix(Foo Node): add handler",
			registry: []string{"Bar", "Slack"},
			message:  "Unknown `scope` in PR title. Did you mean `Bar Node`?",
		},
		{
			name:     "typo in component name",
			title:    "fix(Slak Node): add handler",
			registry: []string{"Gmail", "Slack"},
			message:  "Unknown `scope` in PR title. Did you mean `Slack Node`?",
		},
		{
			name:     "unknown plain scope has no suggestion",
			title:    "fix(frontend): add handler",
			registry: []string{"Bar", "Slack"},
			message:  "Unknown `scope` in PR title",
		},
		{
			name:     "bare suffix word is not a component scope",
			title:    "fix(Node): add handler",
			registry: []string{"Bar"},
			message:  "Unknown `scope` in PR title",
		},
		{
			name:     "empty registry has no suggestion",
			title:    "fix(Foo Node): add handler",
			registry: nil,
			message:  "Unknown `scope` in PR title",
		},
		{
			name:     "registry name must prefix the component",
			title:    "fix(My Slack Node): add handler",
			registry: []string{"Slack"},
			message:  "Unknown `scope` in PR title. Did you mean `Slack Node`?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator(t, WithRegistry(stubRegistry(tt.registry...)))
			issues := v.Validate(tt.title)
			require.Equal(t, []IssueCode{InvalidScope}, issues.Codes())
			assert.Equal(t, tt.message, issues[0].Message)
		})
	}
}

func TestValidate_ClosestMatchIsInjected(t *testing.T) {
	var gotCandidate string
	var gotRefs []string
	closest := func(candidate string, refs []string) string {
		gotCandidate, gotRefs = candidate, refs
		return "Stubbed"
	}
	v := newTestValidator(t, WithRegistry(stubRegistry("Bar", "Baz")), WithClosestMatch(closest))

	issues := v.Validate("fix(Foo Bar Node): add handler")

	require.Len(t, issues, 1)
	assert.Equal(t, "Unknown `scope` in PR title. Did you mean `Stubbed Node`?", issues[0].Message)
	assert.Equal(t, "Foo Bar", gotCandidate, "Suffix should be stripped before matching")
	assert.Equal(t, []string{"Bar", "Baz"}, gotRefs)
}

func TestValidate_SkipChangelogMarker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SkipChangelogMarker = "skip-changelog"
	v, err := NewValidator(cfg, WithBaseForm(stubBaseForm))
	require.NoError(t, err)

	tests := []struct {
		title string
		fires bool
	}{
		{"chore: update deps skip-changelog extra", true},
		{"chore: update deps skip-changelog", false},
		{"chore: update depsskip-changelog", true},
		{"chore: update deps skip-changelog ", true},
		{"chore: skip-changelog", true},
		{"chore: update deps", false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			issues := v.Validate(tt.title)
			assert.Equal(t, tt.fires, issues.Has(SkipChangelogNotSuffix), "title %q", tt.title)
			if tt.fires {
				assert.Contains(t, issues.Messages(), "`skip-changelog` must be suffix")
			}
		})
	}
}

func TestValidate_SkipChangelogMarkerIsLiteral(t *testing.T) {
	v := newTestValidator(t)

	assert.False(t, v.Validate("chore: bump deps (no-changelog)").Has(SkipChangelogNotSuffix))
	assert.True(t, v.Validate("chore: bump (no-changelog) deps").Has(SkipChangelogNotSuffix))
	assert.False(t, v.Validate("chore: bump deps no-changelog").Has(SkipChangelogNotSuffix), "Marker without parentheses is not the marker")
}

func TestValidate_PresentTense(t *testing.T) {
	v := newTestValidator(t)

	assert.True(t, v.Validate("feat: added support").Has(NoPresentTenseInSubject))
	assert.True(t, v.Validate("feat: adding support").Has(NoPresentTenseInSubject))
	assert.True(t, v.Validate("feat: adds support").Has(NoPresentTenseInSubject))
	assert.False(t, v.Validate("feat: add support").Has(NoPresentTenseInSubject))
	assert.False(t, v.Validate("feat: add\tsupport").Has(NoPresentTenseInSubject), "Any whitespace ends the first word")
}

func TestValidate_PresentTenseWithDictionary(t *testing.T) {
	v, err := NewValidator(DefaultConfig())
	require.NoError(t, err, "default config should compile")

	tests := []struct {
		title    string
		expected bool
	}{
		{"feat: better error messages", false},
		{"docs: docs for the retry option", false},
		{"fix: data loss on restart", false},
		{"fix: Fixed the bug", true},
		{"feat: adding support", true},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.Validate(tt.title).Has(NoPresentTenseInSubject), "present tense issue for %q", tt.title)
		})
	}
}

func TestValidate_FailFast(t *testing.T) {
	v := newTestValidator(t, WithFailFast())

	issues := v.Validate("fix(api): Fixed the bug.")

	assert.Equal(t, []IssueCode{InvalidScope}, issues.Codes())
}

func TestValidate_Idempotent(t *testing.T) {
	v := newTestValidator(t)
	title := "fix(Foo Node): Fixed the bug."

	first := v.Validate(title)
	second := v.Validate(title)

	assert.Equal(t, first, second)
}

func TestValidate_RegistryIsRefetchedEachCall(t *testing.T) {
	calls := 0
	names := []string{"Gmail"}
	registry := RegistryFunc(func() []string {
		calls++
		return names
	})
	v := newTestValidator(t, WithRegistry(registry))

	assert.True(t, v.Validate("feat(Slack Node): add option").Has(InvalidScope))
	names = append(names, "Slack")
	assert.False(t, v.Validate("feat(Slack Node): add option").Has(InvalidScope))
	assert.Equal(t, 2, calls)

	v.Validate("feat(core): add option")
	assert.Equal(t, 2, calls, "Static scopes should not consult the registry")
}

func TestValidate_ConcurrentUse(t *testing.T) {
	v := newTestValidator(t)
	titles := []string{
		"feat: add support",
		"fix(api): Fixed the bug.",
		"fix(Foo Node): add handler",
		"nope",
	}
	want := make([]Issues, len(titles))
	for i, title := range titles {
		want[i] = v.Validate(title)
	}

	var wg sync.WaitGroup
	for range 8 {
		for i, title := range titles {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, want[i], v.Validate(title))
			}()
		}
	}
	wg.Wait()
}

func TestNewValidator_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad schema regexp",
			mutate:  func(c *Config) { c.SchemaPattern = "(" },
			wantErr: "invalid conventional schema pattern",
		},
		{
			name:    "missing subject group",
			mutate:  func(c *Config) { c.SchemaPattern = `^(?P<type>\w+)(?:\((?P<scope>.*)\))?: .+$` },
			wantErr: `missing the "subject" named group`,
		},
		{
			name:    "bad ticket regexp",
			mutate:  func(c *Config) { c.TicketPattern = "[" },
			wantErr: "invalid ticket pattern",
		},
		{
			name:    "empty ticket pattern",
			mutate:  func(c *Config) { c.TicketPattern = "" },
			wantErr: "ticket pattern must not be empty",
		},
		{
			name:    "empty marker",
			mutate:  func(c *Config) { c.SkipChangelogMarker = "" },
			wantErr: "skip-changelog marker must not be empty",
		},
		{
			name:    "empty node suffix",
			mutate:  func(c *Config) { c.NodeSuffix = "" },
			wantErr: "node suffix must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			v, err := NewValidator(cfg)
			require.Error(t, err)
			assert.Nil(t, v)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidator_ConfigIsCopied(t *testing.T) {
	cfg := DefaultConfig()
	v, err := NewValidator(cfg, WithBaseForm(stubBaseForm))
	require.NoError(t, err)

	cfg.Types[0] = "mutated"
	assert.Empty(t, v.Validate("feat: add support"), "Mutating the caller's config should not affect the validator")

	got := v.Config()
	got.Scopes[0] = "mutated"
	assert.Equal(t, DefaultConfig().Scopes, v.Config().Scopes)
}
