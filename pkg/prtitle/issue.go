package prtitle

import (
	"fmt"
	"strings"
)

// IssueCode identifies one category of title problem.
type IssueCode string

const (
	ConventionalSchemaMismatch IssueCode = "conventional-schema-mismatch"
	TicketNumberPresent        IssueCode = "ticket-number-present"
	TypeNotFound               IssueCode = "type-not-found"
	InvalidType                IssueCode = "invalid-type"
	InvalidScope               IssueCode = "invalid-scope"
	UppercaseInitialInSubject  IssueCode = "uppercase-initial-in-subject"
	FinalPeriodInSubject       IssueCode = "final-period-in-subject"
	NoPresentTenseInSubject    IssueCode = "no-present-tense-in-subject"
	SkipChangelogNotSuffix     IssueCode = "skip-changelog-not-suffix"
)

// Terminal reports whether an issue of this code is always returned alone.
func (c IssueCode) Terminal() bool {
	return c == ConventionalSchemaMismatch || c == TicketNumberPresent
}

// Issue is a single validation failure.
type Issue struct {
	Code    IssueCode `json:"code"`
	Message string    `json:"message"`
}

func (i Issue) String() string {
	return i.Message
}

// Issues is the ordered result of validating one title. Empty means valid.
type Issues []Issue

// Valid reports whether no issues were found.
func (is Issues) Valid() bool {
	return len(is) == 0
}

// Messages returns the message of every issue, in order.
func (is Issues) Messages() []string {
	out := make([]string, len(is))
	for i, issue := range is {
		out[i] = issue.Message
	}
	return out
}

// Codes returns the code of every issue, in order.
func (is Issues) Codes() []IssueCode {
	out := make([]IssueCode, len(is))
	for i, issue := range is {
		out[i] = issue.Code
	}
	return out
}

// Has reports whether an issue with code is present.
func (is Issues) Has(code IssueCode) bool {
	for _, issue := range is {
		if issue.Code == code {
			return true
		}
	}
	return false
}

// buildMessages returns the canonical message for every code under cfg.
func buildMessages(cfg Config) map[IssueCode]string {
	return map[IssueCode]string{
		ConventionalSchemaMismatch: "PR title does not conform to PR title convention",
		TicketNumberPresent:        "PR title must not contain a ticket number",
		TypeNotFound:               "Failed to find `type` in PR title",
		InvalidType:                fmt.Sprintf("Unknown `type` in PR title. Expected one of: %s", strings.Join(cfg.Types, ", ")),
		InvalidScope:               "Unknown `scope` in PR title",
		UppercaseInitialInSubject:  "First char of subject must be lowercase",
		FinalPeriodInSubject:       "Subject must not end with a period",
		NoPresentTenseInSubject:    "Subject must use present tense",
		SkipChangelogNotSuffix:     fmt.Sprintf("`%s` must be suffix", cfg.SkipChangelogMarker),
	}
}
