package prtitle

import (
	"strings"
	"unicode"
)

// checkSubject runs the style checks in their reporting order.
func (v *Validator) checkSubject(m match, c *issueCollector) bool {
	checks := []struct {
		code  IssueCode
		fails func(string) bool
	}{
		{UppercaseInitialInSubject, startsWithUpperCase},
		{FinalPeriodInSubject, endsWithPeriod},
		{NoPresentTenseInSubject, v.doesNotUsePresentTense},
		{SkipChangelogNotSuffix, v.skipChangelogIsMisplaced},
	}
	for _, check := range checks {
		if check.fails(m.subject) {
			if c.Add(v.issue(check.code)) {
				return true
			}
		}
	}
	return false
}

// startsWithUpperCase only looks at ASCII letters.
func startsWithUpperCase(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

func endsWithPeriod(s string) bool {
	return strings.HasSuffix(s, ".")
}

func (v *Validator) doesNotUsePresentTense(s string) bool {
	word := firstWord(s)
	if word == "" {
		return false
	}
	return v.baseForm(word) != word
}

func (v *Validator) skipChangelogIsMisplaced(s string) bool {
	return strings.Contains(s, v.cfg.SkipChangelogMarker) && !v.compiled.markerSuffix.MatchString(s)
}

// firstWord returns s up to its first whitespace character.
func firstWord(s string) string {
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[:i]
	}
	return s
}
