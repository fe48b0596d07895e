package prtitle

import (
	"slices"
	"strings"

	"github.com/githubnext/gh-prtitle/pkg/logger"
)

var vocabularyLog = logger.New("prtitle:vocabulary")

// checkType reports a missing type and an unknown type independently; an
// empty type yields both.
func (v *Validator) checkType(m match, c *issueCollector) bool {
	if m.typ == "" {
		if c.Add(v.issue(TypeNotFound)) {
			return true
		}
	}
	if !slices.Contains(v.cfg.Types, m.typ) {
		vocabularyLog.Printf("Unknown type: %q", m.typ)
		return c.Add(v.issue(InvalidType))
	}
	return false
}

func (v *Validator) checkScope(m match, c *issueCollector) bool {
	if m.scope == "" {
		return false
	}
	if slices.Contains(v.cfg.Scopes, m.scope) {
		return false
	}

	names := v.registry.DisplayNames()
	if v.isComponentScope(m.scope, names) {
		return false
	}

	vocabularyLog.Printf("Unknown scope: %q", m.scope)
	issue := v.issue(InvalidScope)
	if component, ok := strings.CutSuffix(m.scope, v.cfg.NodeSuffix); ok && len(names) > 0 {
		issue.Message += ". Did you mean `" + v.closest(component, names) + v.cfg.NodeSuffix + "`?"
	}
	return c.Add(issue)
}

// isComponentScope accepts "<name...><suffix>" where the part before the
// suffix starts with a registered name.
func (v *Validator) isComponentScope(scope string, names []string) bool {
	component, ok := strings.CutSuffix(scope, v.cfg.NodeSuffix)
	if !ok {
		return false
	}
	for _, name := range names {
		if name != "" && strings.HasPrefix(component, name) {
			return true
		}
	}
	return false
}
