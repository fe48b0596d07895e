// Package registry supplies the component display names that make a
// "<Name> Node" scope valid.
package registry

import (
	"slices"

	"github.com/githubnext/gh-prtitle/pkg/logger"
)

var registryLog = logger.New("registry:registry")

// Source is anything that can list component display names.
type Source interface {
	DisplayNames() []string
}

// Static is a fixed list of names.
type Static []string

// DisplayNames returns a copy of the list.
func (s Static) DisplayNames() []string {
	return slices.Clone(s)
}

// Union concatenates several sources, dropping duplicates and keeping the
// first occurrence of each name.
type Union []Source

// DisplayNames queries every source on each call.
func (u Union) DisplayNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, src := range u {
		if src == nil {
			continue
		}
		for _, name := range src.DisplayNames() {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	registryLog.Printf("Union resolved %d names from %d sources", len(names), len(u))
	return names
}
