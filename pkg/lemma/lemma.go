// Package lemma reduces English words to their dictionary base form.
package lemma

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/githubnext/gh-prtitle/pkg/logger"
)

var lemmaLog = logger.New("lemma:lemma")

// Lemmatizer wraps a golem English dictionary.
type Lemmatizer struct {
	golem *golem.Lemmatizer
}

// New loads the English dictionary. Loading takes a noticeable moment, so
// share the result.
func New() (*Lemmatizer, error) {
	lemmaLog.Print("Loading English lemma dictionary")
	g, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load English lemma dictionary: %w", err)
	}
	return &Lemmatizer{golem: g}, nil
}

// nonVerbForms are words the dictionary reduces through a non-verb part of
// speech (comparatives, irregular plurals). They are their own verb base form.
var nonVerbForms = map[string]bool{
	"better": true, "best": true, "worse": true, "worst": true,
	"more": true, "most": true, "less": true, "least": true,
	"further": true, "farther": true,
	"data": true, "docs": true, "axes": true, "indices": true,
	"criteria": true, "schemata": true, "media": true, "analyses": true,
	"bases": true, "matrices": true, "vertices": true, "appendices": true,
}

// BaseForm returns the verb lemma of word. The dictionary is
// case-insensitive, so a lemma that only differs from word by case is
// reported as word itself. Unknown words and nonVerbForms come back unchanged.
func (l *Lemmatizer) BaseForm(word string) string {
	if word == "" || nonVerbForms[strings.ToLower(word)] {
		return word
	}
	base := l.golem.Lemma(word)
	if strings.EqualFold(base, word) {
		return word
	}
	lemmaLog.Printf("Reduced %q to %q", word, base)
	return base
}

var shared = sync.OnceValues(New)

// BaseForm reduces word with a lazily loaded shared Lemmatizer. If the
// dictionary fails to load, every word is its own base form.
func BaseForm(word string) string {
	l, err := shared()
	if err != nil {
		lemmaLog.Printf("Lemmatizer unavailable: %v", err)
		return word
	}
	return l.BaseForm(word)
}
