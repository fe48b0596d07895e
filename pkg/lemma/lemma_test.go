//go:build !integration

package lemma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseForm(t *testing.T) {
	l, err := New()
	require.NoError(t, err, "English dictionary should load")

	tests := []struct {
		name     string
		word     string
		expected string
	}{
		{"present tense is its own base form", "add", "add"},
		{"gerund reduces to base", "abducting", "abduct"},
		{"case-only difference keeps input", "Add", "Add"},
		{"capitalized gerund reduces to lowercase base", "Abducting", "abduct"},
		{"unknown word unchanged", "xyzzyqq", "xyzzyqq"},
		{"empty word", "", ""},
		{"comparative is not reduced", "better", "better"},
		{"latin plural is not reduced", "data", "data"},
		{"docs is not reduced", "docs", "docs"},
		{"capitalized irregular plural is not reduced", "Axes", "Axes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, l.BaseForm(tt.word))
		})
	}
}

func TestSharedBaseForm(t *testing.T) {
	assert.Equal(t, "abduct", BaseForm("abducting"))
	assert.Equal(t, "add", BaseForm("add"))
}
