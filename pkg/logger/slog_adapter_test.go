//go:build !integration

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogHandler(t *testing.T) {
	withDebug(t, "*")
	log := NewSlogLogger("cli:batch")

	out := captureOutput(t, func() {
		log.With("count", 2).Info("validated titles", "valid", false)
	})

	assert.Contains(t, out, "cli:batch")
	assert.Contains(t, out, "[INFO] validated titles")
	assert.Contains(t, out, "count=2")
	assert.Contains(t, out, "valid=false")
}

func TestSlogHandler_Disabled(t *testing.T) {
	withDebug(t, "")
	log := NewSlogLogger("cli:batch")

	out := captureOutput(t, func() {
		log.Info("hidden")
	})

	assert.Empty(t, out)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("dropped") })
}
