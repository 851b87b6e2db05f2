package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateStyle(t *testing.T) {
	// Styles themselves are not comparable in a meaningful way; check that
	// every known state produces some rendering of its own text.
	for _, state := range []string{StatePending, StateInstalled, StateIncompatible, "unknown"} {
		t.Run(state, func(t *testing.T) {
			rendered := StateStyle(state).Render(state)
			assert.Contains(t, rendered, state)
		})
	}
}

func TestFormatComponentLine(t *testing.T) {
	t.Run("contains name and state", func(t *testing.T) {
		line := FormatComponentLine("Runtime (linux / x86_64)", StatePending)
		assert.Contains(t, line, "Runtime (linux / x86_64)")
		assert.Contains(t, line, StatePending)
		assert.Contains(t, line, "c:")
	})

	t.Run("long names keep a minimum gap", func(t *testing.T) {
		long := "A component with a description well past the column width"
		line := FormatComponentLine(long, StateInstalled)
		assert.Contains(t, line, long)
		assert.Contains(t, line, "  ")
	})
}

func TestFormatTarget(t *testing.T) {
	assert.Contains(t, FormatTarget("linux", "x86_64"), "linux/x86_64")
}

func TestFormatCheckmark(t *testing.T) {
	msg := FormatCheckmark("Nothing to install")
	assert.Contains(t, msg, "✔")
	assert.Contains(t, msg, "Nothing to install")
}
