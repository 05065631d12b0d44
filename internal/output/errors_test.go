package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCLIError(t *testing.T) {
	err := NewCLIError(ExitInputError, "malformed input")
	assert.Equal(t, ExitInputError, err.ExitCode)
	assert.Equal(t, "malformed input", err.Message)
	assert.Empty(t, err.Hint)
}

func TestCLIErrorError(t *testing.T) {
	err := &CLIError{Message: "something broke"}
	assert.Equal(t, "something broke", err.Error())
}

func TestCLIErrorWithHint(t *testing.T) {
	err := NewCLIError(ExitUsage, "bad border")
	result := err.WithHint("Borders are three glyphs, e.g. \"|-+\"")

	// Fluent builder returns same pointer
	assert.Same(t, err, result)
	assert.Equal(t, "Borders are three glyphs, e.g. \"|-+\"", err.Hint)
}

func TestCLIErrorImplementsError(t *testing.T) {
	var err error = NewCLIError(ExitGeneral, "test")
	assert.Equal(t, "test", err.Error())
}
