package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Empty(t, Validate(&cfg))
}

func TestValidateEmptyIsValid(t *testing.T) {
	assert.Empty(t, Validate(&Config{}))
}

func TestValidateBadValues(t *testing.T) {
	cfg := Config{Logging: LoggingConfig{Level: "loud", Output: "syslog", Style: "xml"}}

	issues := Validate(&cfg)
	require.Len(t, issues, 3)
	assert.Equal(t, "logging.level", issues[0].Path)
	assert.Equal(t, "logging.output", issues[1].Path)
	assert.Equal(t, "logging.style", issues[2].Path)
	assert.Contains(t, issues[0].String(), `got "loud"`)
}
