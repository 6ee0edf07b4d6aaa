package config

// Config is the root configuration for a loaded plugin module.
type Config struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// LoggingConfig controls where diagnostics go.
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`  // "trace" | "debug" | "info" | "warn" | "error" | "silent"
	Output     string `yaml:"output,omitempty"` // "stderr" | "host" | "both"
	Style      string `yaml:"style,omitempty"`  // "pretty" | "json"
	EchoStderr *bool  `yaml:"echoStderr,omitempty"`
}

// Echo reports whether failure lines are mirrored to stderr.
func (l LoggingConfig) Echo() bool {
	return l.EchoStderr == nil || *l.EchoStderr
}
