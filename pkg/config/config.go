package config

import (
	"fix-layout/internal/rules"
	"fix-layout/pkg/core"
)

// SourceFlags is reported by Source for configs built from command line flags.
const SourceFlags = "flags"

// Config holds the application configuration.
type Config struct {
	backend string
	specs   []rules.Spec
	source  string

	// Internal fields
	ruleSet rules.RuleSet
	log     core.Logger
}

// GetBackend returns the configured backend name, "auto" when unset.
func (c *Config) GetBackend() string {
	if c.backend == "" {
		return "auto"
	}
	return c.backend
}

// SetBackend overrides the backend, e.g. from a command line flag.
func (c *Config) SetBackend(name string) {
	if name != "" {
		c.backend = name
	}
}

// Source returns the config file path, or SourceFlags.
func (c *Config) Source() string {
	return c.source
}

// GetSpecs returns a copy of the uncompiled rules.
func (c *Config) GetSpecs() []rules.Spec {
	return append([]rules.Spec(nil), c.specs...)
}

// RuleSet returns the compiled rules.
func (c *Config) RuleSet() rules.RuleSet {
	return c.ruleSet
}
