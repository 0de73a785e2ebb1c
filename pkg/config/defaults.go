package config

import (
	"fmt"

	"fix-layout/internal/rules"
	"fix-layout/internal/wm"
	"fix-layout/pkg/core"
)

// Flags is the single-rule configuration given on the command line.
type Flags struct {
	NameRegex       string
	ClassRegex      string
	ActiveCommand   string
	UnactiveCommand string
}

// IsSet reports whether any single-rule flag was given.
func (f Flags) IsSet() bool {
	return f.NameRegex != "" || f.ClassRegex != "" || f.ActiveCommand != "" || f.UnactiveCommand != ""
}

// FromFlags builds a configuration holding exactly one rule.
func FromFlags(f Flags, log core.Logger) (*Config, error) {
	log.Debug("Creating configuration from flags")

	spec := rules.Spec{
		OnMatch:   f.ActiveCommand,
		OnUnmatch: f.UnactiveCommand,
	}
	switch {
	case f.NameRegex != "" && f.ClassRegex != "":
		return nil, fmt.Errorf("name regex and class regex are mutually exclusive")
	case f.ClassRegex != "":
		spec.Pattern = f.ClassRegex
		spec.Attribute = wm.Class
	case f.NameRegex != "":
		spec.Pattern = f.NameRegex
		spec.Attribute = wm.Name
	default:
		return nil, fmt.Errorf("either a name regex or a class regex is required")
	}

	c := &Config{
		specs:  []rules.Spec{spec},
		source: SourceFlags,
		log:    log,
	}
	if err := c.compile(); err != nil {
		return nil, err
	}

	log.Info("Created configuration from flags",
		"attribute", spec.Attribute.String(),
		"pattern", spec.Pattern)
	return c, nil
}
