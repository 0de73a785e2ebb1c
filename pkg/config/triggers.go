package config

import (
	"fmt"

	"fix-layout/internal/rules"
)

// compile compiles the rule patterns into the RuleSet.
func (c *Config) compile() error {
	log := c.log
	log.Debug("Compiling rule patterns", "rule_count", len(c.specs))

	if len(c.specs) == 0 {
		return fmt.Errorf("no rules configured")
	}

	for i, s := range c.specs {
		if s.OnMatch == "" && s.OnUnmatch == "" {
			log.Warn("Rule has no commands and will never dispatch", "rule", i, "pattern", s.Pattern)
		}
		log.Debug("Rule", "rule", i,
			"pattern", s.Pattern,
			"attribute", s.Attribute.String(),
			"on_match", s.OnMatch,
			"on_unmatch", s.OnUnmatch)
	}

	rs, err := rules.New(c.specs)
	if err != nil {
		log.Error("Failed to compile rule pattern", err)
		return err
	}
	c.ruleSet = rs

	log.Debug("All rule patterns compiled successfully", "compiled_count", rs.Len())
	return nil
}
