package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"fix-layout/internal/rules"
	"fix-layout/internal/wm"
	"fix-layout/pkg/core"
)

// fileEntry accepts both the long and the short key names.
type fileEntry struct {
	Regex           *string `toml:"regex"`
	TargetAttribute string  `toml:"target_attribute"`
	Attribute       string  `toml:"attribute"`
	ActiveCommand   string  `toml:"active_command"`
	Active          string  `toml:"active"`
	UnactiveCommand string  `toml:"unactive_command"`
	Unactive        string  `toml:"unactive"`
}

type fileConfig struct {
	Backend string      `toml:"backend"`
	Entries []fileEntry `toml:"entries"`
}

// LoadFromFile loads the configuration from a TOML file.
func LoadFromFile(path string, log core.Logger) (*Config, error) {
	log.Debug("Loading configuration from file", "path", path)

	var temp fileConfig
	md, err := toml.DecodeFile(path, &temp)
	if err != nil {
		log.Error("Failed to parse config file", err, "path", path)
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}
	log.Debug("Config TOML parsed successfully", "entry_count", len(temp.Entries))

	c := &Config{
		backend: temp.Backend,
		source:  path,
		log:     log,
	}
	for i, e := range temp.Entries {
		spec, err := e.spec()
		if err != nil {
			return nil, fmt.Errorf("config %s: entry %d: %w", path, i, err)
		}
		c.specs = append(c.specs, spec)
	}

	if err := c.compile(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (e fileEntry) spec() (rules.Spec, error) {
	if e.Regex == nil {
		return rules.Spec{}, fmt.Errorf("missing regex")
	}

	attr, err := pick("target_attribute", e.TargetAttribute, "attribute", e.Attribute)
	if err != nil {
		return rules.Spec{}, err
	}
	if attr == "" {
		return rules.Spec{}, fmt.Errorf("missing target_attribute")
	}
	kind, err := wm.ParseAttributeKind(attr)
	if err != nil {
		return rules.Spec{}, err
	}

	active, err := pick("active_command", e.ActiveCommand, "active", e.Active)
	if err != nil {
		return rules.Spec{}, err
	}
	unactive, err := pick("unactive_command", e.UnactiveCommand, "unactive", e.Unactive)
	if err != nil {
		return rules.Spec{}, err
	}

	return rules.Spec{
		Pattern:   *e.Regex,
		Attribute: kind,
		OnMatch:   active,
		OnUnmatch: unactive,
	}, nil
}

// pick resolves a key and its alias, rejecting entries that set both.
func pick(key, value, alias, aliasValue string) (string, error) {
	if value != "" && aliasValue != "" {
		return "", fmt.Errorf("both %s and its alias %s are set", key, alias)
	}
	if value != "" {
		return value, nil
	}
	return aliasValue, nil
}
