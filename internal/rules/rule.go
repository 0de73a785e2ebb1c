// Package rules classifies the focused window against an ordered set of
// patterns and decides which commands to run.
package rules

import (
	"fmt"
	"regexp"

	"fix-layout/internal/wm"
)

// Rule pairs a pattern on one window attribute with the commands to run
// when the focused window matches or does not match. An empty command
// means nothing runs for that outcome.
type Rule struct {
	Pattern   *regexp.Regexp
	Attribute wm.AttributeKind
	OnMatch   string
	OnUnmatch string
}

// Spec is the uncompiled form of a Rule, as read from flags or a config file.
type Spec struct {
	Pattern   string
	Attribute wm.AttributeKind
	OnMatch   string
	OnUnmatch string
}

// Compile compiles a rule pattern.
func Compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}

// Matches reports whether the pattern matches any segment of v.
func (r Rule) Matches(v wm.AttributeValue) bool {
	for _, s := range v.Segments() {
		if r.Pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// Command returns the command selected by the match outcome.
func (r Rule) Command(matched bool) string {
	if matched {
		return r.OnMatch
	}
	return r.OnUnmatch
}
