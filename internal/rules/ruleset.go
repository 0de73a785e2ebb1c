package rules

import (
	"fmt"

	"fix-layout/internal/wm"
)

// AttributeSource is the part of wm.Backend evaluation needs.
type AttributeSource interface {
	Attribute(kind wm.AttributeKind) (wm.AttributeValue, bool)
}

// Action is a command selected by one rule during an evaluation pass.
type Action struct {
	Rule    int
	Matched bool
	Command string
}

// RuleSet is an ordered, immutable list of rules. Rules are independent;
// order only decides the order in which their commands are dispatched.
type RuleSet struct {
	rules []Rule
}

// New compiles specs into a RuleSet.
func New(specs []Spec) (RuleSet, error) {
	rules := make([]Rule, 0, len(specs))
	for i, s := range specs {
		re, err := Compile(s.Pattern)
		if err != nil {
			return RuleSet{}, fmt.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, Rule{
			Pattern:   re,
			Attribute: s.Attribute,
			OnMatch:   s.OnMatch,
			OnUnmatch: s.OnUnmatch,
		})
	}
	return RuleSet{rules: rules}, nil
}

// Of builds a RuleSet from already compiled rules.
func Of(rules ...Rule) RuleSet {
	return RuleSet{rules: append([]Rule(nil), rules...)}
}

func (rs RuleSet) Len() int {
	return len(rs.rules)
}

// Rules returns a copy of the rules.
func (rs RuleSet) Rules() []Rule {
	return append([]Rule(nil), rs.rules...)
}

type lookup struct {
	value wm.AttributeValue
	ok    bool
}

// Evaluate classifies the focused window against every rule and returns
// the selected commands in rule order. Each attribute kind is queried at
// most once per call. A missing attribute counts as a non-match.
func (rs RuleSet) Evaluate(src AttributeSource) []Action {
	seen := make(map[wm.AttributeKind]lookup, 2)
	var actions []Action

	for i, r := range rs.rules {
		l, cached := seen[r.Attribute]
		if !cached {
			l.value, l.ok = src.Attribute(r.Attribute)
			seen[r.Attribute] = l
		}

		matched := l.ok && r.Matches(l.value)
		if cmd := r.Command(matched); cmd != "" {
			actions = append(actions, Action{Rule: i, Matched: matched, Command: cmd})
		}
	}
	return actions
}
