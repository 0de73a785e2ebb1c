// Package dispatch drives the wait, evaluate and run cycle.
package dispatch

import (
	"fmt"

	"fix-layout/internal/rules"
	"fix-layout/internal/wm"
	"fix-layout/pkg/core"
)

// Loop owns the backend for its whole lifetime. It is not safe for
// concurrent use.
type Loop struct {
	Backend wm.Backend
	Rules   rules.RuleSet
	Runner  Runner
	Log     core.Logger
	// Initial runs one pass before the first wait so the window focused at
	// startup is classified too.
	Initial bool
}

// Run dispatches after every focus change. It only returns when the
// backend connection is gone.
func (l *Loop) Run() error {
	l.Log.Info("Watching focused window",
		"backend", l.Backend.Name(),
		"rule_count", l.Rules.Len())

	if l.Initial {
		l.Step()
	}
	for {
		if err := l.Backend.WaitForFocusChange(); err != nil {
			return fmt.Errorf("waiting for focus change: %w", err)
		}
		l.Step()
	}
}

// Step runs a single evaluation pass and dispatches the selected commands
// in rule order.
func (l *Loop) Step() []rules.Action {
	actions := l.Rules.Evaluate(l.Backend)
	for _, a := range actions {
		l.Log.Debug("Dispatching command",
			"rule", a.Rule,
			"matched", a.Matched,
			"command", a.Command)
		l.Runner.Run(a.Command)
	}
	return actions
}
