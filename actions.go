// SPDX-License-Identifier: GPL-3.0-or-later

package conncfg

import "context"

// LogAction is an [Action] that emits a structured log message when
// executed. It never fails.
type LogAction struct {
	// Logger is the [SLogger] to emit the message to.
	Logger SLogger

	// Message is the message to emit.
	Message string
}

var _ Action = LogAction{}

// Execute implements [Action].
func (a LogAction) Execute(ctx context.Context) error {
	a.Logger.Info(a.Message)
	return nil
}

// RetryAction is an [Action] that re-executes a wrapped action until it
// succeeds or the configured number of attempts is exhausted, in which
// case the last error is returned.
//
// RetryAction is context-transparent: it never inspects the context
// itself and relies on the wrapped action to honor cancellation. There
// is no backoff between attempts.
type RetryAction struct {
	// Action is the wrapped action.
	Action Action

	// Attempts is the maximum number of executions. Values below one
	// behave as one.
	Attempts int
}

var _ Action = RetryAction{}

// Execute implements [Action].
func (a RetryAction) Execute(ctx context.Context) error {
	attempts := a.Attempts
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for idx := 0; idx < attempts; idx++ {
		if err = a.Action.Execute(ctx); err == nil {
			return nil
		}
	}
	return err
}
