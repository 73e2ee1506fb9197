// SPDX-License-Identifier: GPL-3.0-or-later

package conncfg

import (
	"context"
	"log/slog"
	"time"
)

// Action is the capability of performing a single sendable operation.
//
// The contract defines no errors of its own: whatever Execute returns
// is specific to the concrete implementation and must be surfaced to
// the caller as a result value, never swallowed.
//
// An Action can be consumed two ways: bound as a compile-time generic
// parameter through [*ActionRunner] (static dispatch, one instantiation
// per concrete type), or held as an interface value, for example inside
// a [*Hybrid] (dynamic dispatch, one indirect call).
type Action interface {
	Execute(ctx context.Context) error
}

// ActionFunc adapts a function to the [Action] interface.
//
// Use this to create ad-hoc actions from closures:
//
//	action := ActionFunc(func(ctx context.Context) error { return nil })
type ActionFunc func(ctx context.Context) error

var _ Action = ActionFunc(nil)

// Execute implements [Action].
func (f ActionFunc) Execute(ctx context.Context) error {
	return f(ctx)
}

// NewActionRunner returns a new [*ActionRunner] wrapping the given action.
//
// The cfg argument contains the common configuration for conncfg operations.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewActionRunner[A Action](cfg *Config, action A, logger SLogger) *ActionRunner[A] {
	return &ActionRunner[A]{
		Action:        action,
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// ActionRunner executes a concrete [Action] with structured logging.
//
// The type parameter fixes the concrete action type at compile time,
// so each distinct action type gets its own monomorphized runner and
// Execute is dispatched without indirection. For runtime-substitutable
// behavior hold an [Action] interface value instead (see [*Hybrid]).
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Run].
type ActionRunner[A Action] struct {
	// Action is the wrapped action.
	//
	// Set by [NewActionRunner] to the user-provided action.
	Action A

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewActionRunner] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or
	// custom logging).
	//
	// Set by [NewActionRunner] to the user-provided logger.
	Logger SLogger

	// TimeNow is the function to get the current time (configurable
	// for testing).
	//
	// Set by [NewActionRunner] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ Func[Unit, Unit] = &ActionRunner[ActionFunc]{}

// Run executes the wrapped action, emitting actionStart and actionDone
// log events, and returns the action's error verbatim.
func (r *ActionRunner[A]) Run(ctx context.Context) error {
	t0 := r.TimeNow()
	r.logActionStart(t0)
	err := r.Action.Execute(ctx)
	r.logActionDone(t0, err)
	return err
}

// Call implements [Func], allowing the runner to appear in pipelines.
func (r *ActionRunner[A]) Call(ctx context.Context, _ Unit) (Unit, error) {
	return Unit{}, r.Run(ctx)
}

func (r *ActionRunner[A]) logActionStart(t0 time.Time) {
	r.Logger.Info(
		"actionStart",
		slog.Time("t", t0),
	)
}

func (r *ActionRunner[A]) logActionDone(t0 time.Time, err error) {
	r.Logger.Info(
		"actionDone",
		slog.Any("err", err),
		slog.String("errClass", r.ErrClassifier.Classify(err)),
		slog.Time("t0", t0),
		slog.Time("t", r.TimeNow()),
	)
}
