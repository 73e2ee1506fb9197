// SPDX-License-Identifier: GPL-3.0-or-later

// Package conncfg provides composable primitives for describing and
// constructing connection configurations.
//
// # Core Abstraction
//
// The package is built around a closed set of connection shapes:
//
//	type Kind interface { ... sealed ... }
//
// A [Kind] is always exactly one of [TCP], [UDP], or [Local]. The set is
// sealed: no package outside this one can add a variant, which is what
// makes exhaustive case analysis via [Match] safe. Code that branches
// over kinds through [Match] must handle all three shapes; adding a
// variant here forces every call site to be revisited.
//
// # Construction Paths
//
// A [Kind] can be obtained four ways, all validating at finalize time:
//
//   - Direct literal construction of [TCP], [UDP], or [Local], when the
//     caller already holds validated values.
//   - [*Builder]: a single-use accumulator. Steps mutate the builder in
//     place and return it for chaining; [*Builder.Finalize] consumes it.
//     A consumed builder reports [ErrUseAfterFinalize] forever after.
//   - [Template]: the persistent counterpart. Every step returns a new
//     independent value and leaves the receiver unchanged, so one base
//     template can derive many configurations. [Template.Finalize] is
//     read-only and idempotent.
//   - [New] with [Option] values ([WithTCP], [WithHost], [WithPort], ...),
//     the functional-options spelling of the same rules.
//
// [NewTCP], [NewUDP], and [NewLocal] are terse named constructors over
// the builder chain for the common fixed shapes.
//
// # Actions
//
// An [Action] is anything that can be executed:
//
//	type Action interface {
//		Execute(ctx context.Context) error
//	}
//
// Actions are consumable two ways. [*ActionRunner] binds the concrete
// action type as a generic parameter, so dispatch is resolved per
// instantiation at compile time. [*Hybrid] instead holds an erased
// [Action] interface value next to a [Kind], resolving the concrete
// behavior at call time; [*Hybrid.Run] relays the action's error
// verbatim and [*Hybrid.Describe] depends only on the kind.
//
// [LogAction] and [RetryAction] are small concrete implementations.
// [ActionFunc] wraps a closure as an [Action] for ad-hoc behavior.
//
// # Dialing
//
// [*DialFunc] bridges a [Kind] to an actual [net.Conn] through a
// configurable [Dialer]. It implements [Func], the generic operation
// type, so it can be composed with [Compose2], [Compose3], [Apply],
// [ConstFunc], and [NewKindFunc] into pipelines. [Local] kinds have no
// network address and fail with [ErrNotDialable].
//
// # Observability
//
// All primitives support structured logging via [SLogger] (compatible
// with [log/slog]). By default, logging is disabled; set a custom
// [*slog.Logger] to enable it. [*DialFunc] and [*ActionRunner] emit
// Start/Done event pairs carrying t, t0, err, and errClass fields, with
// error classification configurable via [ErrClassifier].
//
// Use [NewSpanID] to generate a unique, time-ordered identifier
// (UUIDv7), then attach it with [*slog.Logger.With] so that all events
// from one operation share the same spanID.
//
// # Timeout and Context Philosophy
//
// This package is context-transparent: operations never modify the
// context they receive. The caller controls timeouts externally via
// [context.WithTimeout] or similar.
//
// # Design Boundaries
//
// This package intentionally stops at configuration and single-shot
// execution. Connection pooling, protocol layers, retry orchestration
// beyond [RetryAction], and persistence are out of scope and belong in
// higher-level packages.
package conncfg
