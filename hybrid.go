// SPDX-License-Identifier: GPL-3.0-or-later

package conncfg

import "context"

// NewHybrid pairs a finalized [Kind] with a runtime-polymorphic [Action].
func NewHybrid(kind Kind, action Action) *Hybrid {
	return &Hybrid{kind: kind, action: action}
}

// Hybrid combines closed structural data (which connection) with an
// open behavioral handle (what to do with it).
//
// The kind is owned by value and fixed for the lifetime of the Hybrid.
// The action is held as an erased [Action] interface value: its
// concrete type is resolved at call time, so any current or future
// implementation works through the same calling convention.
type Hybrid struct {
	kind   Kind
	action Action
}

// Kind returns the connection kind.
func (h *Hybrid) Kind() Kind {
	return h.kind
}

// Describe renders the kind via [Describe]. The result depends only on
// the kind, never on the attached action.
func (h *Hybrid) Describe() string {
	return Describe(h.kind)
}

// Run executes the attached action and relays its result verbatim.
// Hybrid does not interpret or recover from action failures.
func (h *Hybrid) Run(ctx context.Context) error {
	return h.action.Execute(ctx)
}
