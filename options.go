// SPDX-License-Identifier: GPL-3.0-or-later

package conncfg

// Option configures a connection kind assembled by [New].
//
// Options are applied in order over an empty [Template], so a later
// option overrides an earlier one the same way a later builder step
// overrides an earlier one.
type Option func(*Template)

// New builds a [Kind] by applying options over an empty [Template] and
// finalizing the result. Validation rules are the same as for the
// builders: missing or out-of-range fields yield an error wrapping
// [ErrInvalidConfiguration].
func New(opts ...Option) (Kind, error) {
	template := NewTemplate()
	for _, opt := range opts {
		opt(&template)
	}
	return template.Finalize()
}

// WithTCP selects the stream connection kind.
func WithTCP() Option {
	return func(t *Template) { *t = t.TCP() }
}

// WithUDP selects the datagram connection kind.
func WithUDP() Option {
	return func(t *Template) { *t = t.UDP() }
}

// WithLocal selects the loopback/in-process connection kind.
func WithLocal() Option {
	return func(t *Template) { *t = t.Local() }
}

// WithHost sets the remote host.
func WithHost(host string) Option {
	return func(t *Template) { *t = t.Host(host) }
}

// WithPort sets the remote port.
func WithPort(port int) Option {
	return func(t *Template) { *t = t.Port(port) }
}
