// SPDX-License-Identifier: GPL-3.0-or-later

package conncfg

import "github.com/bassosimone/runtimex"

// NewTCP builds a [TCP] kind through the owned-builder chain.
//
// Equivalent to NewBuilder().TCP().Host(host).Port(port).Finalize().
// The accepted shapes are exactly [NewTCP], [NewUDP], and [NewLocal];
// other field combinations go through a builder or [New].
func NewTCP(host string, port int) (Kind, error) {
	return NewBuilder().TCP().Host(host).Port(port).Finalize()
}

// NewUDP builds a [UDP] kind through the owned-builder chain.
func NewUDP(host string, port int) (Kind, error) {
	return NewBuilder().UDP().Host(host).Port(port).Finalize()
}

// NewLocal builds the [Local] kind. Local construction cannot fail, so
// no error is returned.
func NewLocal() Kind {
	kind, err := NewBuilder().Local().Finalize()
	runtimex.Assert(err == nil)
	return kind
}
