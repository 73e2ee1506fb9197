// SPDX-License-Identifier: GPL-3.0-or-later

package conncfg

import "fmt"

// Kind is the closed set of connection shapes.
//
// A Kind is always exactly one of [TCP], [UDP], or [Local]. The set is
// sealed by an unexported method, so no other package can add a
// variant. Branch over kinds with [Match], which forces all three
// shapes to be handled.
type Kind interface {
	// sealedKind restricts Kind implementations to this package.
	sealedKind()
}

// TCP is a stream connection to Host:Port.
type TCP struct {
	// Host is the remote host name or address. Never empty in a
	// finalized kind.
	Host string

	// Port is the remote port. Builders reject 0 at finalize time,
	// so a finalized kind always carries a port in [1, 65535].
	Port uint16
}

// UDP is a datagram connection to Host:Port.
//
// Field invariants are the same as for [TCP].
type UDP struct {
	Host string
	Port uint16
}

// Local is a loopback or in-process connection. It carries no network
// parameters and is always valid.
type Local struct{}

func (TCP) sealedKind()   {}
func (UDP) sealedKind()   {}
func (Local) sealedKind() {}

var (
	_ Kind = TCP{}
	_ Kind = UDP{}
	_ Kind = Local{}
)

// Match applies the function corresponding to the concrete shape of
// kind and returns its result.
//
// Because [Kind] is sealed, supplying all three functions is exhaustive
// case analysis: the compiler rejects a call site that omits one, and
// adding a variant to this package breaks every Match call site until
// it handles the new shape.
//
// Match panics with a descriptive message when kind is nil or (through
// unsafe shenanigans) not one of the closed set. No such value can be
// produced by this package.
func Match[T any](kind Kind, tcp func(TCP) T, udp func(UDP) T, local func(Local) T) T {
	switch v := kind.(type) {
	case TCP:
		return tcp(v)
	case UDP:
		return udp(v)
	case Local:
		return local(v)
	default:
		panic(fmt.Sprintf("conncfg: Kind %T is outside the closed TCP/UDP/Local set", kind))
	}
}

// Describe returns a compact textual rendering of the kind, such as
// "tcp://1.1.1.1:443", "udp://8.8.8.8:53", or "local://".
func Describe(kind Kind) string {
	return Match(kind,
		func(k TCP) string { return fmt.Sprintf("tcp://%s:%d", k.Host, k.Port) },
		func(k UDP) string { return fmt.Sprintf("udp://%s:%d", k.Host, k.Port) },
		func(Local) string { return "local://" },
	)
}
