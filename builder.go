// SPDX-License-Identifier: GPL-3.0-or-later

package conncfg

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned by finalize operations when a
// required field is missing or a field value is outside its domain.
//
// Returned errors wrap this sentinel with detail; test with [errors.Is].
var ErrInvalidConfiguration = errors.New("invalid connection configuration")

// ErrUseAfterFinalize is returned when a [*Builder] is finalized a
// second time. A finalized builder is expended and cannot be revived.
var ErrUseAfterFinalize = errors.New("builder used after finalize")

// Dial networks for the closed kind set.
const (
	networkTCP   = "tcp"
	networkUDP   = "udp"
	networkLocal = "local"
)

// settings is the field accumulator shared by [*Builder] and [Template].
//
// Intermediate states are legitimately incomplete: validation happens
// only in finalize, never when a field is set.
type settings struct {
	network string
	host    string
	port    int
	hasHost bool
	hasPort bool
}

// finalize validates the accumulated fields and produces a [Kind].
func (s settings) finalize() (Kind, error) {
	switch s.network {
	case networkTCP, networkUDP:
		if !s.hasHost || s.host == "" {
			return nil, fmt.Errorf("%w: %s requires a non-empty host", ErrInvalidConfiguration, s.network)
		}
		if !s.hasPort {
			return nil, fmt.Errorf("%w: %s requires a port", ErrInvalidConfiguration, s.network)
		}
		if s.port < 1 || s.port > 65535 {
			return nil, fmt.Errorf("%w: port %d is outside [1, 65535]", ErrInvalidConfiguration, s.port)
		}
		if s.network == networkTCP {
			return TCP{Host: s.host, Port: uint16(s.port)}, nil
		}
		return UDP{Host: s.host, Port: uint16(s.port)}, nil

	case networkLocal:
		// Pending host/port fields are ignored: Local carries no
		// network parameters and cannot fail validation.
		return Local{}, nil

	default:
		return nil, fmt.Errorf("%w: no connection kind selected", ErrInvalidConfiguration)
	}
}

// NewBuilder returns an empty [*Builder].
func NewBuilder() *Builder {
	return &Builder{}
}

// Builder accumulates connection fields step by step and is consumed by
// [*Builder.Finalize].
//
// Steps mutate the builder in place and return the same builder for
// chaining. Go has no move semantics, so single use is enforced at run
// time: once finalized, steps become no-ops and every further Finalize
// returns [ErrUseAfterFinalize].
//
// A Builder is for single-threaded use only; it is not designed for
// sharing. Use [Template] to derive configurations from a shared base.
type Builder struct {
	settings  settings
	finalized bool
}

// TCP selects the stream connection kind.
func (b *Builder) TCP() *Builder {
	if !b.finalized {
		b.settings.network = networkTCP
	}
	return b
}

// UDP selects the datagram connection kind.
func (b *Builder) UDP() *Builder {
	if !b.finalized {
		b.settings.network = networkUDP
	}
	return b
}

// Local selects the loopback/in-process connection kind.
func (b *Builder) Local() *Builder {
	if !b.finalized {
		b.settings.network = networkLocal
	}
	return b
}

// Host sets the remote host. Validated at finalize time.
func (b *Builder) Host(host string) *Builder {
	if !b.finalized {
		b.settings.host = host
		b.settings.hasHost = true
	}
	return b
}

// Port sets the remote port. Validated at finalize time.
func (b *Builder) Port(port int) *Builder {
	if !b.finalized {
		b.settings.port = port
		b.settings.hasPort = true
	}
	return b
}

// Finalize validates the accumulated fields and produces a [Kind].
//
// Finalize consumes the builder unconditionally: it never hands the
// builder back alongside an error, so there is exactly one Finalize
// call per construction chain. Failures return an error wrapping
// [ErrInvalidConfiguration]; a second call returns
// [ErrUseAfterFinalize].
func (b *Builder) Finalize() (Kind, error) {
	if b.finalized {
		return nil, ErrUseAfterFinalize
	}
	b.finalized = true
	return b.settings.finalize()
}
