// SPDX-License-Identifier: GPL-3.0-or-later

package conncfg

// NewTemplate returns an empty [Template].
func NewTemplate() Template {
	return Template{}
}

// Template is the persistent counterpart of [*Builder].
//
// Every step takes the template by value and returns a new independent
// value, leaving the receiver unchanged. A base template holding shared
// fields can therefore be kept alive and used to derive many distinct
// configurations, each overriding one or two fields.
//
// Because no operation mutates shared state, a Template is safe to
// share across concurrent readers without synchronization.
type Template struct {
	settings settings
}

// TCP returns a copy of the template with the stream kind selected.
func (t Template) TCP() Template {
	t.settings.network = networkTCP
	return t
}

// UDP returns a copy of the template with the datagram kind selected.
func (t Template) UDP() Template {
	t.settings.network = networkUDP
	return t
}

// Local returns a copy of the template with the loopback kind selected.
func (t Template) Local() Template {
	t.settings.network = networkLocal
	return t
}

// Host returns a copy of the template with the host set.
func (t Template) Host(host string) Template {
	t.settings.host = host
	t.settings.hasHost = true
	return t
}

// Port returns a copy of the template with the port set.
func (t Template) Port(port int) Template {
	t.settings.port = port
	t.settings.hasPort = true
	return t
}

// Finalize validates the accumulated fields and produces a [Kind].
//
// Finalize reads the template without consuming it: the same template
// may be finalized any number of times, yielding equal kinds each time.
// Validation rules are the same as for [*Builder.Finalize].
func (t Template) Finalize() (Kind, error) {
	return t.settings.finalize()
}
