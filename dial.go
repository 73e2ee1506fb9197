// SPDX-License-Identifier: GPL-3.0-or-later

package conncfg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/bassosimone/safeconn"
)

// Dialer abstracts the [*net.Dialer] behavior.
//
// By making [*DialFunc] depend on an abstract implementation we allow
// for unit testing and for using alternative dialers.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// ErrNotDialable is returned by [*DialFunc] when the kind carries no
// network address. Only [Local] is affected: a loopback/in-process
// connection is created by the host program, not dialed.
var ErrNotDialable = errors.New("connection kind is not dialable")

// NewDialFunc returns a new [*DialFunc] with the default dialer.
//
// The cfg argument contains the common configuration for conncfg operations.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewDialFunc(cfg *Config, logger SLogger) *DialFunc {
	return &DialFunc{
		Dialer:        cfg.Dialer,
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// DialFunc dials the endpoint described by a [Kind].
//
// Returns either a valid [net.Conn] or an error, never both.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type DialFunc struct {
	// Dialer is the [Dialer] to use.
	//
	// Set by [NewDialFunc] from [Config.Dialer].
	Dialer Dialer

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewDialFunc] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or
	// custom logging).
	//
	// Set by [NewDialFunc] to the user-provided logger.
	Logger SLogger

	// TimeNow is the function to get the current time (configurable
	// for testing).
	//
	// Set by [NewDialFunc] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ Func[Kind, net.Conn] = &DialFunc{}

// Call invokes the [*DialFunc] to dial the given [Kind].
//
// The kind is matched exhaustively: [TCP] and [UDP] dial through the
// configured [Dialer]; [Local] fails with [ErrNotDialable].
func (op *DialFunc) Call(ctx context.Context, kind Kind) (net.Conn, error) {
	network, address, err := dialTarget(kind)
	if err != nil {
		return nil, err
	}
	t0 := op.TimeNow()
	deadline, _ := ctx.Deadline()
	op.logDialStart(network, address, t0, deadline)
	conn, err := op.Dialer.DialContext(ctx, network, address)
	op.logDialDone(network, address, t0, deadline, conn, err)
	return conn, err
}

// dialTarget maps a kind to the network and address to dial.
func dialTarget(kind Kind) (string, string, error) {
	type target struct {
		network string
		address string
		err     error
	}
	res := Match(kind,
		func(k TCP) target {
			return target{
				network: networkTCP,
				address: net.JoinHostPort(k.Host, strconv.Itoa(int(k.Port))),
			}
		},
		func(k UDP) target {
			return target{
				network: networkUDP,
				address: net.JoinHostPort(k.Host, strconv.Itoa(int(k.Port))),
			}
		},
		func(Local) target {
			return target{
				err: fmt.Errorf("%w: local kinds are created in process", ErrNotDialable),
			}
		},
	)
	return res.network, res.address, res.err
}

func (op *DialFunc) logDialStart(network, address string, t0 time.Time, deadline time.Time) {
	op.Logger.Info(
		"dialStart",
		slog.Time("deadline", deadline),
		slog.String("protocol", network),
		slog.String("remoteAddr", address),
		slog.Time("t", t0),
	)
}

func (op *DialFunc) logDialDone(
	network, address string, t0 time.Time, deadline time.Time, conn net.Conn, err error) {
	op.Logger.Info(
		"dialDone",
		slog.Time("deadline", deadline),
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.String("localAddr", safeconn.LocalAddr(conn)),
		slog.String("protocol", network),
		slog.String("remoteAddr", address),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
	)
}
