// SPDX-License-Identifier: GPL-3.0-or-later

package conncfg_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/bassosimone/conncfg"
	"github.com/bassosimone/netstub"
	"github.com/bassosimone/runtimex"
)

// This example shows how to compose a pipeline that injects a
// configuration and dials it. The dialer is stubbed out so the example
// is deterministic; drop the stub to dial for real.
func Example_dialPipeline() {
	// Create context with overall timeout for the entire operation.
	// Caller controls timeout externally - conncfg never modifies the context.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := conncfg.NewConfig()
	cfg.Dialer = &netstub.FuncDialer{
		DialContextFunc: func(ctx context.Context, network, address string) (net.Conn, error) {
			fmt.Printf("dialing %s://%s\n", network, address)
			client, server := net.Pipe()
			defer server.Close()
			return client, nil
		},
	}

	// Build the configuration through the owned-builder chain.
	kind := runtimex.PanicOnError1(
		conncfg.NewBuilder().TCP().Host("93.184.216.34").Port(443).Finalize())

	// Compose configuration injection with dialing.
	kindOp := conncfg.NewKindFunc(kind)
	dialOp := conncfg.NewDialFunc(cfg, conncfg.DefaultSLogger())
	pipeline := conncfg.Compose2(kindOp, dialOp)

	conn := runtimex.PanicOnError1(pipeline.Call(ctx, conncfg.Unit{}))
	defer conn.Close()

	// Local kinds are created in process, never dialed.
	_, err := dialOp.Call(ctx, conncfg.Local{})
	fmt.Println(errors.Is(err, conncfg.ErrNotDialable))

	// Output:
	// dialing tcp://93.184.216.34:443
	// true
}
