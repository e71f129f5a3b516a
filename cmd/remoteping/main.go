// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Ctrl-C stops waiting for the ping server; reports still pending are
	// then not rendered anymore.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// No fmt.Println(err) here, as cobra already reports the error and it
	// would otherwise be rendered twice, see also:
	// https://github.com/spf13/cobra/issues/304
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		osExit(1)
	}
}

// For CLI unit tests...
var osExit = os.Exit
