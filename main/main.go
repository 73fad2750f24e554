/*
Ever (civil time on a millisecond offset)

Copyright (c) 2024-present JIANG Tingwei.
All rights reserved.

This source code is licensed in accordance with the terms specified in
the LICENSE file found in the root directory of this source tree.
*/
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
)

/***** FUNCTION ********************************/

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := Load(ctx)

	if err != nil {
		InitLogger(LogConfig{})
		slog.Error("error in the environment", "error", err)
		os.Exit(1)
	}

	if err = newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

/***********************************************/
