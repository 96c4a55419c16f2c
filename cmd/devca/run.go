// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/devca/src/cli"
	"github.com/H0llyW00dzZ/devca/src/logger"
	verpkg "github.com/H0llyW00dzZ/devca/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	os.Exit(run(context.Background(), os.Stderr))
}

// run executes the CLI under a signal-aware context and returns the exit code.
// Failures are reported on stderr as a single "Error: ..." line.
func run(ctx context.Context, stderr io.Writer) int {
	// Set up signal handling; commands check the context before writing files
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, version, logger.NewCLILogger()); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitCode(err)
	}
	return cli.ExitOK
}
