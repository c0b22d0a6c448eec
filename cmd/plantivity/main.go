// Command plantivity runs the task tracker, either as a one-shot CLI command
// or as the interactive dashboard when no command is given.
//
// SIGINT or SIGTERM cancels the run's context. A run that fails after being
// interrupted exits 130; any other failure prints the error and exits 1.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nibzard/plantivity-go/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.Run(ctx, os.Args[1:])
	if err == nil {
		return
	}
	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "\nInterrupted")
		stop()
		os.Exit(130)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	stop()
	os.Exit(1)
}
