package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"farmstand/pkg/app"
)

// main defaults to the serve command so process managers can start the binary without arguments.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"serve"}
	}
	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "farmstand: %v\n", err)
		stop()
		os.Exit(1)
	}
}
