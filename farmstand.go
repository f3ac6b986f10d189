package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"farmstand/pkg/app"
)

// main lets operators run `go run farmstand.go serve` from the repository root.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "farmstand: %v\n", err)
		stop()
		os.Exit(1)
	}
}
