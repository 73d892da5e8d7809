package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/0tsuro/SparkCar/internal/preview"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := preview.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
