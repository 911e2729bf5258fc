package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yungbote/studytrack-backend/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init app: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := a.Run(ctx, ":"+a.Cfg.Port)
	if runErr != nil {
		a.Log.Error("Server stopped", "error", runErr)
	}
	a.Close()
	if runErr != nil {
		os.Exit(1)
	}
}
