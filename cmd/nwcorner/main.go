// Command nwcorner builds an initial transportation plan with the
// northwest-corner method and animates it in the terminal.
//
// It takes no flags; see internal/config for the NWCORNER_* environment keys.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/nwcorner/internal/app"
	"github.com/katalvlaran/nwcorner/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cfg, err := config.Load()
	if err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "nwcorner: %v\n", err)
		os.Exit(app.ExitFailure)
	}

	code := app.Run(ctx, cfg, app.Options{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr})
	stop()
	os.Exit(code)
}
