// Command korapay is a command line client for Korapay's merchant API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pterm/pterm"

	"github.com/gray-adeyi/korapay-cli/internal/app"
	"github.com/gray-adeyi/korapay-cli/internal/pipeline"
)

// version is set at build time.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := app.New(app.Options{Version: version})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := a.Execute(ctx, os.Args[1:]); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(a.MaskError(err))
		return pipeline.ExitCode(err)
	}
	return 0
}
