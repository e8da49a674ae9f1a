// Command wayfarer runs route and game queries from the command line.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/wayfarer/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
