package main

import (
	"log/slog"
	"os"

	"github.com/hsd-hub/ngo-explorer/cmd/explorer/cli"
	"github.com/hsd-hub/ngo-explorer/internal/app"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
