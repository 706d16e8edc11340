// Package main is the entry point for the plant-telemetry server.
package main

import (
	"os"

	"github.com/donaldgifford/plant-telemetry/cmd/plant-telemetry/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
