// Package main is the entry point for the plantctl CLI client.
package main

import (
	"github.com/donaldgifford/plant-telemetry/cmd/plantctl/cmd"
)

func main() {
	cmd.Execute()
}
