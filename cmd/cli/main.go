// Package main is the entry point for the meal-benefit CLI.
package main

import (
	"os"

	"meal-benefit/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
