// Package main is the entry point for the anagram CLI.
package main

import (
	"os"

	"github.com/f3rmion/anagram/cmd/anagram/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
