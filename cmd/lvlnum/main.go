// Package main is the entry point for the lvlnum calculator.
//
// All commands are defined in internal/cli; version is injected at build
// time via -ldflags "-X main.version=...".
package main

import (
	"os"

	"github.com/katalvlaran/lvlnum/internal/cli"
)

var version = "dev"

func main() {
	cli.Version = version
	os.Exit(cli.Execute(cli.NewRootCommand()))
}
