// Package main is the entry point for the lineup application.
package main

import (
	"github.com/lineup-cli/lineup/cmd"
	"github.com/lineup-cli/lineup/config"
	"github.com/lineup-cli/lineup/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
