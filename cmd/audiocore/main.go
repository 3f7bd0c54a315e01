package main

import (
	"os"

	"github.com/Skryldev/audio-core/internal/cli"
	"github.com/Skryldev/audio-core/internal/output"
)

func main() {
	deps := &cli.Dependencies{}
	if err := cli.NewRootCmd(deps).Execute(); err != nil {
		output.NewFormatter(os.Stderr).Error(err.Error())
		os.Exit(1)
	}
}
