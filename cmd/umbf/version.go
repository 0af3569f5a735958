package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ashgrove-tools/umbf/internal/umbfversion"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build and wire-format version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			info := umbfversion.Resolve()
			fmt.Printf("version:     %s\n", info.Version)
			if info.Commit != "" {
				fmt.Printf("commit:      %s\n", info.Commit)
			}
			if info.BuildTime != "" {
				fmt.Printf("build time:  %s\n", info.BuildTime)
			}
			fmt.Printf("wire format: %d.%d\n", info.WireMajor, info.WireMinor)
			return nil
		},
	}
}
