package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ashgrove-tools/umbf/internal/umbflog"
)

var (
	logLevel  string
	logFormat string
	log       umbflog.Logger = umbflog.Discard()
)

func main() {
	app := &cli.Command{
		Name:  "umbf",
		Usage: "Inspect, verify, and scaffold UMBF binary asset containers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "debug, info, warn, or error",
				Value:       "info",
				Destination: &logLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "pretty or text",
				Value:       "pretty",
				Destination: &logFormat,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := umbflog.ParseLevel(logLevel)
			if logFormat == "text" {
				log = umbflog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			} else {
				log = umbflog.Pretty(os.Stderr, level)
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			inspectCmd(),
			verifyCmd(),
			libraryCmd(),
			scaffoldCmd(),
			versionCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
