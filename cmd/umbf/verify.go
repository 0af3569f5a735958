package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/ashgrove-tools/umbf/pkg/umbf"
)

func verifyCmd() *cli.Command {
	var (
		path     string
		expected string
	)

	return &cli.Command{
		Name:  "verify",
		Usage: "Decode a UMBF file and check its computed checksum against an expected value",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to a UMBF file",
				Destination: &path,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "expected-checksum",
				Usage:       "expected CRC-32 in hex, e.g. 0xDEADBEEF (omit to just print the computed checksum)",
				Destination: &expected,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file, err := umbf.ReadFromDisk(path, nil, nil, nil, log)
			if err != nil {
				return fmt.Errorf("verify: %w", err)
			}

			if expected == "" {
				fmt.Printf("checksum: 0x%08X\n", file.Checksum)
				return nil
			}

			want, err := strconv.ParseUint(trimHexPrefix(expected), 16, 32)
			if err != nil {
				return fmt.Errorf("verify: parse expected checksum %q: %w", expected, err)
			}
			if uint32(want) != file.Checksum {
				return fmt.Errorf("verify: checksum mismatch: computed 0x%08X, expected 0x%08X", file.Checksum, uint32(want))
			}
			fmt.Printf("ok: checksum 0x%08X matches\n", file.Checksum)
			return nil
		},
	}
}

func trimHexPrefix(s string) string {
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}
	return s
}
