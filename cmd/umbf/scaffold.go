package main

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/ashgrove-tools/umbf/pkg/umbf"
)

func scaffoldCmd() *cli.Command {
	var (
		output      string
		objectName  string
		vendorSign  int
		specVersion int
	)

	return &cli.Command{
		Name:  "scaffold",
		Usage: "Write a minimal scene file with one freshly-generated object ID",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "path to write the scaffolded .umb file",
				Destination: &output,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "name",
				Usage:       "name for the scaffolded root object",
				Value:       "root",
				Destination: &objectName,
			},
			&cli.IntFlag{
				Name:        "vendor-sign",
				Usage:       "24-bit vendor signature to stamp the header with",
				Destination: &vendorSign,
			},
			&cli.IntFlag{
				Name:        "spec-version",
				Usage:       "24-bit spec version to stamp the header with",
				Destination: &specVersion,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := uuidToObjectID(uuid.New())

			file := &umbf.File{
				Header: umbf.Header{
					VendorSign:  uint32(vendorSign),
					TypeSign:    umbf.TypeScene,
					SpecVersion: uint32(specVersion),
				},
				Blocks: []umbf.Block{
					&umbf.Scene{
						Objects: []umbf.Object{{ID: id, Name: objectName}},
					},
				},
			}

			if err := file.Save(output, nil, nil, nil); err != nil {
				return fmt.Errorf("scaffold: %w", err)
			}
			fmt.Printf("wrote %s (object id=%d)\n", output, id)
			return nil
		},
	}
}

// uuidToObjectID folds a uuid.UUID's 16 bytes down to a uint64 object ID
// by XORing its two halves — scene object IDs are u64 on the wire, a uuid
// is 128 bits.
func uuidToObjectID(id uuid.UUID) uint64 {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])
	return hi ^ lo
}
