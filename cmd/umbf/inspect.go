package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ashgrove-tools/umbf/pkg/umbf"
)

func inspectCmd() *cli.Command {
	var path string

	return &cli.Command{
		Name:  "inspect",
		Usage: "Print a UMBF file's header and block list",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to a UMBF file",
				Destination: &path,
				Required:    true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file, err := umbf.ReadFromDisk(path, nil, nil, nil, log)
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}

			h := file.Header
			fmt.Printf("vendor_sign:    0x%06X\n", h.VendorSign)
			fmt.Printf("vendor_version: 0x%06X\n", h.VendorVersion)
			fmt.Printf("type_sign:      0x%04X (%s)\n", h.TypeSign, typeName(h.TypeSign))
			fmt.Printf("spec_version:   0x%06X\n", h.SpecVersion)
			fmt.Printf("compressed:     %t\n", h.Compressed)
			fmt.Printf("checksum:       0x%08X\n", file.Checksum)
			fmt.Printf("blocks:         %d\n", len(file.Blocks))
			for i, block := range file.Blocks {
				fmt.Printf("  [%d] signature=0x%08X kind=%s\n", i, block.Signature(), blockKindName(block.Signature()))
			}
			return nil
		},
	}
}

func typeName(t uint16) string {
	switch t {
	case umbf.TypeNone:
		return "none"
	case umbf.TypeImage:
		return "image"
	case umbf.TypeScene:
		return "scene"
	case umbf.TypeMaterial:
		return "material"
	case umbf.TypeTarget:
		return "target"
	case umbf.TypeLibrary:
		return "library"
	case umbf.TypeRaw:
		return "raw"
	default:
		return "unknown"
	}
}

func blockKindName(sig uint32) string {
	switch sig {
	case umbf.SignatureImage2D:
		return "image2d"
	case umbf.SignatureImageAtlas:
		return "image_atlas"
	case umbf.SignatureMaterial:
		return "material"
	case umbf.SignatureScene:
		return "scene"
	case umbf.SignatureMesh:
		return "mesh"
	case umbf.SignatureMatRangeAssign:
		return "material_range_assign"
	case umbf.SignatureMaterialInfo:
		return "material_info"
	case umbf.SignatureTarget:
		return "target"
	case umbf.SignatureLibrary:
		return "library"
	default:
		return "unknown"
	}
}
