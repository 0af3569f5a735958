package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ashgrove-tools/umbf/pkg/umbf"
)

func libraryCmd() *cli.Command {
	var dir string

	listCmd := &cli.Command{
		Name:  "list",
		Usage: "Scan a directory for .umlib files and list the libraries found",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "directory to scan for .umlib files",
				Destination: &dir,
				Required:    true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			reg := umbf.NewLibraryRegistry()
			if err := reg.Init(dir, nil, nil, nil, log); err != nil {
				return fmt.Errorf("library list: %w", err)
			}
			for _, name := range reg.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}

	var (
		showDir  string
		showName string
		showPath string
	)
	showCmd := &cli.Command{
		Name:  "show",
		Usage: "Print the tree of a library found under --dir, optionally walking to --path",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "directory to scan for .umlib files",
				Destination: &showDir,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "library root node name to show",
				Destination: &showName,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "path",
				Usage:       "slash-separated path to a node under the root (default: whole tree)",
				Destination: &showPath,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			reg := umbf.NewLibraryRegistry()
			if err := reg.Init(showDir, nil, nil, nil, log); err != nil {
				return fmt.Errorf("library show: %w", err)
			}
			lib, ok := reg.Get(showName)
			if !ok {
				return fmt.Errorf("library show: no library named %q in %s", showName, showDir)
			}

			node := &lib.Root
			if showPath != "" {
				node = lib.GetNode(strings.Split(showPath, "/"))
				if node == nil {
					return fmt.Errorf("library show: no node at path %q", showPath)
				}
			}
			printLibraryNode(*node, 0)
			return nil
		},
	}

	return &cli.Command{
		Name:     "library",
		Usage:    "Scan and inspect .umlib library files",
		Commands: []*cli.Command{listCmd, showCmd},
	}
}

func printLibraryNode(node umbf.LibraryNode, depth int) {
	indent := strings.Repeat("  ", depth)
	if node.IsFolder {
		fmt.Printf("%s%s/\n", indent, node.Name)
		for _, child := range node.Children {
			printLibraryNode(child, depth+1)
		}
		return
	}
	kind := "none"
	if node.Asset != nil {
		kind = typeName(node.Asset.Header.TypeSign)
	}
	fmt.Printf("%s%s (%s)\n", indent, node.Name, kind)
}
