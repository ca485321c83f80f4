package network

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/martinsuchenak/ndfcctl/internal/ndfc"
	"github.com/martinsuchenak/ndfcctl/internal/ui"
	"github.com/paularlott/cli"
)

func showCommand() *cli.Command {
	return &cli.Command{
		Name:        "show",
		Usage:       "Show a network by display name",
		Description: "Locate a network by its display name and print its details",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "display-name"},
		},
		Flags: append(connectionFlags(),
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Write the record JSON to a file"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			term := ui.NewTerminal()

			displayName := cmd.GetStringArg("display-name")
			if displayName == "" {
				var err error
				if displayName, err = term.Prompt("Network display name"); err != nil {
					return err
				}
			}
			if displayName == "" {
				return fmt.Errorf("a display name is required")
			}

			client, err := connect(ctx, cmd, term)
			if err != nil {
				return err
			}

			network, err := client.FindNetwork(ctx, displayName)
			if err != nil {
				if errors.Is(err, ndfc.ErrNotFound) {
					reportNotFound(os.Stdout, err)
				}
				return err
			}

			printNetworkDetails(os.Stdout, network)

			if path := cmd.GetString("output"); path != "" {
				if err := saveRecord(path, network); err != nil {
					return err
				}
				fmt.Printf("Record saved to %s\n", path)
			}
			return nil
		},
	}
}
