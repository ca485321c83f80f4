package network

import (
	"context"
	"fmt"
	"os"

	"github.com/martinsuchenak/ndfcctl/internal/ui"
	"github.com/paularlott/cli"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:        "list",
		Usage:       "List networks in a fabric",
		Description: "Retrieve and print all networks in the configured fabric",
		Flags:       connectionFlags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			term := ui.NewTerminal()

			client, err := connect(ctx, cmd, term)
			if err != nil {
				return err
			}

			networks, err := client.ListNetworks(ctx)
			if err != nil {
				return fmt.Errorf("list networks: %w", err)
			}

			fmt.Printf("Fabric %s: %d networks\n\n", client.Fabric(), len(networks))
			printNetworks(os.Stdout, networks)
			return nil
		},
	}
}
