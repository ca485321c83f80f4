package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/martinsuchenak/ndfcctl/internal/ndfc"
	"github.com/martinsuchenak/ndfcctl/internal/ui"
	"github.com/paularlott/cli"
)

func renameCommand() *cli.Command {
	return &cli.Command{
		Name:        "rename",
		Usage:       "Rename a network's display name",
		Description: "Locate a network by its current display name and update it to a new one",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "current"},
			&cli.StringArg{Name: "new"},
		},
		Flags: append(connectionFlags(),
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip the confirmation prompt"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			term := ui.NewTerminal()

			client, err := connect(ctx, cmd, term)
			if err != nil {
				return err
			}

			var confirm ui.Confirmer = term
			if cmd.GetBool("yes") {
				confirm = ui.StaticConfirmer(true)
			}

			return runRename(ctx, client, term, confirm, os.Stdout,
				cmd.GetStringArg("current"), cmd.GetStringArg("new"))
		},
	}
}

// runRename is the locate/confirm/update pipeline behind the rename command.
// The confirmation port is injected so the flow is testable without a
// terminal; the PUT is never sent without an affirmative answer.
func runRename(ctx context.Context, client *ndfc.Client, term *ui.Terminal, confirm ui.Confirmer, out io.Writer, current, newName string) error {
	var err error
	if current == "" {
		if current, err = term.Prompt("Current display name"); err != nil {
			return err
		}
	}
	if current == "" {
		return fmt.Errorf("a current display name is required")
	}

	network, err := client.FindNetwork(ctx, current)
	if err != nil {
		if errors.Is(err, ndfc.ErrNotFound) {
			reportNotFound(out, err)
		}
		return err
	}

	printNetworkDetails(out, network)

	if newName == "" {
		if newName, err = term.Prompt("New display name"); err != nil {
			return err
		}
	}
	if newName == "" {
		fmt.Fprintln(out, "No new display name provided, nothing to do")
		return nil
	}
	if newName == current {
		fmt.Fprintln(out, "New display name matches the current one, nothing to do")
		return nil
	}

	ok, err := confirm.Confirm(fmt.Sprintf("Rename %q to %q?", current, newName))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "Rename cancelled")
		return nil
	}

	if _, err := client.UpdateDisplayName(ctx, network, newName); err != nil {
		return fmt.Errorf("update network: %w", err)
	}
	fmt.Fprintf(out, "Display name updated: %q -> %q\n", current, newName)

	// Re-fetch under the new name so the user sees what the controller
	// actually stored.
	updated, err := client.FindNetwork(ctx, newName)
	if err != nil {
		fmt.Fprintln(out, "Could not re-fetch the updated network")
		return nil
	}
	printNetworkDetails(out, updated)
	return nil
}
