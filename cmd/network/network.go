package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/martinsuchenak/ndfcctl/internal/config"
	"github.com/martinsuchenak/ndfcctl/internal/model"
	"github.com/martinsuchenak/ndfcctl/internal/ndfc"
	"github.com/martinsuchenak/ndfcctl/internal/ui"
	"github.com/paularlott/cli"
)

// Commands returns the network subcommand tree
func Commands() []*cli.Command {
	return []*cli.Command{
		listCommand(),
		showCommand(),
		renameCommand(),
	}
}

// connectionFlags are shared by every subcommand. Values left empty fall back
// to the environment (see internal/config) and finally to interactive prompts.
func connectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "host", Usage: "Controller host, e.g. https://10.107.70.70"},
		&cli.StringFlag{Name: "fabric", Usage: "Fabric name"},
		&cli.StringFlag{Name: "username", Usage: "Controller username"},
		&cli.StringFlag{Name: "domain", Usage: "Login domain"},
	}
}

// connect resolves configuration, prompts for anything still missing, and
// returns a logged-in client. A failed login aborts before any other call.
func connect(ctx context.Context, cmd *cli.Command, term *ui.Terminal) (*ndfc.Client, error) {
	cfg, err := config.Load(&config.Config{
		Host:     cmd.GetString("host"),
		Fabric:   cmd.GetString("fabric"),
		Username: cmd.GetString("username"),
		Domain:   cmd.GetString("domain"),
	})
	if err != nil {
		return nil, err
	}

	if cfg.Host == "" {
		if cfg.Host, err = term.Prompt("NDFC host (e.g. https://10.107.70.70)"); err != nil {
			return nil, err
		}
	}
	if cfg.Fabric == "" {
		if cfg.Fabric, err = term.Prompt("Fabric name"); err != nil {
			return nil, err
		}
	}
	if cfg.Username == "" {
		if cfg.Username, err = term.Prompt("Username"); err != nil {
			return nil, err
		}
	}
	if cfg.Password == "" {
		if cfg.Password, err = term.PromptPassword("Password"); err != nil {
			return nil, err
		}
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := ndfc.New(cfg)
	if err := client.Login(ctx); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return client, nil
}

func printNetworks(out io.Writer, networks []model.Network) {
	if len(networks) == 0 {
		fmt.Fprintln(out, "No networks found")
		return
	}
	fmt.Fprintf(out, "%-30s %-25s %-12s %-15s %s\n", "DISPLAY NAME", "NETWORK NAME", "NETWORK ID", "VRF", "STATUS")
	for _, n := range networks {
		fmt.Fprintf(out, "%-30s %-25s %-12s %-15s %s\n",
			n.DisplayName(), n.NetworkName(), n.NetworkID(), n.VRF(), n.Status())
	}
}

func printNetworkDetails(out io.Writer, n model.Network) {
	fmt.Fprintln(out, "============================================================")
	fmt.Fprintln(out, "NETWORK DETAILS")
	fmt.Fprintln(out, "============================================================")
	fmt.Fprintf(out, "Network Name:  %s\n", n.NetworkName())
	fmt.Fprintf(out, "Display Name:  %s\n", n.DisplayName())
	fmt.Fprintf(out, "Network ID:    %s\n", n.NetworkID())
	fmt.Fprintf(out, "Fabric:        %s\n", n.Fabric())
	fmt.Fprintf(out, "Type:          %s\n", n.Type())
	fmt.Fprintf(out, "Status:        %s\n", n.Status())
	fmt.Fprintf(out, "VRF:           %s\n", n.VRF())
	fmt.Fprintf(out, "Tenant:        %s\n", n.TenantName())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Network Template:   %s\n", n.Template())
	fmt.Fprintf(out, "Extension Template: %s\n", n.ExtensionTemplate())

	if cfg := n.TemplateConfig(); cfg != nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Configuration:")
		keys := []struct{ key, label string }{
			{"vlanId", "VLAN ID"},
			{"segmentId", "Segment ID"},
			{"mcastGroup", "Multicast Group"},
			{"gatewayIpAddress", "Gateway IP"},
			{"mtu", "MTU"},
			{"tag", "Tag"},
			{"enableIR", "Enable IR"},
			{"isLayer2Only", "Layer 2 Only"},
		}
		for _, k := range keys {
			if v, ok := cfg[k.key]; ok && fmt.Sprint(v) != "" {
				fmt.Fprintf(out, "  %-16s %v\n", k.label+":", v)
			}
		}
	}
	fmt.Fprintln(out, "============================================================")
}

// reportNotFound prints the available networks alongside a failed lookup so
// the user can see what the fabric actually holds.
func reportNotFound(out io.Writer, err error) {
	var nf *ndfc.NotFoundError
	if !errors.As(err, &nf) {
		return
	}
	fmt.Fprintf(out, "No network with display name %q\n", nf.DisplayName)
	if len(nf.Available) == 0 {
		fmt.Fprintln(out, "The fabric has no networks")
		return
	}
	fmt.Fprintln(out, "Available networks:")
	for _, name := range nf.Available {
		fmt.Fprintf(out, "  - %s\n", name)
	}
}

// saveRecord writes a record as indented JSON to a file.
func saveRecord(path string, n model.Network) error {
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}
