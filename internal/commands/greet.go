package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	apierrors "github.com/diogo/auctiondapp/internal/errors"
)

var (
	colorSuccess = lipgloss.Color("#9ece6a")
	colorWarning = lipgloss.Color("#e0af68")
	colorError   = lipgloss.Color("#f7768e")
)

func newGreetCmd(deps *Dependencies, flags *globalFlags) *cobra.Command {
	var copyFlag bool

	cmd := &cobra.Command{
		Use:   "greet [name]",
		Short: "Call greet once and print the reply",
		Long: `Call the canister's greet method with the given name and print the reply.
Without a name argument the name is read from stdin when it is piped, and is
empty otherwise. The name is sent unchanged.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			switch {
			case len(args) > 0:
				name = args[0]
			case !deps.StdinIsTerminal():
				n, err := readName(deps.Stdin)
				if err != nil {
					return err
				}
				name = n
			}
			return runGreet(deps, flags, name, copyFlag)
		},
	}
	cmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy the greeting to the clipboard")
	return cmd
}

// readName reads the first line of r without its line ending.
func readName(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runGreet(deps *Dependencies, flags *globalFlags, name string, copyFlag bool) error {
	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	greeter, release, err := deps.NewGreeter(cfg)
	if err != nil {
		return err
	}
	defer release()

	greeting, err := greeter.Greet(context.Background(), name)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, greeting)

	if copyFlag || cfg.CopyToClipboard {
		if err := deps.CopyToClipboard(greeting); err != nil {
			fmt.Fprintln(deps.Stderr, lipgloss.NewStyle().Foreground(colorWarning).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
			))
		} else {
			fmt.Fprintln(deps.Stderr, lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard"))
		}
	}
	return nil
}

// formatError renders err for the terminal with a hint for known cases.
func formatError(err error) string {
	style := lipgloss.NewStyle().Foreground(colorError)
	msg := "✗ " + err.Error()

	var rejectErr *apierrors.RejectError
	var apiErr *apierrors.APIError
	switch {
	case errors.As(err, &rejectErr):
		msg += "\n  the canister rejected the call; check the canister id and that it is deployed"
	case apierrors.IsNetworkError(err):
		msg += "\n  is the replica running? (dfx start)"
	case errors.As(err, &apiErr) && apiErr.Body != "":
		msg += "\n  " + apiErr.Body
	}
	return style.Render(msg)
}
