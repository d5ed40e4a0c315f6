// Package commands provides CLI commands for auctiondapp.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/auctiondapp/internal/config"
	"github.com/diogo/auctiondapp/internal/logging"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	host       string
	canisterID string
	verbose    bool
}

// NewRootCmd creates the command tree wired to deps.
func NewRootCmd(deps *Dependencies) *cobra.Command {
	deps = deps.withDefaults()
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "auctiondapp [name]",
		Short: "Front-end for the auction_dapp canister",
		Long: `auctiondapp talks to the auction_dapp canister through an HTTP agent.
Run without arguments on a terminal to open the interactive page, or pass a
name to greet once.

Examples:
  auctiondapp                                  Open the interactive page
  auctiondapp greet Alice                      Greet once and print the reply
  echo Alice | auctiondapp                     Read the name from stdin
  auctiondapp config set canister_id <id>      Store the canister id
  auctiondapp --host https://icp-api.io greet  Use another replica`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetVerbose(flags.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(deps.Stdout, "auctiondapp %s (built %s)\n", Version, BuildTime)
				return nil
			}

			if len(args) > 0 {
				return runGreet(deps, flags, args[0], false)
			}

			if !deps.StdinIsTerminal() {
				name, err := readName(deps.Stdin)
				if err != nil {
					return err
				}
				return runGreet(deps, flags, name, false)
			}

			return runTUI(deps, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.host, "host", "", "Replica endpoint (default from config, "+config.EnvHost+")")
	cmd.PersistentFlags().StringVar(&flags.canisterID, "canister-id", "", "auction_dapp canister id (default from config, "+config.EnvCanisterID+")")
	cmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Log calls at debug level")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.SetIn(deps.Stdin)
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	cmd.AddCommand(newGreetCmd(deps, flags))
	cmd.AddCommand(NewConfigCmd(deps))
	return cmd
}

// Execute runs the root command
func Execute() {
	deps := NewDependencies()
	if err := NewRootCmd(deps).Execute(); err != nil {
		fmt.Fprintln(deps.Stderr, formatError(err))
		os.Exit(1)
	}
}

// resolveConfig loads the config file and applies flag overrides.
func resolveConfig(flags *globalFlags) (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return cfg, err
	}
	if flags.host != "" {
		cfg.Host = flags.host
	}
	if flags.canisterID != "" {
		cfg.CanisterID = flags.canisterID
	}
	if flags.verbose {
		cfg.Verbose = true
	}
	logging.SetVerbose(cfg.Verbose)
	return cfg, nil
}

func runTUI(deps *Dependencies, flags *globalFlags) error {
	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}
	greeter, release, err := deps.NewGreeter(cfg)
	if err != nil {
		return err
	}
	defer release()

	return deps.TUI.Run(greeter, fmt.Sprintf("%s  %s", cfg.Host, cfg.CanisterID))
}
