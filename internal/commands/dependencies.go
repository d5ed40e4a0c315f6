package commands

import (
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	log "github.com/mgutz/logxi/v1"
	"golang.org/x/term"

	"github.com/diogo/auctiondapp/internal/actor"
	"github.com/diogo/auctiondapp/internal/agent"
	"github.com/diogo/auctiondapp/internal/config"
	"github.com/diogo/auctiondapp/internal/logging"
	"github.com/diogo/auctiondapp/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	Run(greeter actor.Greeter, subtitle string) error
}

// GreeterFactory builds an actor from a resolved config. The returned func
// releases the underlying agent.
type GreeterFactory func(cfg config.Config) (actor.Greeter, func(), error)

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	NewGreeter GreeterFactory
	TUI        TUIInterface
	// CopyToClipboard writes text to the system clipboard.
	CopyToClipboard func(text string) error
	// StdinIsTerminal reports whether input comes from a user.
	StdinIsTerminal func() bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) Run(greeter actor.Greeter, subtitle string) error {
	return tui.Run(greeter, tui.WithSubtitle(subtitle), tui.WithLogger(tuiLogger()))
}

// tuiLogger keeps log output off the screen while the TUI owns it.
func tuiLogger() log.Logger {
	dir, err := config.EnsureConfigDir()
	if err != nil {
		return logging.Discard()
	}
	f, err := os.OpenFile(filepath.Join(dir, "tui.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return logging.Discard()
	}
	return logging.NewWithWriter(f, "tui")
}

// NewHTTPGreeter builds the auction_dapp actor over an HTTP agent.
func NewHTTPGreeter(cfg config.Config) (actor.Greeter, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	canisterID, err := agent.ParseCanisterID(cfg.CanisterID)
	if err != nil {
		return nil, nil, err
	}

	httpAgent, err := agent.NewHttpAgent(
		agent.WithHost(cfg.Host),
		agent.WithTimeout(cfg.Timeout()),
	)
	if err != nil {
		return nil, nil, err
	}
	return actor.CreateActor(httpAgent, canisterID), httpAgent.Close, nil
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		NewGreeter:      NewHTTPGreeter,
		TUI:             &DefaultTUI{},
		CopyToClipboard: clipboard.WriteAll,
		StdinIsTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		Stdin:           os.Stdin,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
	}
}

// withDefaults fills unset fields from NewDependencies.
func (d *Dependencies) withDefaults() *Dependencies {
	def := NewDependencies()
	if d == nil {
		return def
	}
	out := *d
	if out.NewGreeter == nil {
		out.NewGreeter = def.NewGreeter
	}
	if out.TUI == nil {
		out.TUI = def.TUI
	}
	if out.CopyToClipboard == nil {
		out.CopyToClipboard = def.CopyToClipboard
	}
	if out.StdinIsTerminal == nil {
		out.StdinIsTerminal = def.StdinIsTerminal
	}
	if out.Stdin == nil {
		out.Stdin = def.Stdin
	}
	if out.Stdout == nil {
		out.Stdout = def.Stdout
	}
	if out.Stderr == nil {
		out.Stderr = def.Stderr
	}
	return &out
}
