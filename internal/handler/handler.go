// Package handler wires the greet button of the front-end page to the
// auction_dapp actor.
package handler

import (
	"context"
	"fmt"

	log "github.com/mgutz/logxi/v1"

	"github.com/diogo/auctiondapp/internal/actor"
	"github.com/diogo/auctiondapp/internal/logging"
)

// Element identifiers on the page.
const (
	ButtonID = "clickMeBtn"
	InputID  = "name"
	OutputID = "greeting"
)

// Page is the part of a document the handler touches.
type Page interface {
	Value(id string) (string, error)
	SetText(id, text string) error
	OnClick(id string, fn func()) error
}

// Scheduler runs a click activation off the event loop.
type Scheduler func(fn func())

// GoScheduler runs each activation in its own goroutine.
func GoScheduler(fn func()) {
	go fn()
}

// GreetHandler forwards the name input to Greet and shows the reply.
type GreetHandler struct {
	greeter  actor.Greeter
	page     Page
	schedule Scheduler
	ctx      context.Context
	logger   log.Logger
	onError  func(error)
}

// Option configures the handler
type Option func(*GreetHandler)

// WithScheduler replaces GoScheduler
func WithScheduler(s Scheduler) Option {
	return func(h *GreetHandler) {
		h.schedule = s
	}
}

// WithContext sets the context passed to calls started by clicks
func WithContext(ctx context.Context) Option {
	return func(h *GreetHandler) {
		h.ctx = ctx
	}
}

// WithLogger sets the handler logger
func WithLogger(logger log.Logger) Option {
	return func(h *GreetHandler) {
		h.logger = logger
	}
}

// WithErrorHook is called with every failed activation started by a click
func WithErrorHook(fn func(error)) Option {
	return func(h *GreetHandler) {
		h.onError = fn
	}
}

// NewGreetHandler creates a handler for page backed by greeter.
func NewGreetHandler(greeter actor.Greeter, page Page, opts ...Option) *GreetHandler {
	h := &GreetHandler{
		greeter:  greeter,
		page:     page,
		schedule: GoScheduler,
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = logging.New("handler")
	}
	return h
}

// Bind attaches the click listener to the button.
func (h *GreetHandler) Bind() error {
	if err := h.page.OnClick(ButtonID, h.activate); err != nil {
		return fmt.Errorf("bind %s: %w", ButtonID, err)
	}
	return nil
}

func (h *GreetHandler) activate() {
	call, err := h.Begin()
	if err != nil {
		h.report(err)
		return
	}
	h.schedule(func() {
		if err := call(h.ctx); err != nil {
			h.report(err)
		}
	})
}

func (h *GreetHandler) report(err error) {
	h.logger.Error("greet failed", "err", err)
	if h.onError != nil {
		h.onError(err)
	}
}

// Begin reads the input now and returns the rest of the activation: the
// greet call and the output write. The output is left untouched when the
// call fails.
func (h *GreetHandler) Begin() (func(ctx context.Context) error, error) {
	name, err := h.page.Value(InputID)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", InputID, err)
	}

	return func(ctx context.Context) error {
		greeting, err := h.greeter.Greet(ctx, name)
		if err != nil {
			return err
		}
		if err := h.page.SetText(OutputID, greeting); err != nil {
			return fmt.Errorf("write %s: %w", OutputID, err)
		}
		h.logger.Debug("greeting shown", "name", name)
		return nil
	}, nil
}

// Click runs one activation synchronously.
func (h *GreetHandler) Click(ctx context.Context) error {
	call, err := h.Begin()
	if err != nil {
		return err
	}
	return call(ctx)
}
