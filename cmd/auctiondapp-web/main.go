//go:build js && wasm

// Command auctiondapp-web is the page script of the auction_dapp assets
// canister, built with GOOS=js GOARCH=wasm.
package main

import (
	"context"
	"syscall/js"

	"github.com/diogo/auctiondapp/internal/actor"
	"github.com/diogo/auctiondapp/internal/agent"
	"github.com/diogo/auctiondapp/internal/config"
	"github.com/diogo/auctiondapp/internal/dom"
	"github.com/diogo/auctiondapp/internal/handler"
	"github.com/diogo/auctiondapp/internal/logging"
)

// canisterID is injected at build time:
//
//	-ldflags "-X main.canisterID=$CANISTER_ID_AUCTION_DAPP"
var canisterID string

func main() {
	logger := logging.New("web")

	id := canisterID
	if id == "" {
		// Fallback for pages that define the id before loading the module.
		if v := js.Global().Get(config.EnvCanisterID); v.Type() == js.TypeString {
			id = v.String()
		}
	}
	principal, err := agent.ParseCanisterID(id)
	if err != nil {
		logger.Error("invalid canister id", "err", err)
		return
	}

	httpAgent, err := agent.NewHttpAgent(
		agent.WithHost(js.Global().Get("location").Get("origin").String()),
		agent.WithLogger(logger),
	)
	if err != nil {
		logger.Error("cannot create agent", "err", err)
		return
	}

	page := dom.NewBrowserPage()

	h := handler.NewGreetHandler(
		actor.CreateActor(httpAgent, principal),
		page,
		handler.WithContext(context.Background()),
		handler.WithLogger(logger),
	)
	if err := h.Bind(); err != nil {
		logger.Error("cannot bind page", "err", err)
		return
	}

	select {}
}
