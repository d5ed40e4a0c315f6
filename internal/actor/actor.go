// Package actor provides typed access to the auction_dapp canister.
package actor

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/diogo/auctiondapp/internal/agent"
	apierrors "github.com/diogo/auctiondapp/internal/errors"
)

// MethodGreet is the canister method behind Greet.
const MethodGreet = "greet"

// Caller is the opaque RPC interface an actor is built on.
type Caller interface {
	Call(ctx context.Context, canisterID agent.CanisterID, method string, args ...any) (gjson.Result, error)
}

// Greeter is the remote capability the front-end needs.
type Greeter interface {
	Greet(ctx context.Context, name string) (string, error)
}

// AuctionActor is the client side of the auction_dapp canister.
type AuctionActor struct {
	caller     Caller
	canisterID agent.CanisterID
}

// Ensure AuctionActor implements Greeter
var _ Greeter = (*AuctionActor)(nil)

// CreateActor binds an actor to a canister through caller.
func CreateActor(caller Caller, canisterID agent.CanisterID) *AuctionActor {
	return &AuctionActor{caller: caller, canisterID: canisterID}
}

// CanisterID returns the canister the actor talks to
func (a *AuctionActor) CanisterID() agent.CanisterID {
	return a.canisterID
}

// Greet calls greet(name) and returns the text reply. The name is sent
// unchanged, including the empty string.
func (a *AuctionActor) Greet(ctx context.Context, name string) (string, error) {
	reply, err := a.caller.Call(ctx, a.canisterID, MethodGreet, name)
	if err != nil {
		return "", err
	}

	first := reply.Get("0")
	if !first.Exists() {
		return "", apierrors.ErrNoReply
	}
	if first.Type != gjson.String {
		return "", apierrors.NewParseError("greet reply is not a string", "reply.arg.0")
	}
	return first.String(), nil
}
