// Command auctiondapp is the terminal front-end for the auction_dapp canister.
package main

import "github.com/diogo/auctiondapp/internal/commands"

func main() {
	commands.Execute()
}
