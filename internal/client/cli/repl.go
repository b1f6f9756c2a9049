package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Signin(ctx context.Context) error
	Send(ctx context.Context) error
	Balance(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the bank CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	help      — show available commands
//	signup    — register a new user (opens an account)
//	signin    — authenticate and obtain a token
//	send      — transfer money to another user (requires signin)
//	balance   — show your balance (requires signin)
//	exit|quit — leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bank> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "exit", "quit":
			return
		case "help":
			printlnFn("commands: help, signup, signin, send, balance, exit")
		case "signup":
			_ = a.Signup(ctx)
		case "signin":
			_ = a.Signin(ctx)
		case "send":
			if !a.isLoggedIn() {
				printlnFn("please signin first")
				continue
			}
			_ = a.Send(ctx)
		case "balance":
			if !a.isLoggedIn() {
				printlnFn("please signin first")
				continue
			}
			_ = a.Balance(ctx)
		default:
			printlnFn("unknown command: " + fields[0])
		}
	}
}
