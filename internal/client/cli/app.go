// Package cli implements the interactive console for the bank service:
// a small REPL that signs users up, authenticates them and runs money
// operations over the wire client, keeping the session token in memory.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alinaagnistova/TestTask/internal/client/client"
	"github.com/alinaagnistova/TestTask/internal/client/config"
)

// bankClient is the wire surface the app needs; *client.Client satisfies it.
type bankClient interface {
	Signup(login, password string) (*client.Response, error)
	Signin(login, password string) (*client.Response, error)
	Send(token, recipient string, amount float64) (*client.Response, error)
	Balance(token string) (*client.Response, error)
}

type App struct {
	client  bankClient
	scanner *bufio.Scanner
	out     io.Writer

	// session state, held only for the lifetime of the process
	login string
	token string
}

func NewApp(cfg *config.Config) *App {
	return &App{
		client:  client.New(cfg.Address),
		scanner: bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

// status describes the session for the REPL prompt.
func (a *App) status() string {
	if !a.isLoggedIn() {
		return "not signed in"
	}
	return a.login
}

func (a *App) report(resp *client.Response) {
	fmt.Fprintln(a.out, resp.Message)
}

func (a *App) credentials() (string, string, error) {
	login, err := GetSimpleText(a.scanner, "Enter login:", a.out)
	if err != nil {
		return "", "", err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return "", "", err
	}
	return login, password, nil
}

// Signup registers a new user. On success the server opens an account and
// issues a token, which becomes the current session.
func (a *App) Signup(ctx context.Context) error {
	login, password, err := a.credentials()
	if err != nil {
		return err
	}

	resp, err := a.client.Signup(login, password)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.report(resp)
	if resp.OK() {
		a.login = login
		a.token = resp.Token
	}
	return nil
}

// Signin authenticates an existing user and stores the fresh token.
func (a *App) Signin(ctx context.Context) error {
	login, password, err := a.credentials()
	if err != nil {
		return err
	}

	resp, err := a.client.Signin(login, password)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.report(resp)
	if resp.OK() {
		a.login = login
		a.token = resp.Token
	}
	return nil
}

// Send asks for a recipient and an amount and submits the transfer.
func (a *App) Send(ctx context.Context) error {
	recipient, err := GetSimpleText(a.scanner, "Enter recipient login:", a.out)
	if err != nil {
		return err
	}
	amount, err := GetAmount(a.scanner, a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	resp, err := a.client.Send(a.token, recipient, amount)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.report(resp)
	if resp.Token != "" {
		a.token = resp.Token
	}
	return nil
}

// Balance fetches and prints the current balance.
func (a *App) Balance(ctx context.Context) error {
	resp, err := a.client.Balance(a.token)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.report(resp)
	if resp.Token != "" {
		a.token = resp.Token
	}
	return nil
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Bank console. Type 'help' for the command list.")
	runREPL(ctx, a, a.status, a.scanner)
}
