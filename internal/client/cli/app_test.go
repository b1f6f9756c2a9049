package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alinaagnistova/TestTask/internal/client/client"
)

type stubBankClient struct {
	resp *client.Response
	err  error

	lastToken     string
	lastRecipient string
	lastAmount    float64
}

func (s *stubBankClient) Signup(login, password string) (*client.Response, error) {
	return s.resp, s.err
}

func (s *stubBankClient) Signin(login, password string) (*client.Response, error) {
	return s.resp, s.err
}

func (s *stubBankClient) Send(token, recipient string, amount float64) (*client.Response, error) {
	s.lastToken = token
	s.lastRecipient = recipient
	s.lastAmount = amount
	return s.resp, s.err
}

func (s *stubBankClient) Balance(token string) (*client.Response, error) {
	s.lastToken = token
	return s.resp, s.err
}

func newTestApp(t *testing.T, c bankClient, input string) (*App, *bytes.Buffer) {
	t.Helper()

	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return []byte("pw1"), nil }

	var out bytes.Buffer
	return &App{
		client:  c,
		scanner: bufio.NewScanner(strings.NewReader(input)),
		out:     &out,
	}, &out
}

func TestApp_SignupStoresSession(t *testing.T) {
	stub := &stubBankClient{resp: &client.Response{
		StatusCode: 200, Status: "OK", Message: "User registered alice", Token: "tok123",
	}}
	app, out := newTestApp(t, stub, "alice\n")

	require.NoError(t, app.Signup(context.Background()))

	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "alice", app.login)
	assert.Equal(t, "tok123", app.token)
	assert.Contains(t, out.String(), "User registered alice")
}

func TestApp_SigninFailureLeavesSessionEmpty(t *testing.T) {
	stub := &stubBankClient{resp: &client.Response{
		StatusCode: 401, Status: "Unauthorized", Message: "Incorrect username or password",
	}}
	app, out := newTestApp(t, stub, "alice\n")

	require.NoError(t, app.Signin(context.Background()))

	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Incorrect username or password")
}

func TestApp_SendUsesSessionToken(t *testing.T) {
	stub := &stubBankClient{resp: &client.Response{
		StatusCode: 200, Status: "OK", Message: "You send 10 to bob", Token: "tok123",
	}}
	app, out := newTestApp(t, stub, "bob\n10\n")
	app.login = "alice"
	app.token = "tok123"

	require.NoError(t, app.Send(context.Background()))

	assert.Equal(t, "tok123", stub.lastToken)
	assert.Equal(t, "bob", stub.lastRecipient)
	assert.Equal(t, 10.0, stub.lastAmount)
	assert.Contains(t, out.String(), "You send 10 to bob")
}

func TestApp_SendRejectsBadAmount(t *testing.T) {
	stub := &stubBankClient{}
	app, out := newTestApp(t, stub, "bob\nlots\n")
	app.token = "tok123"

	err := app.Send(context.Background())
	assert.ErrorContains(t, err, "invalid amount")
	assert.Contains(t, out.String(), "invalid amount")
}

func TestApp_BalancePrintsMessage(t *testing.T) {
	stub := &stubBankClient{resp: &client.Response{
		StatusCode: 200, Status: "OK", Message: "100", Token: "tok123",
	}}
	app, out := newTestApp(t, stub, "")
	app.login = "alice"
	app.token = "tok123"

	require.NoError(t, app.Balance(context.Background()))

	assert.Equal(t, "tok123", stub.lastToken)
	assert.Contains(t, out.String(), "100")
}

func TestApp_Status(t *testing.T) {
	app, _ := newTestApp(t, &stubBankClient{}, "")
	assert.Equal(t, "not signed in", app.status())

	app.login = "alice"
	app.token = "tok123"
	assert.Equal(t, "alice", app.status())
}
