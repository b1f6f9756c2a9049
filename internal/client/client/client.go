// Package client speaks the bank's wire protocol from the caller's side:
// one TCP connection per request, a JSON body framed by Content-Length, and
// a single plain-text response line.
package client

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"strings"

	"github.com/alinaagnistova/TestTask/internal/common"
)

// Response is the parsed server reply for one exchange.
type Response struct {
	StatusCode int
	Status     string
	Message    string
	// Token is the bearer token echoed or issued by the server, empty when
	// the response carried none.
	Token string
}

// OK reports whether the exchange ended in a 200-class status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type Client struct {
	address string
}

func New(address string) *Client {
	return &Client{address: address}
}

// Do dials the server, writes one request and reads the single response.
// token may be empty for unauthenticated operations.
func (c *Client) Do(method, path, token string, body map[string]any) (*Response, error) {

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	conn, err := net.Dial("tcp", c.address)
	if err != nil {
		return nil, fmt.Errorf("connect error: %w", err)
	}
	defer conn.Close()

	var req bytes.Buffer
	fmt.Fprintf(&req, "%s %s HTTP/1.1\r\n", method, path)
	fmt.Fprintf(&req, "Content-Length: %d\r\n", len(payload))
	if token != "" {
		fmt.Fprintf(&req, "%s: %s%s\r\n", common.AuthHeaderName, common.BearerPrefix, token)
	}
	req.WriteString("\r\n")
	req.Write(payload)

	if _, err := conn.Write(req.Bytes()); err != nil {
		return nil, fmt.Errorf("write error: %w", err)
	}

	return readResponse(bufio.NewReader(conn))
}

func readResponse(r *bufio.Reader) (*Response, error) {

	statusLine, err := r.ReadString('\n')
	if err != nil && statusLine == "" {
		return nil, fmt.Errorf("empty response")
	}

	parts := strings.SplitN(strings.TrimRight(statusLine, "\r\n"), " ", 3)
	if len(parts) < 3 {
		return nil, fmt.Errorf("malformed status line: %q", statusLine)
	}

	resp := &Response{Status: parts[2]}
	if _, err := fmt.Sscanf(parts[1], "%d", &resp.StatusCode); err != nil {
		return nil, fmt.Errorf("malformed status code: %q", parts[1])
	}

	// headers until the blank separator
	for {
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("truncated response")
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		if name, value, found := strings.Cut(line, ":"); found {
			if strings.TrimSpace(name) == common.AuthHeaderName {
				resp.Token = strings.TrimPrefix(strings.TrimSpace(value), common.BearerPrefix)
			}
		}
	}

	message, _ := r.ReadString('\n')
	resp.Message = strings.TrimRight(message, "\r\n")

	return resp, nil
}

// Signup registers a new user and returns the issued token in the response.
func (c *Client) Signup(login, password string) (*Response, error) {
	return c.Do("POST", "/signup", "", map[string]any{"login": login, "password": password})
}

// Signin authenticates and returns a fresh token in the response.
func (c *Client) Signin(login, password string) (*Response, error) {
	return c.Do("POST", "/signin", "", map[string]any{"login": login, "password": password})
}

// Send transfers amount to the recipient on behalf of the token's subject.
func (c *Client) Send(token, recipient string, amount float64) (*Response, error) {
	return c.Do("POST", "/money", token, map[string]any{"to": recipient, "amount": amount})
}

// Balance returns the caller's balance as the response message.
func (c *Client) Balance(token string) (*Response, error) {
	return c.Do("GET", "/money", token, map[string]any{"query": "balance"})
}
