package tcp

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/alinaagnistova/TestTask/internal/common"
)

// Framing and parse errors. Every one of them terminates the exchange with
// a 400 response; the variables exist so the handler can pick the message.
var (
	ErrEmptyRequestLine     = errors.New("empty request line")
	ErrMalformedRequestLine = errors.New("malformed request line")
	ErrNoContentLength      = errors.New("no Content-Length or Content-Length equals 0")
	ErrTruncatedBody        = errors.New("truncated request body")
	ErrMalformedBody        = errors.New("malformed request body")
)

// Request is one parsed wire request. Header names keep the case they were
// received with; a duplicated header keeps the last value. Params holds the
// decoded JSON body object (string/number leaves).
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Params  map[string]any
}

// ReadRequest reads exactly one request from the stream:
//
//	<METHOD> <PATH> <ignored-version-token>\r\n
//	<Header-Name>: <value>\r\n ...
//	\r\n
//	<Content-Length body bytes, JSON object>
//
// The Content-Length header is mandatory and must be non-zero: this protocol
// requires every request to carry a body, even operations that logically
// need none beyond the token. There is no pipelining and no body size cap.
func ReadRequest(r *bufio.Reader) (*Request, error) {

	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return nil, ErrEmptyRequestLine
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, ErrMalformedRequestLine
	}

	req := &Request{
		Method:  fields[0],
		Path:    fields[1],
		Headers: make(map[string]string),
	}

	readHeaders(r, req.Headers)

	length, err := strconv.Atoi(req.Headers["Content-Length"])
	if err != nil || length <= 0 {
		return nil, ErrNoContentLength
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, ErrTruncatedBody
	}

	params := make(map[string]any)
	if err := json.Unmarshal(body, &params); err != nil {
		return nil, ErrMalformedBody
	}
	req.Params = params

	return req, nil
}

// readHeaders consumes header lines until the blank separator line. A line
// without a colon is skipped; a repeated name overwrites the earlier value.
// A stream ending mid-headers counts as end of headers, the mandatory
// Content-Length check rejects the request right after.
func readHeaders(r *bufio.Reader, headers map[string]string) {
	for {
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return
		}
		if name, value, found := strings.Cut(line, ":"); found {
			headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
		}
	}
}

// StringParam returns a string-typed body field.
func (r *Request) StringParam(name string) (string, bool) {
	v, ok := r.Params[name].(string)
	return v, ok
}

// NumberParam returns a number-typed body field.
func (r *Request) NumberParam(name string) (float64, bool) {
	v, ok := r.Params[name].(float64)
	return v, ok
}

// BearerToken extracts the token from the Authorization header. The
// "Bearer " prefix check is case-sensitive. The boolean reports whether a
// non-empty token was present, so "missing token" and "invalid token" can
// be answered differently.
func (r *Request) BearerToken() (string, bool) {
	header, ok := r.Headers[common.AuthHeaderName]
	if !ok || !strings.HasPrefix(header, common.BearerPrefix) {
		return "", false
	}
	token := header[len(common.BearerPrefix):]
	return token, token != ""
}
