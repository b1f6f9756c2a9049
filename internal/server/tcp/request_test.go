package tcp

import (
	"bufio"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func reader(raw string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(raw))
}

func rawRequest(method, path string, headers map[string]string, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s HTTP/1.1\r\n", method, path)
	if _, ok := headers["Content-Length"]; !ok {
		fmt.Fprintf(&b, "Content-Length: %d\r\n", len(body))
	}
	for name, value := range headers {
		fmt.Fprintf(&b, "%s: %s\r\n", name, value)
	}
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}

func TestReadRequest_FullRequest(t *testing.T) {
	raw := rawRequest("POST", "/signup", map[string]string{"X-Extra": "  spaced  "},
		`{"login":"alice","password":"pw1","amount":10}`)

	req, err := ReadRequest(reader(raw))
	require.NoError(t, err)

	require.Equal(t, "POST", req.Method)
	require.Equal(t, "/signup", req.Path)
	require.Equal(t, "spaced", req.Headers["X-Extra"], "header values are trimmed")

	login, ok := req.StringParam("login")
	require.True(t, ok)
	require.Equal(t, "alice", login)

	amount, ok := req.NumberParam("amount")
	require.True(t, ok)
	require.Equal(t, 10.0, amount)
}

func TestReadRequest_EmptyStream(t *testing.T) {
	_, err := ReadRequest(reader(""))
	require.ErrorIs(t, err, ErrEmptyRequestLine)
}

func TestReadRequest_MalformedRequestLine(t *testing.T) {
	_, err := ReadRequest(reader("GET\r\n\r\n"))
	require.ErrorIs(t, err, ErrMalformedRequestLine)
}

func TestReadRequest_MissingContentLength(t *testing.T) {
	_, err := ReadRequest(reader("GET /money HTTP/1.1\r\n\r\n"))
	require.ErrorIs(t, err, ErrNoContentLength)
}

func TestReadRequest_ZeroContentLength(t *testing.T) {
	raw := "GET /money HTTP/1.1\r\nContent-Length: 0\r\n\r\n"
	_, err := ReadRequest(reader(raw))
	require.ErrorIs(t, err, ErrNoContentLength)
}

func TestReadRequest_NonNumericContentLength(t *testing.T) {
	raw := "GET /money HTTP/1.1\r\nContent-Length: lots\r\n\r\n{}"
	_, err := ReadRequest(reader(raw))
	require.ErrorIs(t, err, ErrNoContentLength)
}

func TestReadRequest_TruncatedBody(t *testing.T) {
	raw := "POST /signup HTTP/1.1\r\nContent-Length: 100\r\n\r\n{\"login\":"
	_, err := ReadRequest(reader(raw))
	require.ErrorIs(t, err, ErrTruncatedBody)
}

func TestReadRequest_MalformedBody(t *testing.T) {
	body := "this is not json"
	raw := fmt.Sprintf("POST /signup HTTP/1.1\r\nContent-Length: %d\r\n\r\n%s", len(body), body)
	_, err := ReadRequest(reader(raw))
	require.ErrorIs(t, err, ErrMalformedBody)
}

func TestReadRequest_DuplicateHeaderLastWins(t *testing.T) {
	raw := "POST /signup HTTP/1.1\r\n" +
		"X-Dup: first\r\n" +
		"X-Dup: second\r\n" +
		"Content-Length: 2\r\n" +
		"\r\n{}"

	req, err := ReadRequest(reader(raw))
	require.NoError(t, err)
	require.Equal(t, "second", req.Headers["X-Dup"])
}

func TestReadRequest_HeaderLineWithoutColonSkipped(t *testing.T) {
	raw := "POST /signup HTTP/1.1\r\n" +
		"garbage line without colon\r\n" +
		"Content-Length: 2\r\n" +
		"\r\n{}"

	req, err := ReadRequest(reader(raw))
	require.NoError(t, err)
	require.Len(t, req.Headers, 1)
}

func TestBearerToken(t *testing.T) {
	newReq := func(authValue string) *Request {
		headers := map[string]string{}
		if authValue != "" {
			headers["Authorization"] = authValue
		}
		return &Request{Headers: headers}
	}

	t.Run("present", func(t *testing.T) {
		token, ok := newReq("Bearer abc.def.ghi").BearerToken()
		require.True(t, ok)
		require.Equal(t, "abc.def.ghi", token)
	})

	t.Run("absent header", func(t *testing.T) {
		_, ok := newReq("").BearerToken()
		require.False(t, ok)
	})

	t.Run("prefix is case-sensitive", func(t *testing.T) {
		_, ok := newReq("bearer abc").BearerToken()
		require.False(t, ok)
	})

	t.Run("empty token after prefix", func(t *testing.T) {
		_, ok := newReq("Bearer ").BearerToken()
		require.False(t, ok)
	})
}
