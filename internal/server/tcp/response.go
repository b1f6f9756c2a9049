package tcp

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alinaagnistova/TestTask/internal/common"
)

var statusTexts = map[int]string{
	200: "OK",
	400: "Bad Request",
	401: "Unauthorized",
	404: "Not Found",
	405: "Method Not Allowed",
	500: "Internal Server Error",
}

// writeResponse writes the single response of the exchange:
//
//	HTTP/1.1 <code> <text>\r\n
//	Content-Type: text/plain; charset=utf-8\r\n
//	Authorization: Bearer <token>\r\n   (only when token != "")
//	\r\n
//	<message>\r\n
//
// The response is assembled in one buffer and written with a single Write
// so a concurrent connection teardown cannot interleave partial output.
func writeResponse(w io.Writer, code int, message, token string) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "HTTP/1.1 %d %s\r\n", code, statusTexts[code])
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	if token != "" {
		buf.WriteString(common.AuthHeaderName + ": " + common.BearerPrefix + token + "\r\n")
	}
	buf.WriteString("\r\n")
	buf.WriteString(message + "\r\n")

	_, err := w.Write(buf.Bytes())
	return err
}
