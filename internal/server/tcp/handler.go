package tcp

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/alinaagnistova/TestTask/internal/common"
	"github.com/alinaagnistova/TestTask/internal/logging"
	"github.com/alinaagnistova/TestTask/internal/server/accounts"
	"github.com/alinaagnistova/TestTask/internal/server/auth"
	"github.com/alinaagnistova/TestTask/internal/server/users"
)

// Handler drives one request through parse → authenticate → execute →
// respond. Terminal on the first failing state; the connection is one-shot,
// so there are no retries.
type Handler struct {
	users     *users.Service
	accounts  *accounts.Service
	jwtSecret []byte
}

func NewHandler(us *users.Service, as *accounts.Service, secretKey string) *Handler {
	return &Handler{
		users:     us,
		accounts:  as,
		jwtSecret: []byte(secretKey),
	}
}

// Handle reads exactly one request from rw and writes exactly one response.
func (h *Handler) Handle(ctx context.Context, rw io.ReadWriter, log logging.Logger) {

	req, err := ReadRequest(bufio.NewReader(rw))
	if err != nil {
		log.Warn(ctx, "bad request", "error", err.Error())
		_ = writeResponse(rw, 400, framingMessage(err), "")
		return
	}

	log = log.With("method", req.Method, "path", req.Path)

	switch req.Method {
	case "POST":
		h.post(ctx, rw, req, log)
	case "GET":
		h.get(ctx, rw, req, log)
	default:
		_ = writeResponse(rw, 405, "Allowed methods: GET, POST", "")
	}
}

func framingMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyRequestLine):
		return "Empty request line"
	case errors.Is(err, ErrMalformedRequestLine):
		return "Malformed request line"
	case errors.Is(err, ErrNoContentLength):
		return "No Content-Length or Content-Length equals 0"
	case errors.Is(err, ErrTruncatedBody):
		return "Truncated request body"
	default:
		return "Malformed request body"
	}
}

func (h *Handler) post(ctx context.Context, w io.Writer, req *Request, log logging.Logger) {
	switch req.Path {
	case "/signup":
		h.signup(ctx, w, req, log)
	case "/signin":
		h.signin(ctx, w, req, log)
	case "/money":
		h.transfer(ctx, w, req, log)
	default:
		_ = writeResponse(w, 404, "Invalid path", "")
	}
}

func (h *Handler) get(ctx context.Context, w io.Writer, req *Request, log logging.Logger) {
	if req.Path != "/money" {
		_ = writeResponse(w, 404, "Invalid path", "")
		return
	}
	h.balance(ctx, w, req, log)
}

func (h *Handler) signup(ctx context.Context, w io.Writer, req *Request, log logging.Logger) {
	login, okLogin := req.StringParam("login")
	password, okPassword := req.StringParam("password")
	if !okLogin || !okPassword {
		_ = writeResponse(w, 400, "Missing login or password", "")
		return
	}

	token, err := h.users.Register(ctx, login, password)
	if err != nil {
		// Duplicate login and any other storage failure collapse into the
		// same outward error so signup reveals no more than it has to.
		if errors.Is(err, common.ErrorConflict) {
			log.Warn(ctx, "user already exists", "login", login)
		} else {
			log.Error(ctx, "registration failed", "error", err.Error())
		}
		_ = writeResponse(w, 500, "Failed to register user. Probably, user already exists", "")
		return
	}

	log.Info(ctx, "user registered", "login", login)
	_ = writeResponse(w, 200, "User registered "+login, token)
}

func (h *Handler) signin(ctx context.Context, w io.Writer, req *Request, log logging.Logger) {
	login, okLogin := req.StringParam("login")
	password, okPassword := req.StringParam("password")
	if !okLogin || !okPassword {
		_ = writeResponse(w, 400, "Missing login or password", "")
		return
	}

	token, err := h.users.Login(ctx, login, password)
	if err != nil {
		if !errors.Is(err, common.ErrorUnauthorized) {
			log.Error(ctx, "signin failed", "error", err.Error())
		}
		_ = writeResponse(w, 401, "Incorrect username or password", "")
		return
	}

	log.Info(ctx, "user signed in", "login", login)
	_ = writeResponse(w, 200, "Welcome, "+login, token)
}

func (h *Handler) transfer(ctx context.Context, w io.Writer, req *Request, log logging.Logger) {
	recipient, okTo := req.StringParam("to")
	amount, okAmount := req.NumberParam("amount")
	if !okTo || !okAmount {
		_ = writeResponse(w, 400, "Missing to or amount", "")
		return
	}

	sender, token, ok := h.authenticate(ctx, w, req)
	if !ok {
		return
	}

	// The sender comes from the token subject only, the body never names
	// them. Only the recipient's balance changes; the sender is not debited
	// and no funds check runs.
	if err := h.accounts.Transfer(ctx, recipient, amount); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = writeResponse(w, 404, "Problems during money transfer", "")
			return
		}
		log.Error(ctx, "transfer failed", "error", err.Error())
		_ = writeResponse(w, 500, "Problems during money transfer", "")
		return
	}

	amountText := strconv.FormatFloat(amount, 'f', -1, 64)
	log.Info(ctx, "money sent", "from", sender, "to", recipient, "amount", amount)
	_ = writeResponse(w, 200, "You send "+amountText+" to "+recipient, token)
}

func (h *Handler) balance(ctx context.Context, w io.Writer, req *Request, log logging.Logger) {
	login, token, ok := h.authenticate(ctx, w, req)
	if !ok {
		return
	}

	balance, err := h.accounts.Balance(ctx, login)
	if err != nil {
		log.Error(ctx, "balance lookup failed", "login", login, "error", err.Error())
		_ = writeResponse(w, 500, "Problem during getting balance", "")
		return
	}

	log.Info(ctx, "balance read", "login", login, "balance", balance)
	_ = writeResponse(w, 200, strconv.FormatFloat(balance, 'f', -1, 64), token)
}

// authenticate enforces the bearer-token contract for /money. An absent
// token and an invalid one produce distinct messages. On success it returns
// the token's subject and the token itself so the response can echo it.
func (h *Handler) authenticate(ctx context.Context, w io.Writer, req *Request) (string, string, bool) {
	token, present := req.BearerToken()
	if !present {
		_ = writeResponse(w, 401, "No JWT token provided", "")
		return "", "", false
	}

	subject, err := auth.GetUsernameFromToken(token, h.jwtSecret)
	if err != nil {
		_ = writeResponse(w, 401, "Invalid JWT token provided", "")
		return "", "", false
	}

	return subject, token, true
}
