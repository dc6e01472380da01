// Package admin implements the two-step admin login and its persisted session.
package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/mark3labs/partsync/internal/api"
	"github.com/mark3labs/partsync/internal/logger"
)

// State is a step of the admin login flow.
type State int

const (
	LoggedOut State = iota
	AwaitingCredentials
	AwaitingCode
	Authenticated
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged out"
	case AwaitingCredentials:
		return "awaiting credentials"
	case AwaitingCode:
		return "awaiting code"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Messages shown when the backend gives no reason of its own.
const (
	MsgInvalidCredentials = "Invalid login credentials."
	MsgConnectFailed      = "Failed to connect to server."
	MsgCodeRejected       = "OTP verification failed"
	MsgServerError        = "Server error. Try again."
)

// CodeLength is the maximum length of a one-time code.
const CodeLength = 6

var (
	// ErrBusy is returned while a submission is outstanding.
	ErrBusy = errors.New("a request is already in progress")
	// ErrWrongState is returned when an action does not apply to the
	// current step.
	ErrWrongState = errors.New("action not available in current state")
)

// AuthError is a rejected login step. Message is meant for the user.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Authenticator performs the backend login calls. *api.Client satisfies it.
type Authenticator interface {
	AdminLogin(ctx context.Context, email, password string) (*api.LoginResult, error)
	VerifyOTP(ctx context.Context, email, otp string) (*api.LoginResult, error)
}

// Gate drives the login flow: credentials, then a one-time code, then a
// stored session. It is safe for concurrent use.
type Gate struct {
	auth  Authenticator
	store SessionStore

	mu      sync.Mutex
	state   State
	email   string
	token   string
	message string
	busy    bool
	// attempt changes whenever the flow is abandoned, so results of calls
	// started before that are dropped.
	attempt int
}

// NewGate creates a gate in the LoggedOut state.
func NewGate(auth Authenticator, store SessionStore) *Gate {
	return &Gate{auth: auth, store: store}
}

// Open is called when the login view is shown. A stored session moves the
// gate straight to Authenticated; otherwise it waits for credentials.
func (g *Gate) Open(ctx context.Context) State {
	g.mu.Lock()
	if g.state != LoggedOut {
		defer g.mu.Unlock()
		return g.state
	}
	g.mu.Unlock()

	sess, err := g.store.Load(ctx)
	if err != nil {
		logger.Warn("admin: reading stored session: %v", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != LoggedOut {
		return g.state
	}
	if err == nil && sess.Valid() {
		g.email, g.token = sess.Email, sess.Token
		g.setState(Authenticated)
	} else {
		g.setState(AwaitingCredentials)
	}
	return g.state
}

// SubmitCredentials sends email and password. On success the gate waits for
// the one-time code; on failure it stays put and returns an *AuthError.
func (g *Gate) SubmitCredentials(ctx context.Context, email, password string) error {
	attempt, err := g.begin(AwaitingCredentials)
	if err != nil {
		return err
	}

	res, err := g.auth.AdminLogin(ctx, email, password)

	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.current(attempt, AwaitingCredentials) {
		// cancelled while the call was in flight
		return ErrWrongState
	}
	g.busy = false
	switch {
	case err != nil:
		logger.Warn("admin: login request failed: %v", err)
		return g.fail(MsgConnectFailed, err)
	case !res.Success:
		return g.fail(messageOr(res.Message, MsgInvalidCredentials), nil)
	}
	g.email = email
	g.message = ""
	g.setState(AwaitingCode)
	return nil
}

// SubmitCode sends the one-time code. On success the session is persisted
// and the gate becomes Authenticated.
func (g *Gate) SubmitCode(ctx context.Context, code string) error {
	attempt, err := g.begin(AwaitingCode)
	if err != nil {
		return err
	}
	g.mu.Lock()
	email := g.email
	g.mu.Unlock()

	res, err := g.auth.VerifyOTP(ctx, email, code)

	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.current(attempt, AwaitingCode) {
		return ErrWrongState
	}
	g.busy = false
	switch {
	case err != nil:
		logger.Warn("admin: otp request failed: %v", err)
		return g.fail(MsgServerError, err)
	case !res.Success || res.Token == "":
		return g.fail(messageOr(res.Message, MsgCodeRejected), nil)
	}
	// Held under mu: a Cancel must not land between the check and the write.
	if err := g.store.Save(ctx, Session{Email: email, Token: res.Token}); err != nil {
		logger.Error("admin: persisting session: %v", err)
		return g.fail(MsgServerError, err)
	}
	g.token = res.Token
	g.message = ""
	g.setState(Authenticated)
	return nil
}

// Cancel clears every field and returns to LoggedOut. An authenticated gate
// is left as is.
func (g *Gate) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Authenticated {
		return
	}
	g.email, g.token, g.message = "", "", ""
	g.busy = false
	g.attempt++
	g.setState(LoggedOut)
}

// Logout removes the stored session.
func (g *Gate) Logout(ctx context.Context) error {
	if err := g.store.Clear(ctx); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.email, g.token, g.message = "", "", ""
	g.busy = false
	g.attempt++
	g.setState(LoggedOut)
	return nil
}

// State returns the current step.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Busy reports whether a submission is outstanding.
func (g *Gate) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}

// Message returns the last error shown to the user.
func (g *Gate) Message() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.message
}

// Session returns the authenticated session.
func (g *Gate) Session() (Session, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Authenticated {
		return Session{}, false
	}
	return Session{Email: g.email, Token: g.token}, true
}

// Email returns the address the code will be verified for.
func (g *Gate) Email() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.email
}

func (g *Gate) begin(want State) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return 0, ErrBusy
	}
	if g.state != want {
		return 0, ErrWrongState
	}
	g.busy = true
	g.message = ""
	return g.attempt, nil
}

// current reports whether a call started in attempt at step want may still
// apply its result. Must be called with mu held.
func (g *Gate) current(attempt int, want State) bool {
	return g.attempt == attempt && g.state == want
}

// fail must be called with mu held.
func (g *Gate) fail(msg string, err error) error {
	g.message = msg
	return &AuthError{Message: msg, Err: err}
}

// setState must be called with mu held.
func (g *Gate) setState(s State) {
	if g.state != s {
		logger.Debug("admin: %s -> %s", g.state, s)
	}
	g.state = s
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
