package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/clambin/favorites/pkg/tmdb"
)

type TMDBClient interface {
	CreateRequestToken(ctx context.Context) (string, error)
	ValidateWithLogin(ctx context.Context, username, password, requestToken string) error
	CreateSession(ctx context.Context, requestToken string) (string, error)
	GetAccount(ctx context.Context, sessionID string) (tmdb.Account, error)
}

var _ TMDBClient = tmdb.Client{}

var (
	ErrMissingCredentials = errors.New("username or password empty")
	ErrNotStarted         = errors.New("authentication not started")
	ErrAlreadyStarted     = errors.New("authentication already started")
	ErrFlowFinished       = errors.New("authentication already finished")
)

// Error reports the stage at which authentication failed. Err holds the underlying cause
// (a tmdb.TransportError, HTTPStatusError, ParseError or ProtocolError).
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return "authentication failed (" + e.Stage.String() + "): " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Message returns a short, user-facing description of the failure.
func (e *Error) Message() string { return e.Stage.Message() }

// Flow runs TMDB's session authentication: request token, login, session id and user id.
// Each call to Advance performs one step. A step only starts after the previous one returned,
// as every step needs the output of the one before.
type Flow struct {
	TMDBClient TMDBClient
	Session    *Session
	Logger     *slog.Logger

	state  Stage
	failed Stage
}

func NewFlow(c TMDBClient, session *Session, logger *slog.Logger) *Flow {
	return &Flow{
		TMDBClient: c,
		Session:    session,
		Logger:     logger,
		state:      StageIdle,
	}
}

// State returns the current stage of the flow.
func (f *Flow) State() Stage {
	return f.state
}

// FailedStage returns the stage that failed. Only meaningful when State returns StageFailed.
func (f *Flow) FailedStage() Stage {
	return f.failed
}

// Start stores the user's credentials in the session and moves the flow to StageRequestingToken.
func (f *Flow) Start(username, password string) error {
	if f.state != StageIdle {
		return ErrAlreadyStarted
	}
	if username == "" || password == "" {
		return ErrMissingCredentials
	}
	f.Session.setCredentials(username, password)
	f.transition(StageRequestingToken)
	return nil
}

// Advance performs the network call of the current stage and moves the flow to the next one.
// On failure, the flow moves to StageFailed and Advance returns an *Error. The session keeps
// whatever earlier steps stored in it.
func (f *Flow) Advance(ctx context.Context) error {
	var next Stage
	var err error

	switch f.state {
	case StageIdle:
		return ErrNotStarted
	case StageRequestingToken:
		next, err = StageAwaitingLogin, f.requestToken(ctx)
	case StageAwaitingLogin:
		next, err = StageEstablishingSession, f.login(ctx)
	case StageEstablishingSession:
		next, err = StageFetchingUserID, f.createSession(ctx)
	case StageFetchingUserID:
		next, err = StageComplete, f.fetchUserID(ctx)
	default:
		return ErrFlowFinished
	}

	if err != nil {
		f.Logger.Warn("authentication failed", "stage", f.state, "err", err)
		stage := f.state
		f.failed = stage
		f.transition(StageFailed)
		return &Error{Stage: stage, Err: err}
	}
	f.transition(next)
	return nil
}

// Run starts the flow and advances it until it completes or fails.
func (f *Flow) Run(ctx context.Context, username, password string) error {
	if err := f.Start(username, password); err != nil {
		return err
	}
	for !f.state.Terminal() {
		if err := f.Advance(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (f *Flow) transition(next Stage) {
	f.Logger.Debug("authentication stage changed", "from", f.state, "to", next)
	f.state = next
	if next.Terminal() {
		f.Session.forgetPassword()
	}
}

func (f *Flow) requestToken(ctx context.Context) error {
	token, err := f.TMDBClient.CreateRequestToken(ctx)
	if err == nil {
		f.Session.setRequestToken(token)
	}
	return err
}

func (f *Flow) login(ctx context.Context) error {
	username, password := f.Session.credentials()
	return f.TMDBClient.ValidateWithLogin(ctx, username, password, f.Session.Snapshot().RequestToken)
}

func (f *Flow) createSession(ctx context.Context) error {
	sessionID, err := f.TMDBClient.CreateSession(ctx, f.Session.Snapshot().RequestToken)
	if err == nil {
		f.Session.setSessionID(sessionID)
	}
	return err
}

func (f *Flow) fetchUserID(ctx context.Context) error {
	account, err := f.TMDBClient.GetAccount(ctx, f.Session.Snapshot().SessionID)
	if err != nil {
		return err
	}
	if account.Id == nil {
		return &tmdb.ProtocolError{Field: "id", Message: "missing"}
	}
	f.Session.setUserID(*account.Id)
	return nil
}
