package auth

import (
	"log/slog"
	"sync"
)

// Session holds the state of a TMDB user session. Fields are filled in as the authentication flow advances.
// An empty string or zero UserID means the field has not been set.
type Session struct {
	lock         sync.RWMutex
	apiKey       string
	username     string
	password     string
	requestToken string
	sessionID    string
	userID       int
}

// Snapshot is a point-in-time copy of a Session, without the password.
type Snapshot struct {
	APIKey       string
	Username     string
	RequestToken string
	SessionID    string
	UserID       int
}

func (s Snapshot) Authenticated() bool {
	return s.SessionID != "" && s.UserID != 0
}

// LogValue hides the secrets when a Snapshot is logged.
func (s Snapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", s.Username),
		slog.Bool("token", s.RequestToken != ""),
		slog.Bool("session", s.SessionID != ""),
		slog.Int("userID", s.UserID),
	)
}

func NewSession(apiKey string) *Session {
	return &Session{apiKey: apiKey}
}

func (s *Session) Snapshot() Snapshot {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return Snapshot{
		APIKey:       s.apiKey,
		Username:     s.username,
		RequestToken: s.requestToken,
		SessionID:    s.sessionID,
		UserID:       s.userID,
	}
}

// Clear drops everything but the API key.
func (s *Session) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.username = ""
	s.password = ""
	s.requestToken = ""
	s.sessionID = ""
	s.userID = 0
}

func (s *Session) credentials() (string, string) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.username, s.password
}

func (s *Session) setCredentials(username, password string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.username = username
	s.password = password
}

func (s *Session) forgetPassword() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.password = ""
}

func (s *Session) setRequestToken(token string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.requestToken = token
}

func (s *Session) setSessionID(id string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.sessionID = id
}

func (s *Session) setUserID(id int) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.userID = id
}
