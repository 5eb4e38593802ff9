package sdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/oauth2"
)

// SessionState is the authentication lifecycle state.
type SessionState string

const (
	// SessionUnauthenticated means no credential is held.
	SessionUnauthenticated SessionState = "unauthenticated"
	// SessionRestoring means a stored credential exists but the user behind
	// it has not been resolved yet. No protected surface may render until
	// restoration settles.
	SessionRestoring SessionState = "restoring"
	// SessionAuthenticated means both credential and user are present.
	SessionAuthenticated SessionState = "authenticated"
	// SessionInvalid means the server rejected the held credential; the
	// store has been cleared and a fresh login is required.
	SessionInvalid SessionState = "invalid"
)

// Notifier receives the one transient notification each user-relevant
// transition produces. Gate denials are not notifications; they surface as
// plain errors.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Info(string)    {}
func (nopNotifier) Error(string)   {}

// Session owns the authentication lifecycle: restore, login, logout, and
// invalidation on server rejection. All state lives here; there is no ambient
// current user. A Session is either fully present (credential and user both
// set) or fully absent.
type Session struct {
	client *Client
	store  CredentialStore
	notify Notifier

	mu    sync.Mutex
	state SessionState
	user  *User
	creds *Credentials
	// epoch increments on every logout, invalidation, and login. A response
	// that started under an older epoch must not commit: a session cleared
	// while a call was in flight stays cleared.
	epoch uint64
}

// SessionOptions configures session construction.
type SessionOptions struct {
	Notifier   Notifier
	HTTPClient *http.Client
}

// SessionOption mutates SessionOptions.
type SessionOption func(*SessionOptions)

// WithNotifier directs transition notifications to the given sink.
func WithNotifier(n Notifier) SessionOption {
	return func(opts *SessionOptions) {
		opts.Notifier = n
	}
}

// WithSessionHTTPClient overrides the HTTP client used for API calls.
func WithSessionHTTPClient(client *http.Client) SessionOption {
	return func(opts *SessionOptions) {
		opts.HTTPClient = client
	}
}

// NewSession creates a session against the school API at baseURL, adopting
// any credential already persisted in store. The initial state is Restoring
// when a stored credential exists, Unauthenticated otherwise.
func NewSession(baseURL string, store CredentialStore, optFns ...SessionOption) *Session {
	opts := SessionOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Notifier == nil {
		opts.Notifier = nopNotifier{}
	}

	s := &Session{
		store:  store,
		notify: opts.Notifier,
		state:  SessionUnauthenticated,
	}

	clientOpts := []ClientOption{
		WithTokenSource(sessionTokenSource{s}),
		WithAuthRejectionHook(func(*APIError) { s.invalidate() }),
	}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, WithHTTPClient(opts.HTTPClient))
	}
	s.client = NewClient(baseURL, clientOpts...)

	if creds, err := store.LoadCredentials(); err == nil && creds.AccessToken != "" {
		s.creds = creds
		s.state = SessionRestoring
	}

	return s
}

// Client returns the API client bound to this session. Protected calls made
// through it carry the session's current credential and feed authentication
// rejections back into the session as the invalidation signal.
func (s *Session) Client() *Client {
	return s.client
}

// State returns the current lifecycle state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentUser returns the resolved user, or nil outside Authenticated.
func (s *Session) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Capabilities resolves the current user's feature set. Without an
// authenticated user the set is empty: access decisions fail closed.
func (s *Session) Capabilities() FeatureSet {
	user := s.CurrentUser()
	if user == nil {
		return FeatureSet{}
	}
	return CapabilitiesFor(user.Role)
}

// Restore resolves the stored credential into a user via the "who am I" call.
// Outside Restoring it is a no-op.
//
// An authentication rejection discards the stale credential and clears the
// store. A transport failure leaves this run unauthenticated but preserves
// the stored credential: not reaching the server is not a credential verdict,
// and the next start may retry.
func (s *Session) Restore(ctx context.Context) error {
	s.mu.Lock()
	if s.state != SessionRestoring {
		s.mu.Unlock()
		return nil
	}
	startEpoch := s.epoch
	s.mu.Unlock()

	user, err := s.client.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if IsAuthRejection(err) {
		// The rejection hook has already cleared the session and the
		// store. The epoch bump it made came from this call, not from a
		// superseding logout, and never suppresses the verdict.
		return fmt.Errorf("stored credential rejected: %w", err)
	}

	if s.epoch != startEpoch {
		// Logged out or invalidated while the call was in flight; the
		// session stays cleared regardless of what came back.
		return nil
	}

	if err != nil {
		s.creds = nil
		s.user = nil
		s.state = SessionUnauthenticated
		return fmt.Errorf("could not restore session: %w", err)
	}

	s.user = user
	s.state = SessionAuthenticated
	return nil
}

// Login authenticates with a username and password. On success the fresh
// credential and user are adopted atomically, the credential is persisted,
// and a success notification names the user. On failure no state is
// committed and the server's message (or a generic fallback) is surfaced as
// an error notification.
func (s *Session) Login(ctx context.Context, username, password string) (*User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		err := fmt.Errorf("username and password are required")
		s.notify.Error(err.Error())
		return nil, err
	}

	result, err := s.client.Login(ctx, username, password)
	if err != nil {
		msg := "login failed; please try again"
		if apiErr, ok := IsAPIError(err); ok && apiErr.Message != "" {
			msg = apiErr.Message
		}
		s.notify.Error(msg)
		return nil, err
	}

	creds := &Credentials{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
	}
	if err := s.store.SaveCredentials(creds); err != nil {
		// Nothing committed: the session must not claim an authenticated
		// state its next start cannot restore.
		return nil, fmt.Errorf("failed to persist credential: %w", err)
	}

	s.mu.Lock()
	user := result.User
	s.creds = creds
	s.user = &user
	s.state = SessionAuthenticated
	s.epoch++
	s.mu.Unlock()

	s.notify.Success(fmt.Sprintf("Logged in as %s (%s)", user.FullName, user.Role))
	return &user, nil
}

// Logout clears the credential, the user, and the store. It is idempotent,
// immediately effective, and purely local; responses arriving afterwards for
// earlier requests cannot resurrect the session. The info notification is
// emitted only when a held credential was actually cleared, so a repeated
// logout stays silent.
func (s *Session) Logout() error {
	s.mu.Lock()
	hadCredential := s.creds != nil
	s.user = nil
	s.creds = nil
	s.state = SessionUnauthenticated
	s.epoch++
	s.mu.Unlock()

	if err := s.store.DeleteCredentials(); err != nil {
		return fmt.Errorf("failed to clear stored credential: %w", err)
	}
	if hadCredential {
		s.notify.Info("Logged out")
	}
	return nil
}

// invalidate handles an authentication rejection from any protected call.
// The server is the sole arbiter: the credential is discarded process-wide
// and the store cleared. Already-cleared sessions are left untouched.
func (s *Session) invalidate() {
	s.mu.Lock()
	if s.creds == nil {
		s.mu.Unlock()
		return
	}
	s.user = nil
	s.creds = nil
	s.state = SessionInvalid
	s.epoch++
	s.mu.Unlock()

	// Best effort; an unwritable store cannot be allowed to keep a rejected
	// credential alive in memory.
	_ = s.store.DeleteCredentials()
}

// sessionTokenSource yields the session's current credential for per-request
// header injection. It never caches: a cleared session stops authenticating
// instantly.
type sessionTokenSource struct {
	s *Session
}

func (ts sessionTokenSource) Token() (*oauth2.Token, error) {
	ts.s.mu.Lock()
	defer ts.s.mu.Unlock()
	if ts.s.creds == nil {
		return nil, ErrNoCredentials
	}
	return &oauth2.Token{
		AccessToken: ts.s.creds.AccessToken,
		TokenType:   ts.s.creds.TokenType,
	}, nil
}
