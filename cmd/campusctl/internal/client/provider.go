package client

import (
	"sync"

	"github.com/campusworks/campus/cmd/campusctl/internal/auth"
	"github.com/campusworks/campus/pkg/sdk"
)

// Provider yields the session backed by the credential store, constructed
// lazily and at most once per invocation.
type Provider struct {
	serverURL string
	notifier  sdk.Notifier

	storeOnce sync.Once
	store     sdk.CredentialStore
	storeErr  error

	sessionOnce sync.Once
	session     *sdk.Session
	sessionErr  error
}

// NewProvider constructs a Provider bound to the given server URL.
// Notifications from session transitions go to notifier.
func NewProvider(serverURL string, notifier sdk.Notifier) *Provider {
	return &Provider{serverURL: serverURL, notifier: notifier}
}

// Store returns the credential store.
func (p *Provider) Store() (sdk.CredentialStore, error) {
	p.storeOnce.Do(func() {
		p.store, p.storeErr = auth.NewFileStore()
	})
	return p.store, p.storeErr
}

// Session returns the session for this invocation. The session adopts any
// stored credential and starts in the restoring state; the access gate is
// responsible for resolving it before any protected surface renders.
func (p *Provider) Session() (*sdk.Session, error) {
	p.sessionOnce.Do(func() {
		store, err := p.Store()
		if err != nil {
			p.sessionErr = err
			return
		}
		p.session = sdk.NewSession(p.serverURL, store, sdk.WithNotifier(p.notifier))
	})
	return p.session, p.sessionErr
}
