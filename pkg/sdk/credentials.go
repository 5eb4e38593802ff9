package sdk

import "errors"

// ErrNoCredentials is returned by a CredentialStore when no credential is
// persisted. Absence means logged out.
var ErrNoCredentials = errors.New("no stored credentials")

// Credentials is the persisted authentication material: the opaque bearer
// token issued by the school API. The resolved user is never persisted with
// it; it is re-fetched whenever the credential is adopted so that server-side
// role changes take effect on the next load.
type Credentials struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CredentialStore persists exactly one credential across process restarts.
// SaveCredentials after SaveCredentials replaces, never merges.
type CredentialStore interface {
	// LoadCredentials returns the stored credential, or ErrNoCredentials.
	LoadCredentials() (*Credentials, error)
	// SaveCredentials replaces the stored credential.
	SaveCredentials(*Credentials) error
	// DeleteCredentials removes the stored credential. Deleting an absent
	// credential is not an error.
	DeleteCredentials() error
}

// MemoryStore is an in-process CredentialStore for tests and ephemeral use.
type MemoryStore struct {
	creds *Credentials
}

var _ CredentialStore = (*MemoryStore)(nil)

func (m *MemoryStore) LoadCredentials() (*Credentials, error) {
	if m.creds == nil {
		return nil, ErrNoCredentials
	}
	c := *m.creds
	return &c, nil
}

func (m *MemoryStore) SaveCredentials(creds *Credentials) error {
	c := *creds
	m.creds = &c
	return nil
}

func (m *MemoryStore) DeleteCredentials() error {
	m.creds = nil
	return nil
}
