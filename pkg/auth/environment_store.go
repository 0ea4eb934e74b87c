package auth

import (
	"os"
	"time"
)

// EnvironmentStore reads a token from environment variables, for scripts
// and CI where a keychain is unavailable. It is read-only.
type EnvironmentStore struct{}

func NewEnvironmentStore() *EnvironmentStore {
	return &EnvironmentStore{}
}

func envToken() string {
	if token := os.Getenv("SWARM_OAUTH_TOKEN"); token != "" {
		return token
	}
	return os.Getenv("OAUTH_TOKEN")
}

// Store is not supported for environment variables
func (e *EnvironmentStore) Store(profile *Profile) error {
	return ErrStoreUnavailable
}

func (e *EnvironmentStore) Retrieve(name string) (*Profile, error) {
	token := envToken()
	if token == "" {
		return nil, ErrProfileNotFound
	}

	if name == "" {
		name = "default"
	}
	return &Profile{
		Name:         name,
		OAuthToken:   token,
		UserID:       os.Getenv("SWARM_USER_ID"),
		LastModified: time.Now(),
	}, nil
}

func (e *EnvironmentStore) List() ([]*Profile, error) {
	profile, err := e.Retrieve("")
	if err != nil {
		return []*Profile{}, nil
	}
	return []*Profile{profile}, nil
}

// Delete is not supported for environment variables
func (e *EnvironmentStore) Delete(name string) error {
	return ErrStoreUnavailable
}

func (e *EnvironmentStore) Exists(name string) bool {
	return envToken() != ""
}
