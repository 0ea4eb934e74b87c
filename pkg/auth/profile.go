// Package auth stores Foursquare OAuth tokens. Tokens go to the system
// keychain when one is available, with an encrypted file fallback; plain
// environment variables are honored last for scripted use.
package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Profile is a named OAuth credential
type Profile struct {
	Name         string    `json:"name"`
	OAuthToken   string    `json:"oauth_token"`
	UserID       string    `json:"user_id,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// TokenStore is the interface for persisting OAuth profiles
type TokenStore interface {
	Store(profile *Profile) error
	Retrieve(name string) (*Profile, error)
	List() ([]*Profile, error)
	Delete(name string) error
	Exists(name string) bool
}

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrInvalidProfile   = errors.New("invalid profile")
	ErrStoreUnavailable = errors.New("token store unavailable")
)

// Manager chains token stores with fallback
type Manager struct {
	stores []TokenStore
}

// NewManager builds the store chain: keychain when available, encrypted
// file always, environment last
func NewManager() (*Manager, error) {
	var stores []TokenStore

	if keyringStore, err := NewKeyringStore(); err == nil {
		stores = append(stores, keyringStore)
	}

	configDir, err := getConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	encryptedStore, err := NewEncryptedFileStore(filepath.Join(configDir, "tokens.enc"))
	if err != nil {
		return nil, fmt.Errorf("failed to create encrypted store: %w", err)
	}
	stores = append(stores, encryptedStore)

	stores = append(stores, NewEnvironmentStore())

	return &Manager{stores: stores}, nil
}

// NewManagerWithStores builds a manager over an explicit store chain
func NewManagerWithStores(stores ...TokenStore) *Manager {
	return &Manager{stores: stores}
}

// Store saves a profile to the first store that accepts it
func (m *Manager) Store(profile *Profile) error {
	if profile.Name == "" {
		return errors.New("profile name is required")
	}
	if profile.OAuthToken == "" {
		return errors.New("OAuth token is required")
	}

	profile.LastModified = time.Now()

	var lastErr error
	for _, store := range m.stores {
		if err := store.Store(profile); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}

	if lastErr != nil {
		return fmt.Errorf("failed to store profile: %w", lastErr)
	}
	return errors.New("no available token stores")
}

// Retrieve gets a profile from the first store that has it
func (m *Manager) Retrieve(name string) (*Profile, error) {
	for _, store := range m.stores {
		if profile, err := store.Retrieve(name); err == nil && profile != nil {
			return profile, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
}

// RetrieveDefault gets the environment profile when set, otherwise the
// first stored one
func (m *Manager) RetrieveDefault() (*Profile, error) {
	if envStore, ok := m.stores[len(m.stores)-1].(*EnvironmentStore); ok {
		if profile, err := envStore.Retrieve(""); err == nil && profile != nil {
			return profile, nil
		}
	}

	profiles, err := m.List()
	if err == nil && len(profiles) > 0 {
		return profiles[0], nil
	}

	return nil, errors.New("no stored token - run 'swarmscraper auth login' or set SWARM_OAUTH_TOKEN")
}

// List merges the profiles of every store, newest modification winning
func (m *Manager) List() ([]*Profile, error) {
	merged := make(map[string]*Profile)

	for _, store := range m.stores {
		profiles, err := store.List()
		if err != nil {
			continue
		}
		for _, p := range profiles {
			if existing, ok := merged[p.Name]; !ok || p.LastModified.After(existing.LastModified) {
				merged[p.Name] = p
			}
		}
	}

	var result []*Profile
	for _, p := range merged {
		result = append(result, p)
	}
	return result, nil
}

// Delete removes a profile from every store that holds it
func (m *Manager) Delete(name string) error {
	var deleted bool
	var lastErr error

	for _, store := range m.stores {
		if err := store.Delete(name); err == nil {
			deleted = true
		} else {
			lastErr = err
		}
	}

	if !deleted && lastErr != nil {
		return fmt.Errorf("failed to delete profile: %w", lastErr)
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return nil
}

// getConfigDir returns the per-user configuration directory
func getConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, "Library", "Application Support", "swarmscraper")
	case "windows":
		configDir = filepath.Join(os.Getenv("APPDATA"), "swarmscraper")
	default:
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			configDir = filepath.Join(xdgConfig, "swarmscraper")
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			configDir = filepath.Join(home, ".config", "swarmscraper")
		}
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return configDir, nil
}

// Sanitize returns a copy with the token masked for display
func Sanitize(profile *Profile) *Profile {
	if profile == nil {
		return nil
	}
	return &Profile{
		Name:         profile.Name,
		OAuthToken:   maskToken(profile.OAuthToken),
		UserID:       profile.UserID,
		LastModified: profile.LastModified,
	}
}

func maskToken(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "..." + s[len(s)-4:]
}
