package auth

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestManagerRoundTrip(t *testing.T) {
	mock := NewMockStore()
	manager := NewManagerWithStores(mock)

	profile := &Profile{
		Name:       "personal",
		OAuthToken: "AAAABBBBCCCCDDDD1234",
		UserID:     "12345",
	}
	if err := manager.Store(profile); err != nil {
		t.Fatalf("Failed to store profile: %v", err)
	}

	retrieved, err := manager.Retrieve("personal")
	if err != nil {
		t.Fatalf("Failed to retrieve profile: %v", err)
	}
	if retrieved.OAuthToken != profile.OAuthToken || retrieved.UserID != "12345" {
		t.Errorf("Profile did not round-trip: %+v", retrieved)
	}
	if retrieved.LastModified.IsZero() {
		t.Error("Expected LastModified to be set on store")
	}

	profiles, err := manager.List()
	if err != nil || len(profiles) != 1 {
		t.Errorf("Expected one listed profile, got %d (%v)", len(profiles), err)
	}

	if err := manager.Delete("personal"); err != nil {
		t.Fatalf("Failed to delete profile: %v", err)
	}
	if _, err := manager.Retrieve("personal"); err == nil {
		t.Error("Expected retrieval to fail after deletion")
	}
	if mock.Count() != 0 {
		t.Errorf("Expected empty store, got %d profiles", mock.Count())
	}
}

func TestManagerValidation(t *testing.T) {
	manager := NewManagerWithStores(NewMockStore())

	if err := manager.Store(&Profile{OAuthToken: "tok"}); err == nil {
		t.Error("Expected a nameless profile to be rejected")
	}
	if err := manager.Store(&Profile{Name: "personal"}); err == nil {
		t.Error("Expected a tokenless profile to be rejected")
	}
}

func TestManagerFallsBackAcrossStores(t *testing.T) {
	failing := NewMockStore()
	failing.StoreError = errors.New("store down")
	failing.RetrieveError = ErrProfileNotFound
	working := NewMockStore()
	manager := NewManagerWithStores(failing, working)

	profile := &Profile{Name: "personal", OAuthToken: "AAAABBBBCCCCDDDD1234"}
	if err := manager.Store(profile); err != nil {
		t.Fatalf("Expected the fallback store to accept the profile: %v", err)
	}
	if !working.Exists("personal") {
		t.Error("Expected the profile to land in the working store")
	}

	if _, err := manager.Retrieve("personal"); err != nil {
		t.Errorf("Expected retrieval through the fallback: %v", err)
	}
}

func TestSanitizeMasksToken(t *testing.T) {
	profile := &Profile{Name: "personal", OAuthToken: "AAAABBBBCCCCDDDD1234"}

	masked := Sanitize(profile)
	if masked.OAuthToken == profile.OAuthToken {
		t.Error("Expected the token to be masked")
	}
	if masked.OAuthToken != "AAAA...1234" {
		t.Errorf("Unexpected mask: %q", masked.OAuthToken)
	}
	if masked.Name != "personal" {
		t.Error("Expected the name to stay readable")
	}

	if short := Sanitize(&Profile{Name: "x", OAuthToken: "tok"}); short.OAuthToken != "********" {
		t.Errorf("Expected short tokens fully masked, got %q", short.OAuthToken)
	}
}

func TestEnvironmentStore(t *testing.T) {
	t.Setenv("SWARM_OAUTH_TOKEN", "ENVTOKEN123456789012")
	t.Setenv("SWARM_USER_ID", "987")

	store := NewEnvironmentStore()
	profile, err := store.Retrieve("")
	if err != nil {
		t.Fatalf("Failed to retrieve from environment: %v", err)
	}
	if profile.Name != "default" || profile.OAuthToken != "ENVTOKEN123456789012" || profile.UserID != "987" {
		t.Errorf("Unexpected profile: %+v", profile)
	}

	if err := store.Store(profile); err != ErrStoreUnavailable {
		t.Errorf("Expected store to be read-only, got %v", err)
	}

	t.Setenv("SWARM_OAUTH_TOKEN", "")
	t.Setenv("OAUTH_TOKEN", "LEGACYTOKEN123456789")
	profile, err = store.Retrieve("")
	if err != nil || profile.OAuthToken != "LEGACYTOKEN123456789" {
		t.Errorf("Expected the legacy variable to be honored, got %+v (%v)", profile, err)
	}
}

func TestEncryptedFileStore(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SWARM_PASSPHRASE", "test-passphrase")
	path := filepath.Join(dir, "tokens.enc")

	store, err := NewEncryptedFileStore(path)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	profile := &Profile{
		Name:         "personal",
		OAuthToken:   "SECRETTOKEN123456789",
		LastModified: time.Now(),
	}
	if err := store.Store(profile); err != nil {
		t.Fatalf("Failed to store: %v", err)
	}

	// The token must not appear in the file in the clear
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(content) == 0 || bytes.Contains(content, []byte(profile.OAuthToken)) {
		t.Error("Expected the stored file to be encrypted")
	}

	// A fresh store with the same passphrase reads it back
	reopened, err := NewEncryptedFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	retrieved, err := reopened.Retrieve("personal")
	if err != nil {
		t.Fatalf("Failed to retrieve: %v", err)
	}
	if retrieved.OAuthToken != profile.OAuthToken {
		t.Errorf("Token did not round-trip: %q", retrieved.OAuthToken)
	}

	// Deleting the last profile removes the file
	if err := reopened.Delete("personal"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected the file to be removed with its last profile")
	}
}
