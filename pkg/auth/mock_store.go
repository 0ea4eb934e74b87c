package auth

import "sync"

// MockStore is an in-memory TokenStore for tests, with error injection
type MockStore struct {
	profiles map[string]*Profile
	mu       sync.RWMutex

	StoreError    error
	RetrieveError error
	ListError     error
	DeleteError   error
}

func NewMockStore() *MockStore {
	return &MockStore{profiles: make(map[string]*Profile)}
}

func (m *MockStore) Store(profile *Profile) error {
	if m.StoreError != nil {
		return m.StoreError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if profile == nil || profile.Name == "" {
		return ErrInvalidProfile
	}
	copied := *profile
	m.profiles[profile.Name] = &copied
	return nil
}

func (m *MockStore) Retrieve(name string) (*Profile, error) {
	if m.RetrieveError != nil {
		return nil, m.RetrieveError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if name == "" {
		return nil, ErrInvalidProfile
	}
	profile, exists := m.profiles[name]
	if !exists {
		return nil, ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (m *MockStore) List() ([]*Profile, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var profiles []*Profile
	for _, p := range m.profiles {
		copied := *p
		profiles = append(profiles, &copied)
	}
	return profiles, nil
}

func (m *MockStore) Delete(name string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if name == "" {
		return ErrInvalidProfile
	}
	if _, exists := m.profiles[name]; !exists {
		return ErrProfileNotFound
	}
	delete(m.profiles, name)
	return nil
}

func (m *MockStore) Exists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.profiles[name]
	return exists
}

// Count returns the number of stored profiles
func (m *MockStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.profiles)
}
