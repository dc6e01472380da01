// Package testfixtures provides a mock backend and test utilities for TUI
// testing.
//
// MockBackend implements every call the screens make. Results are
// configurable per call and every call is recorded:
//
//	func TestMyScreen(t *testing.T) {
//	    backend := testfixtures.NewMockBackend()
//	    backend.CPUs = testfixtures.CPUs()
//
//	    // drive the screen...
//	    require.Equal(t, 1, backend.Calls("ListCPUs"))
//	}
package testfixtures

import (
	"context"
	"sync"

	"github.com/mark3labs/partsync/internal/api"
	"github.com/mark3labs/partsync/internal/hardware"
)

// Dev credentials accepted by MockBackend by default.
const (
	MockEmail    = "admin@example.com"
	MockPassword = "secret"
	MockOTP      = "123456"
	MockToken    = "token-1"
)

// MockBackend is a thread-safe fake of the PartSync backend.
type MockBackend struct {
	mu    sync.Mutex
	calls map[string]int

	CPUs    []hardware.CPU
	CPUsErr error

	Recs    []hardware.Recommendation
	RecsErr error
	// LastRequest is the most recent recommendation payload.
	LastRequest hardware.RecommendRequest

	LoginErr  error
	VerifyErr error
	// LoginBlock, when set, holds AdminLogin until closed.
	LoginBlock chan struct{}

	Catalog    map[hardware.Kind][]api.Item
	CatalogErr error
	AddMessage string
	AddErr     error
	// Added records every successful add, in order.
	Added []map[string]string
}

// NewMockBackend creates a backend with fixture data.
func NewMockBackend() *MockBackend {
	catalog := make(map[hardware.Kind][]api.Item, len(hardware.Kinds))
	for _, k := range hardware.Kinds {
		catalog[k] = CatalogItems(k)
	}
	return &MockBackend{
		calls:      make(map[string]int),
		CPUs:       CPUs(),
		Recs:       Recommendations(),
		Catalog:    catalog,
		AddMessage: "added",
	}
}

func (m *MockBackend) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[name]++
}

// Calls returns how often method name was called.
func (m *MockBackend) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *MockBackend) ListCPUs(ctx context.Context) ([]hardware.CPU, error) {
	m.record("ListCPUs")
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CPUsErr != nil {
		return nil, m.CPUsErr
	}
	return m.CPUs, nil
}

func (m *MockBackend) Recommend(ctx context.Context, req hardware.RecommendRequest) ([]hardware.Recommendation, error) {
	m.record("Recommend")
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRequest = req
	if m.RecsErr != nil {
		return nil, m.RecsErr
	}
	return m.Recs, nil
}

func (m *MockBackend) AdminLogin(ctx context.Context, email, password string) (*api.LoginResult, error) {
	m.record("AdminLogin")
	m.mu.Lock()
	block := m.LoginBlock
	m.mu.Unlock()
	if block != nil {
		<-block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoginErr != nil {
		return nil, m.LoginErr
	}
	if email != MockEmail || password != MockPassword {
		return &api.LoginResult{Message: "Invalid email or password"}, nil
	}
	return &api.LoginResult{Success: true}, nil
}

func (m *MockBackend) VerifyOTP(ctx context.Context, email, otp string) (*api.LoginResult, error) {
	m.record("VerifyOTP")
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.VerifyErr != nil {
		return nil, m.VerifyErr
	}
	if email != MockEmail || otp != MockOTP {
		return &api.LoginResult{Message: "Invalid OTP"}, nil
	}
	return &api.LoginResult{Success: true, Token: MockToken}, nil
}

func (m *MockBackend) ListCatalog(ctx context.Context, kind hardware.Kind) ([]api.Item, error) {
	m.record("ListCatalog")
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CatalogErr != nil {
		return nil, m.CatalogErr
	}
	return m.Catalog[kind], nil
}

func (m *MockBackend) AddCatalogItem(ctx context.Context, kind hardware.Kind, fields map[string]string) (string, error) {
	m.record("AddCatalogItem")
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddErr != nil {
		return "", m.AddErr
	}
	m.Added = append(m.Added, fields)
	return m.AddMessage, nil
}

// MemSecrets is an in-memory admin.Secrets.
type MemSecrets struct {
	mu   sync.Mutex
	data map[string]string
	// NotFound is returned by Get for missing keys.
	NotFound error
}

// NewMemSecrets creates an empty store; missing keys return notFound.
func NewMemSecrets(notFound error) *MemSecrets {
	return &MemSecrets{data: make(map[string]string), NotFound: notFound}
}

func (s *MemSecrets) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return "", s.NotFound
	}
	return v, nil
}

func (s *MemSecrets) Put(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemSecrets) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
