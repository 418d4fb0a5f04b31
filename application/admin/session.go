package admin

import "sync"

// Session is the admin authentication state of one storefront. The backend
// remains the authority on whether the token is actually valid.
type Session struct {
	mu            sync.RWMutex
	token         string
	authenticated bool
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated && s.token != ""
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.authenticated = token != ""
}

func (s *Session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.authenticated = false
}
