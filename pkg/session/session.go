package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
	"github.com/volunteerhub/volunteerhub-cli/pkg/localstore"
)

// Durable storage keys. Volunteer and admin identities share one
// namespace; organizations have their own. The two are never merged.
const (
	KeyToken  = "token"
	KeyUserID = "userId"
	KeyUser   = "user"

	KeyOrganizationToken = "organizationToken"
	KeyOrganizationID    = "organizationId"
	KeyOrganization      = "organization"
)

// Store is the single source of truth for who is logged in and with
// what token. All mutation goes through the named transitions below;
// there are no ad hoc field writes.
type Store struct {
	mu sync.Mutex

	storage *localstore.Store
	logger  *zap.Logger

	identity        *model.Identity
	token           string
	isAuthenticated bool
	loading         bool
	lastError       string
}

// New creates a session store and restores any previously persisted
// credentials before first use, so a restart does not appear logged
// out. Restore is synchronous and never fails the constructor: a
// restored token may still be invalidated server-side by a 401 on the
// first protected call.
func New(storage *localstore.Store, logger *zap.Logger) *Store {
	s := &Store{
		storage: storage,
		logger:  logger,
	}
	s.restore()
	return s
}

// LoginStart marks a login attempt in flight and clears any prior error
func (s *Store) LoginStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.lastError = ""
}

// LoginSuccess sets the current identity and authenticated flag, and
// persists the identity and token together. A token may be omitted to
// refresh identity fields without re-authenticating; the stored token
// is kept in that case.
func (s *Store) LoginSuccess(identity *model.Identity, token string) error {
	if identity == nil {
		return fmt.Errorf("identity must not be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	effectiveToken := s.token
	if token != "" {
		effectiveToken = token
	}

	identityJSON, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to encode identity: %w", err)
	}

	// Token and identity land together or not at all
	var batch map[string]string
	if identity.Role == model.RoleOrganization {
		batch = map[string]string{
			KeyOrganizationToken: effectiveToken,
			KeyOrganizationID:    identity.ID,
			KeyOrganization:      string(identityJSON),
		}
	} else {
		batch = map[string]string{
			KeyToken:  effectiveToken,
			KeyUserID: identity.ID,
			KeyUser:   string(identityJSON),
		}
	}
	if err := s.storage.SetBatch(batch); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.token = effectiveToken
	s.identity = identity
	s.isAuthenticated = true
	s.loading = false
	s.lastError = ""

	s.logger.Info("Session established",
		zap.String("id", identity.ID),
		zap.String("role", string(identity.Role)))

	return nil
}

// LoginFailure records a failed login attempt. The current identity
// and token are left untouched.
func (s *Store) LoginFailure(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.lastError = message
}

// Logout clears the identity, token, and authenticated flag, and
// removes the durable storage entries. It is idempotent and makes no
// network call; routing back to the login view is the caller's job.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.storage.Delete(
		KeyToken, KeyUserID, KeyUser,
		KeyOrganizationToken, KeyOrganizationID, KeyOrganization,
	)
	if err != nil {
		return fmt.Errorf("failed to clear session storage: %w", err)
	}

	s.identity = nil
	s.token = ""
	s.isAuthenticated = false
	s.loading = false
	s.lastError = ""

	return nil
}

// ClearError clears the last recorded login error
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
}

// Identity returns the current identity, or nil when logged out
func (s *Store) Identity() *model.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Token returns the current bearer token, or empty when logged out
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether a principal is signed in
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAuthenticated
}

// LastError returns the most recent login error message, if any
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// restore reads previously persisted credentials. The token alone
// decides the initial authenticated flag; token validity is only
// discovered lazily by the first protected call. The volunteer/admin
// namespace takes precedence over the organization namespace.
func (s *Store) restore() {
	for _, ns := range []struct {
		tokenKey    string
		identityKey string
	}{
		{KeyToken, KeyUser},
		{KeyOrganizationToken, KeyOrganization},
	} {
		token, err := s.storage.Get(ns.tokenKey)
		if err != nil {
			if !errors.Is(err, localstore.ErrNotFound) {
				s.logger.Warn("Failed to read stored token", zap.Error(err))
			}
			continue
		}
		if token == "" {
			continue
		}

		s.token = token
		s.isAuthenticated = true

		identityJSON, err := s.storage.Get(ns.identityKey)
		if err != nil {
			return
		}

		var identity model.Identity
		if err := json.Unmarshal([]byte(identityJSON), &identity); err != nil {
			s.logger.Warn("Ignoring corrupt stored identity", zap.Error(err))
			return
		}
		s.identity = &identity
		return
	}
}
