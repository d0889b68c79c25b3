package middleware

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminCookieName is the HTTP-only cookie carrying the admin session token.
const AdminCookieName = "adminToken"

// AdminSessionTTL is how long an admin session stays valid after login.
const AdminSessionTTL = 24 * time.Hour

// AdminSession is the server-side record behind an opaque session token.
type AdminSession struct {
	UserID    uint
	Email     string
	Role      string
	CreatedAt time.Time
}

// SessionStore keeps admin sessions in process memory. Sessions do not
// survive a restart and are not shared across instances; acceptable for the
// single-instance deployment this application targets.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]AdminSession
	now      func() time.Time
}

func NewSessionStore(clock func() time.Time) *SessionStore {
	if clock == nil {
		clock = time.Now
	}
	return &SessionStore{
		sessions: make(map[string]AdminSession),
		now:      clock,
	}
}

// AdminSessions is the process-wide session store.
var AdminSessions = NewSessionStore(nil)

// Create mints an opaque token for the given admin identity.
func (s *SessionStore) Create(userID uint, email, role string) string {
	token := uuid.NewString() + uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = AdminSession{
		UserID:    userID,
		Email:     email,
		Role:      role,
		CreatedAt: s.now(),
	}
	s.mu.Unlock()
	return token
}

// Verify returns the session behind the token, deleting it when expired.
func (s *SessionStore) Verify(token string) (AdminSession, bool) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return AdminSession{}, false
	}

	if s.now().Sub(session.CreatedAt) > AdminSessionTTL {
		s.Destroy(token)
		return AdminSession{}, false
	}
	return session, true
}

func (s *SessionStore) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// AdminAuthMiddleware gates admin-only routes. The token is read from the
// adminToken cookie, falling back to a Bearer Authorization header.
func AdminAuthMiddleware(c *fiber.Ctx) error {
	token := c.Cookies(AdminCookieName)
	if token == "" {
		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = authHeader[len("Bearer "):]
		}
	}

	if token == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	session, ok := AdminSessions.Verify(token)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Session expired or invalid!", nil)
	}

	c.Locals("adminSession", session)
	return c.Next()
}
