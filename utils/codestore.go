package utils

import (
	"errors"
	"sync"
	"time"
)

// CodeTTL is how long an emailed verification code stays valid.
const CodeTTL = 10 * time.Minute

// ProfileTTL is how long a verified email may wait before the profile step
// completes. After that the applicant has to restart from step 1.
const ProfileTTL = 1 * time.Hour

var (
	ErrNoPendingCode = errors.New("no pending verification code for this email")
	ErrCodeExpired   = errors.New("verification code has expired")
	ErrCodeMismatch  = errors.New("invalid verification code")
	ErrNotVerified   = errors.New("email has not been verified")
)

type pendingRegistration struct {
	Code         string
	PasswordHash string
	Expiry       time.Time
	Verified     bool
}

// VerificationStore holds in-flight registrations keyed by email: the emailed
// code while verification is pending, then the captured password hash until
// the profile step completes. One entry per email; re-running step 1
// overwrites any previous state. The clock is injectable so expiry logic is
// testable without real delays.
type VerificationStore struct {
	mu      sync.Mutex
	entries map[string]pendingRegistration
	now     func() time.Time
}

func NewVerificationStore(clock func() time.Time) *VerificationStore {
	if clock == nil {
		clock = time.Now
	}
	return &VerificationStore{
		entries: make(map[string]pendingRegistration),
		now:     clock,
	}
}

// Verifications is the process-wide store used by the registration workflow.
var Verifications = NewVerificationStore(nil)

// Put stores a freshly issued code, invalidating any prior code for the email.
func (s *VerificationStore) Put(email, code, passwordHash string) {
	s.mu.Lock()
	s.entries[email] = pendingRegistration{
		Code:         code,
		PasswordHash: passwordHash,
		Expiry:       s.now().Add(CodeTTL),
	}
	s.mu.Unlock()
}

// Verify checks the submitted code. Codes are one-time use: success clears
// the code so a replay fails with ErrNoPendingCode, and an expired entry is
// deleted on first sight so the code stays unusable even if resubmitted.
func (s *VerificationStore) Verify(email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[email]
	if !ok || entry.Code == "" {
		return ErrNoPendingCode
	}

	if s.now().After(entry.Expiry) {
		delete(s.entries, email)
		return ErrCodeExpired
	}

	if entry.Code != code {
		return ErrCodeMismatch
	}

	entry.Code = ""
	entry.Verified = true
	entry.Expiry = s.now().Add(ProfileTTL)
	s.entries[email] = entry
	return nil
}

// ConsumeVerified hands back the password hash captured at step 1 and removes
// the entry. Fails unless the email passed verification first.
func (s *VerificationStore) ConsumeVerified(email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[email]
	if !ok || !entry.Verified {
		return "", ErrNotVerified
	}
	if s.now().After(entry.Expiry) {
		delete(s.entries, email)
		return "", ErrNotVerified
	}

	delete(s.entries, email)
	return entry.PasswordHash, nil
}

// Sweep drops expired entries and reports how many were removed.
func (s *VerificationStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	cutoff := s.now()
	for email, entry := range s.entries {
		if cutoff.After(entry.Expiry) {
			delete(s.entries, email)
			removed++
		}
	}
	return removed
}
