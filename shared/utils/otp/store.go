package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Cache is the transient TTL key-value store the OTP protocol runs on. The
// Redis cache manager implements it in production; tests use an in-memory
// fake.
type Cache interface {
	Put(key string, value []byte, ttl time.Duration) error
	Get(key string) ([]byte, bool, error)
	Forget(key string) error
}

const (
	// CodeLength is the number of digits in a verification code.
	CodeLength = 6

	// TTL is how long an issued code stays valid.
	TTL = 2 * time.Minute

	// MaxAttempts is the number of failed verifications before the record
	// is destroyed.
	MaxAttempts = 5

	// ResendCooldown is the minimum wait between issue/resend cycles for
	// one email.
	ResendCooldown = 30 * time.Second
)

var (
	// ErrExpired - no record for the email: never issued, already
	// consumed, or past its TTL.
	ErrExpired = errors.New("verification code has expired")

	// ErrTooManyAttempts - the attempt budget is spent and the record has
	// been destroyed; a fresh issue cycle is required.
	ErrTooManyAttempts = errors.New("too many failed attempts")

	// ErrInvalidCode - wrong code, or right code from the wrong origin.
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrResendCooldown - a resend was requested inside the cooldown
	// window.
	ErrResendCooldown = errors.New("please wait before requesting a new code")
)

// record is the cached state of one pending verification. Only the bcrypt
// hash of the code is stored; the plaintext exists solely in the dispatched
// email.
type record struct {
	CodeHash  string    `json:"code_hash"`
	Attempts  int       `json:"attempts"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	IssuedAt  time.Time `json:"issued_at"`
}

// Store manages one-time verification codes for registration and login.
// All state lives in the cache; the store itself is stateless and safe for
// concurrent use.
type Store struct {
	cache Cache
}

func NewStore(cache Cache) *Store {
	return &Store{cache: cache}
}

// Issue generates a fresh code bound to the requesting origin and stores it
// under the email's hash key for the protocol TTL. The plaintext code is
// returned once for dispatch and never persisted.
func (s *Store) Issue(email, ipAddress, userAgent string) (string, error) {
	code, err := GenerateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash verification code: %w", err)
	}

	rec := record{
		CodeHash:  string(codeHash),
		Attempts:  0,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		IssuedAt:  time.Now().UTC(),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal verification record: %w", err)
	}

	if err := s.cache.Put(CodeKey(email), data, TTL); err != nil {
		return "", fmt.Errorf("failed to store verification code: %w", err)
	}

	return code, nil
}

// Verify checks a submitted code against the stored record. The submitting
// origin must match the issuing origin; a mismatch burns an attempt exactly
// like a wrong code, so a stolen code cannot be replayed from another
// session. On success the record is destroyed.
func (s *Store) Verify(email, code, ipAddress, userAgent string) error {
	key := CodeKey(email)

	data, found, err := s.cache.Get(key)
	if err != nil {
		return fmt.Errorf("failed to read verification code: %w", err)
	}
	if !found {
		return ErrExpired
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		// Unreadable record: treat as expired, force a fresh cycle.
		s.cache.Forget(key)
		return ErrExpired
	}

	if rec.Attempts >= MaxAttempts {
		if err := s.cache.Forget(key); err != nil {
			return fmt.Errorf("failed to destroy exhausted verification code: %w", err)
		}
		return ErrTooManyAttempts
	}

	if rec.IPAddress != ipAddress || rec.UserAgent != userAgent {
		return s.failAttempt(key, rec)
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.CodeHash), []byte(code)) != nil {
		return s.failAttempt(key, rec)
	}

	if err := s.cache.Forget(key); err != nil {
		return fmt.Errorf("failed to consume verification code: %w", err)
	}

	return nil
}

// Resend issues a replacement code unless the per-email cooldown is still
// active. The replacement resets the attempt counter and re-arms the
// cooldown.
func (s *Store) Resend(email, ipAddress, userAgent string) (string, error) {
	cooldownKey := CooldownKey(email)

	_, active, err := s.cache.Get(cooldownKey)
	if err != nil {
		return "", fmt.Errorf("failed to read resend cooldown: %w", err)
	}
	if active {
		return "", ErrResendCooldown
	}

	code, err := s.Issue(email, ipAddress, userAgent)
	if err != nil {
		return "", err
	}

	if err := s.ArmCooldown(email); err != nil {
		return "", err
	}

	return code, nil
}

// ArmCooldown starts the resend cooldown window for an email. Called after
// the initial issue as well, so the first resend cannot arrive immediately.
func (s *Store) ArmCooldown(email string) error {
	if err := s.cache.Put(CooldownKey(email), []byte("1"), ResendCooldown); err != nil {
		return fmt.Errorf("failed to arm resend cooldown: %w", err)
	}
	return nil
}

// Forget destroys any verification state for an email, both the code record
// and the cooldown flag. Used when an outer flow is restarted or a dispatch
// failure forces cleanup of an already-written record.
func (s *Store) Forget(email string) error {
	if err := s.cache.Forget(CodeKey(email)); err != nil {
		return err
	}
	return s.cache.Forget(CooldownKey(email))
}

// failAttempt burns one attempt on a live record, preserving the remaining
// TTL window as closely as the cache allows.
func (s *Store) failAttempt(key string, rec record) error {
	rec.Attempts++

	remaining := TTL - time.Since(rec.IssuedAt)
	if remaining <= 0 {
		s.cache.Forget(key)
		return ErrExpired
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal verification record: %w", err)
	}
	if err := s.cache.Put(key, data, remaining); err != nil {
		return fmt.Errorf("failed to record failed attempt: %w", err)
	}

	return ErrInvalidCode
}

// GenerateCode returns a uniformly random numeric code with leading zeros
// preserved, drawn from crypto/rand.
func GenerateCode() (string, error) {
	max := new(big.Int)
	max.Exp(big.NewInt(10), big.NewInt(int64(CodeLength)), nil)

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", CodeLength, n), nil
}

// CodeKey derives the cache key for an email's verification record from a
// one-way hash of the lowercased address.
func CodeKey(email string) string {
	return "otp:" + EmailHash(email)
}

// CooldownKey derives the cache key for an email's resend cooldown flag.
func CooldownKey(email string) string {
	return "otp:cooldown:" + EmailHash(email)
}

// EmailHash is the one-way key derivation shared by the OTP keys and the
// sibling flow state keyed to the same email (pending registrations).
func EmailHash(email string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}
