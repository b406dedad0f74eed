package otp

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmail = "jane@acme.com"
	testIP    = "203.0.113.10"
	testUA    = "Mozilla/5.0 (X11; Linux x86_64)"
)

// fakeCache is an in-memory Cache with controllable expiry.
type fakeCache struct {
	entries map[string]fakeEntry
}

type fakeEntry struct {
	value     []byte
	expiresAt time.Time
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]fakeEntry)}
}

func (f *fakeCache) Put(key string, value []byte, ttl time.Duration) error {
	f.entries[key] = fakeEntry{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (f *fakeCache) Get(key string) ([]byte, bool, error) {
	entry, ok := f.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(f.entries, key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (f *fakeCache) Forget(key string) error {
	delete(f.entries, key)
	return nil
}

// expire force-expires an entry, simulating TTL passage.
func (f *fakeCache) expire(key string) {
	if entry, ok := f.entries[key]; ok {
		entry.expiresAt = time.Now().Add(-time.Second)
		f.entries[key] = entry
	}
}

func TestIssueAndVerify(t *testing.T) {
	cache := newFakeCache()
	store := NewStore(cache)

	code, err := store.Issue(testEmail, testIP, testUA)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)

	require.NoError(t, store.Verify(testEmail, code, testIP, testUA))

	// Consumed on success: a second submission of the same code fails.
	assert.ErrorIs(t, store.Verify(testEmail, code, testIP, testUA), ErrExpired)
}

func TestVerifyKeyIsCaseInsensitiveOnEmail(t *testing.T) {
	store := NewStore(newFakeCache())

	code, err := store.Issue("Jane@ACME.com", testIP, testUA)
	require.NoError(t, err)

	assert.NoError(t, store.Verify("jane@acme.com", code, testIP, testUA))
}

func TestVerifyWithoutIssue(t *testing.T) {
	store := NewStore(newFakeCache())

	assert.ErrorIs(t, store.Verify(testEmail, "123456", testIP, testUA), ErrExpired)
}

func TestVerifyExpiredRecord(t *testing.T) {
	cache := newFakeCache()
	store := NewStore(cache)

	code, err := store.Issue(testEmail, testIP, testUA)
	require.NoError(t, err)

	cache.expire(CodeKey(testEmail))

	assert.ErrorIs(t, store.Verify(testEmail, code, testIP, testUA), ErrExpired)
}

func TestVerifyWrongCodeBurnsAttempts(t *testing.T) {
	cache := newFakeCache()
	store := NewStore(cache)

	code, err := store.Issue(testEmail, testIP, testUA)
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	for i := 0; i < MaxAttempts; i++ {
		assert.ErrorIs(t, store.Verify(testEmail, wrong, testIP, testUA), ErrInvalidCode)
	}

	// Budget spent: even the correct code is refused and the record dies.
	assert.ErrorIs(t, store.Verify(testEmail, code, testIP, testUA), ErrTooManyAttempts)
	assert.ErrorIs(t, store.Verify(testEmail, code, testIP, testUA), ErrExpired)
}

func TestVerifyOriginBinding(t *testing.T) {
	store := NewStore(newFakeCache())

	code, err := store.Issue(testEmail, testIP, testUA)
	require.NoError(t, err)

	// Correct code from a different IP is an invalid-code failure, not a
	// success and not a distinguishable error.
	assert.ErrorIs(t, store.Verify(testEmail, code, "198.51.100.7", testUA), ErrInvalidCode)

	// Different user agent likewise.
	assert.ErrorIs(t, store.Verify(testEmail, code, testIP, "curl/8.0"), ErrInvalidCode)

	// Origin mismatches burned attempts but the original session still works.
	assert.NoError(t, store.Verify(testEmail, code, testIP, testUA))
}

func TestResendCooldown(t *testing.T) {
	cache := newFakeCache()
	store := NewStore(cache)

	_, err := store.Issue(testEmail, testIP, testUA)
	require.NoError(t, err)
	require.NoError(t, store.ArmCooldown(testEmail))

	_, err = store.Resend(testEmail, testIP, testUA)
	assert.ErrorIs(t, err, ErrResendCooldown)

	cache.expire(CooldownKey(testEmail))

	code, err := store.Resend(testEmail, testIP, testUA)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)

	// Cooldown re-armed by the successful resend.
	_, err = store.Resend(testEmail, testIP, testUA)
	assert.ErrorIs(t, err, ErrResendCooldown)
}

func TestResendResetsAttempts(t *testing.T) {
	cache := newFakeCache()
	store := NewStore(cache)

	first, err := store.Issue(testEmail, testIP, testUA)
	require.NoError(t, err)

	wrong := "000000"
	if wrong == first {
		wrong = "000001"
	}
	for i := 0; i < MaxAttempts-1; i++ {
		assert.ErrorIs(t, store.Verify(testEmail, wrong, testIP, testUA), ErrInvalidCode)
	}

	code, err := store.Resend(testEmail, testIP, testUA)
	require.NoError(t, err)

	// Fresh record, fresh attempt budget.
	if wrong == code {
		wrong = "999999"
	}
	for i := 0; i < MaxAttempts-1; i++ {
		assert.ErrorIs(t, store.Verify(testEmail, wrong, testIP, testUA), ErrInvalidCode)
	}
	assert.NoError(t, store.Verify(testEmail, code, testIP, testUA))
}

func TestForgetDestroysAllState(t *testing.T) {
	cache := newFakeCache()
	store := NewStore(cache)

	code, err := store.Issue(testEmail, testIP, testUA)
	require.NoError(t, err)
	require.NoError(t, store.ArmCooldown(testEmail))

	require.NoError(t, store.Forget(testEmail))

	assert.ErrorIs(t, store.Verify(testEmail, code, testIP, testUA), ErrExpired)

	// Cooldown cleared as well, so a fresh cycle can start immediately.
	_, err = store.Resend(testEmail, testIP, testUA)
	assert.NoError(t, err)
}

func TestGenerateCodeShape(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code, "leading zeros must be preserved")
	}
}
