package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmailInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain email", "jane@acme.com", "acme.com"},
		{"subdomain email", "user@sub.domain.tld", "sub.domain.tld"},
		{"uppercase email", "Jane.Doe@ACME.COM", "acme.com"},
		{"surrounding whitespace", "  jane@acme.com  ", "acme.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeURLNoise(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"scheme www path port", "HTTPS://WWW.EXAMPLE.COM:443/path", "example.com"},
		{"http scheme", "http://acme.com", "acme.com"},
		{"www prefix only", "www.acme.com", "acme.com"},
		{"path stripped", "acme.com/vendors/list", "acme.com"},
		{"port stripped", "acme.com:8080", "acme.com"},
		{"mixed-case www", "WwW.Acme.Com", "acme.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"no dot", "localhost"},
		{"leading dot", ".acme.com"},
		{"trailing dot", "acme.com."},
		{"leading hyphen", "-acme.com"},
		{"trailing hyphen", "acme.com-"},
		{"consecutive dots", "acme..com"},
		{"label leading hyphen", "foo.-bar.com"},
		{"label trailing hyphen", "foo-.bar.com"},
		{"multiple at signs", "a@b@c.com"},
		{"empty local part", "@acme.com"},
		{"empty domain part", "jane@"},
		{"illegal characters", "ac_me.com"},
		{"single char tld", "acme.c"},
		{"numeric tld", "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.input)
			assert.ErrorIs(t, err, ErrInvalidDomain)
		})
	}
}

func TestNormalizeLabelLength(t *testing.T) {
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}

	_, err := Normalize(string(long) + ".com")
	assert.ErrorIs(t, err, ErrInvalidDomain)

	ok, err := Normalize(string(long[:63]) + ".com")
	assert.NoError(t, err)
	assert.Equal(t, string(long[:63])+".com", ok)
}

func TestNormalizeDomainRejectsEmail(t *testing.T) {
	_, err := NormalizeDomain("jane@acme.com")
	assert.ErrorIs(t, err, ErrInvalidDomain)

	got, err := NormalizeDomain("https://www.acme.com/about")
	assert.NoError(t, err)
	assert.Equal(t, "acme.com", got)
}

func TestIsBlockedProvider(t *testing.T) {
	denylist := []string{"gmail.com", "yahoo.com", "outlook.com"}

	assert.True(t, IsBlockedProvider("user@gmail.com", denylist))
	assert.True(t, IsBlockedProvider("USER@GMAIL.COM", denylist))
	assert.True(t, IsBlockedProvider("user@www.yahoo.com", denylist))
	assert.False(t, IsBlockedProvider("user@acme-corp.com", denylist))
	assert.False(t, IsBlockedProvider("user@mail.gmail.com", denylist))

	// Malformed input defers to other validators instead of blocking.
	assert.False(t, IsBlockedProvider("not-an-email", denylist))
	assert.False(t, IsBlockedProvider("a@b@gmail.com", denylist))
	assert.False(t, IsBlockedProvider("", denylist))
}
