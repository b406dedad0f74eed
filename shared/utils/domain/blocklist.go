package domain

// IsBlockedProvider reports whether the given email (or bare domain) belongs
// to one of the denylisted consumer webmail providers. Input that cannot be
// normalized is not blocked here; malformed addresses are left to the other
// validators.
func IsBlockedProvider(email string, denylist []string) bool {
	normalized, err := Normalize(email)
	if err != nil {
		return false
	}

	for _, blocked := range denylist {
		if normalized == blocked {
			return true
		}
	}
	return false
}
