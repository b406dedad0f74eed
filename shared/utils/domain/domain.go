package domain

import (
	"errors"
	"strings"
)

// ErrInvalidDomain is returned when the input cannot be reduced to a valid
// registrable domain.
var ErrInvalidDomain = errors.New("invalid domain")

const maxLabelLength = 63

// Normalize turns a raw email address, bare domain or URL into a canonical
// lowercase registrable domain. For email input everything before the single
// "@" is discarded; scheme, "www." prefix, path and port noise is stripped
// before validation.
func Normalize(input string) (string, error) {
	input = strings.TrimSpace(input)

	if strings.Contains(input, "@") {
		parts := strings.Split(input, "@")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return "", ErrInvalidDomain
		}
		input = parts[1]
	}

	return NormalizeDomain(input)
}

// NormalizeDomain is the bare-domain variant of Normalize: it rejects input
// containing "@" and otherwise applies the same stripping and validation.
// Used when the caller already holds a domain or URL, such as vendor-domain
// review initiation.
func NormalizeDomain(input string) (string, error) {
	input = strings.TrimSpace(input)
	if strings.Contains(input, "@") {
		return "", ErrInvalidDomain
	}

	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "http://") {
		input = input[len("http://"):]
	} else if strings.HasPrefix(lower, "https://") {
		input = input[len("https://"):]
	}

	if len(input) >= 4 && strings.EqualFold(input[:4], "www.") {
		input = input[4:]
	}

	if idx := strings.Index(input, "/"); idx >= 0 {
		input = input[:idx]
	}
	if idx := strings.Index(input, ":"); idx >= 0 {
		input = input[:idx]
	}

	candidate := strings.TrimSpace(strings.ToLower(input))
	if !isValidDomain(candidate) {
		return "", ErrInvalidDomain
	}

	return candidate, nil
}

// isValidDomain applies the structural rules for a registrable domain:
// allowed charset, label shape, and a non-numeric TLD of at least two
// characters.
func isValidDomain(domain string) bool {
	if domain == "" {
		return false
	}

	for _, r := range domain {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '.' && r != '-' {
			return false
		}
	}

	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, "-") || strings.HasSuffix(domain, "-") {
		return false
	}
	if strings.Contains(domain, "..") {
		return false
	}

	labels := strings.Split(domain, ".")
	for _, label := range labels {
		if label == "" || len(label) > maxLabelLength {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}

	tld := labels[len(labels)-1]
	if len(tld) < 2 {
		return false
	}
	if isNumeric(tld) {
		return false
	}

	return true
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
