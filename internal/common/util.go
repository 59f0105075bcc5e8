package common

import "strings"

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// It is used to drop passwords from memory once they have been sent.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ParseBearer extracts the token from an authorization value of the form
// "Bearer <token>". The scheme is matched case-insensitively. A value
// without a scheme is accepted as a bare token when allowBare is set.
func ParseBearer(value string, allowBare bool) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(value, " ")
	if !found {
		if allowBare {
			return value, true
		}
		return "", false
	}

	if !strings.EqualFold(scheme, BearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
