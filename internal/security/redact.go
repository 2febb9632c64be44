package security

import "strings"

var sensitiveSubstrings = []string{
	"token",
	"password",
	"authorization",
	"apikey",
	"api_key",
	"access_key",
	"private_key",
	"credentials",
	"auth",
	"passwd",
	"key",
	"signature",
	"cookie",
	"session",
	"bearer",
	"credential",
	"pwd",
	"passphrase",
	"secret",
	"community",
}

// RedactParams returns a copy of execution parameters with sensitive
// values replaced before they reach logs or audit records.
func RedactParams(values map[string]any) map[string]any {
	if values == nil {
		return nil
	}
	redacted := make(map[string]any, len(values))
	for key, value := range values {
		if isSensitiveKey(key) {
			redacted[key] = "***"
			continue
		}
		redacted[key] = value
	}
	return redacted
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(strings.TrimSpace(key))
	for _, part := range sensitiveSubstrings {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}
