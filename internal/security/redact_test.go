package security

import "testing"

func TestRedactParams(t *testing.T) {
	params := map[string]any{
		"target":    "example.com",
		"api_key":   "sk-1234",
		"password":  "hunter2",
		"community": "public",
		"count":     3,
	}

	redacted := RedactParams(params)
	if redacted["target"] != "example.com" {
		t.Fatalf("target redacted: %v", redacted["target"])
	}
	if redacted["count"] != 3 {
		t.Fatalf("count redacted: %v", redacted["count"])
	}
	for _, key := range []string{"api_key", "password", "community"} {
		if redacted[key] != "***" {
			t.Fatalf("%s not redacted: %v", key, redacted[key])
		}
	}
	if params["api_key"] != "sk-1234" {
		t.Fatalf("source map mutated")
	}
}

func TestRedactParamsNil(t *testing.T) {
	if RedactParams(nil) != nil {
		t.Fatalf("nil input must return nil")
	}
}
