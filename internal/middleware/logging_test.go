package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRequestBodyMasksSecrets(t *testing.T) {
	body := `{"email":"doc@clinic.id","password":"hunter2","license_number":"SIP-123"}`

	sanitized := sanitizeRequestBody("/api/v1/auth/login", body)

	assert.Contains(t, sanitized, "doc@clinic.id")
	assert.NotContains(t, sanitized, "hunter2")
	assert.NotContains(t, sanitized, "SIP-123")
	assert.Contains(t, sanitized, "[SECRET]")
}

func TestSanitizeRequestBodyNonJSON(t *testing.T) {
	assert.Equal(t, "[non-JSON body]", sanitizeRequestBody("/api/v1/users", "not json"))
}
