package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTriageResponsePlainJSON(t *testing.T) {
	triage, err := ParseTriageResponse(`{"category": "billing", "priority": "high"}`)
	require.NoError(t, err)
	assert.Equal(t, "billing", triage.Category)
	assert.Equal(t, "high", triage.Priority)
}

func TestParseTriageResponseSurroundingProse(t *testing.T) {
	triage, err := ParseTriageResponse("Sure, here is the classification:\n```json\n{\"category\": \"prediction\", \"priority\": \"normal\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "prediction", triage.Category)
}

func TestParseTriageResponseNoJSON(t *testing.T) {
	_, err := ParseTriageResponse("I cannot classify this ticket.")
	assert.Error(t, err)
}

func TestParseTriageResponseUnknownCategory(t *testing.T) {
	_, err := ParseTriageResponse(`{"category": "weather", "priority": "low"}`)
	assert.Error(t, err)
}

func TestParseTriageResponseUnknownPriority(t *testing.T) {
	_, err := ParseTriageResponse(`{"category": "general", "priority": "urgent"}`)
	assert.Error(t, err)
}
