package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithField(t *testing.T) {
	logger, out := testLogger()

	logger.WithField("foo", "bar").Info("test message")

	entry := parseEntry(t, out)
	assert.Equal(t, "test message", entry["message"])
	assert.Equal(t, "bar", entry["foo"])
}

func TestWithFields(t *testing.T) {
	logger, out := testLogger()

	logger.WithFields(map[string]any{
		"user":   "test_user",
		"action": "test_action",
	}).Info("test message")

	entry := parseEntry(t, out)
	assert.Equal(t, "test message", entry["message"])
	assert.Equal(t, "test_user", entry["user"])
	assert.Equal(t, "test_action", entry["action"])
}

func TestWithError(t *testing.T) {
	logger, out := testLogger()

	err := errors.New("test error")
	logger.WithError(err).Info("test message")

	entry := parseEntry(t, out)
	assert.Equal(t, "test message", entry["message"])
	assert.Equal(t, "test error", entry["error"])
}

func TestWithStacktrace(t *testing.T) {
	logger, out := testLogger()

	err := errors.WithStack(errors.New("test error"))
	logger.WithStacktrace(err).Info("test message")

	entry := parseEntry(t, out)
	assert.Equal(t, "test message", entry["message"])
	assert.Equal(t, "test error", entry["error"])
	assert.NotEmpty(t, entry[Stacktrace])
}

func TestWithStacktrace_NoStack(t *testing.T) {
	logger, out := testLogger()

	// A plain stdlib error carries no pkg/errors stacktrace
	logger.WithStacktrace(assert.AnError).Info("test message")

	entry := parseEntry(t, out)
	assert.Equal(t, "test message", entry["message"])
	assert.NotContains(t, entry, Stacktrace)
}

func TestExtractStack_WalksCauseChain(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := errors.WithMessage(cause, "context")

	stack := ExtractStack(wrapped)
	require.NotNil(t, stack)
}

func testLogger() (*Logger, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return FromZerolog(zerolog.New(out)), out
}

func parseEntry(t *testing.T, out *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	return entry
}
