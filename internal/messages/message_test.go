package messages

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func someComponentFunc() {}

func TestDictionaryMessageError(t *testing.T) {
	cause := errors.New("connection refused")
	msg := NewDictionaryMessage(LOG_LEVEL_ERROR, "postgres", cause, POSTGRES_WRONG_NUMBER_OF_COPIED_ROWS, 3, 5)

	assert.Equal(t, "[postgres] Postgres copied 3 rows out of 5: connection refused", msg.Error())
	assert.True(t, errors.Is(msg, cause))
}

func TestDictionaryMessageErrorWithoutFormat(t *testing.T) {
	cause := errors.New("boom")
	assert.Equal(t, "boom", NewDictionaryMessage(LOG_LEVEL_ERROR, "", cause, "").Error())
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	original := NewDictionaryMessage(LOG_LEVEL_WARNING, "", nil, SPEC_VERSION_UP_TO_DATE)
	assert.Same(t, original, FromError(original))

	wrapped := FromError(errors.New("plain"))
	assert.Equal(t, LOG_LEVEL_ERROR, wrapped.LogLevel)
	assert.Equal(t, "plain", wrapped.Error())
}

func TestConsoleLogWritesStructuredLines(t *testing.T) {
	var out bytes.Buffer
	initLogger(&out, "debug", false)
	defer InitLogger("info", false)

	NewDictionaryMessage(LOG_LEVEL_INFO, "orchestrator", nil, ORCHESTRATOR_START_BATCH, 10, 42).ConsoleLog()
	NewDictionaryMessage(LOG_LEVEL_ERROR, "postgres", errors.New("closed"), POSTGRES_FAILED_TO_PING).ConsoleLog()

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &info))
	assert.Equal(t, "info", info["level"])
	assert.Equal(t, "orchestrator", info["component"])
	assert.Equal(t, "Starting batch of size 10 starting from block 42", info["message"])

	var failure map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[1], &failure))
	assert.Equal(t, "error", failure["level"])
	assert.Equal(t, "closed", failure["error"])
}

func TestGetComponent(t *testing.T) {
	assert.Equal(t, "messages", GetComponent(someComponentFunc))
}
