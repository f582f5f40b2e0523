package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("prod", &buf)
	log.Debug("hidden")
	log.Info("user created", "user_id", "abc")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "user created", line["msg"])
	assert.Equal(t, "abc", line["user_id"])
	assert.Equal(t, "exercise-tracker", line["service"])
}

func TestNew_DevIncludesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("dev", &buf)
	log.Debug("visible")

	assert.Contains(t, buf.String(), "msg=visible")
}
