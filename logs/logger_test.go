package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	Verbose(false)
	defer Verbose(false)

	var terminal, trace bytes.Buffer
	logger := New(&terminal, &trace)

	logger.Debug("step", "pc", 4)
	logger.Info("halt", "steps", 10)

	assert.NotContains(terminal.String(), "step")
	assert.Contains(terminal.String(), "msg=halt steps=10")

	lines := strings.Split(strings.TrimSpace(trace.String()), "\n")
	if assert.Len(lines, 2) {
		var record map[string]any
		assert.NoError(json.Unmarshal([]byte(lines[0]), &record))
		assert.Equal("step", record["msg"])
		assert.Equal(float64(4), record["pc"])
	}
}

func TestNew_Verbose(t *testing.T) {
	assert := assert.New(t)

	Verbose(true)
	defer Verbose(false)

	var terminal bytes.Buffer
	logger := New(&terminal, nil)

	logger.Debug("step", "pc", 4)
	assert.Contains(terminal.String(), "level=DEBUG msg=step pc=4")
}

func TestJournalKey(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("PC", journalKey("pc"))
	assert.Equal("HOST__PACKET", journalKey("host: packet"))
	assert.Equal("NIC_2", journalKey("nic.2"))
}

func TestNew_Extra(t *testing.T) {
	assert := assert.New(t)

	var extra bytes.Buffer
	handler := slog.NewTextHandler(&extra, nil)

	logger := New(nil, nil, handler)
	logger.Info("halt")

	assert.Contains(extra.String(), "msg=halt")
}
