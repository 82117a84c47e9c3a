package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONLines(&buf)
	r.sink.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, r.Record(KindSessionStart, "", ""))
	require.NoError(t, r.NewSession("ssh-1").Record(KindLine, "pwd", "builtin"))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var first, second Event
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, KindSessionStart, first.Kind)
	assert.Empty(t, first.Session)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), first.Time)

	assert.Equal(t, KindLine, second.Kind)
	assert.Equal(t, "ssh-1", second.Session)
	assert.Equal(t, "pwd", second.Line)
	assert.Equal(t, "builtin", second.Detail)
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop().Record(KindError, "x", "y"))
}
