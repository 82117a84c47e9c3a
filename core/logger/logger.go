// Package logger records structured session events as JSON lines.
package logger

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"sync"
	"time"
)

// Event kinds.
const (
	KindSessionStart = "session_start"
	KindSessionEnd   = "session_end"
	KindLine         = "line"
	KindError        = "error"
	KindScriptSaved  = "script_saved"
)

// Event is one row of the application log.
type Event struct {
	Time    time.Time `json:"time"`
	Session string    `json:"session,omitempty"`
	Kind    string    `json:"kind"`
	Line    string    `json:"line,omitempty"`
	Detail  string    `json:"detail,omitempty"`
}

type sink struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// Recorder writes events for one session to a shared sink.
type Recorder struct {
	sink    *sink
	session string
}

// NewJSONLines creates a recorder writing newline-delimited JSON to w.
func NewJSONLines(w io.Writer) *Recorder {
	return &Recorder{sink: &sink{out: w, now: time.Now}}
}

// Nop creates a recorder that discards everything.
func Nop() *Recorder {
	return NewJSONLines(ioutil.Discard)
}

// NewSession returns a recorder that stamps events with a session id.
func (r *Recorder) NewSession(id string) *Recorder {
	return &Recorder{sink: r.sink, session: id}
}

// Record writes one event. Errors are returned but callers generally treat
// logging as best-effort.
func (r *Recorder) Record(kind, line, detail string) error {
	r.sink.mu.Lock()
	defer r.sink.mu.Unlock()

	data, err := json.Marshal(Event{
		Time:    r.sink.now(),
		Session: r.session,
		Kind:    kind,
		Line:    line,
		Detail:  detail,
	})
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = r.sink.out.Write(data)
	return err
}
