package session

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/loom-sh/loom/core/lang"
)

// scriptRecorder buffers raw command lines while recording is active.
type scriptRecorder struct {
	active bool
	lines  []string
}

// RecordingActive reports whether lines are currently being buffered.
func (s *Session) RecordingActive() bool { return s.rec.active }

// StartRecording clears the buffer and raises the recording flag.
func (s *Session) StartRecording() {
	s.rec.active = true
	s.rec.lines = nil
}

// RecordLine appends a raw line to the script buffer. The dispatch loop
// calls this before classification, so the buffer also holds the exit line
// and the save-script line itself; the latter is stripped at write time.
func (s *Session) RecordLine(line string) {
	if s.rec.active {
		s.rec.lines = append(s.rec.lines, line)
	}
}

// RecordedLines returns the buffered script so far.
func (s *Session) RecordedLines() []string {
	return append([]string(nil), s.rec.lines...)
}

// SaveScript writes the buffered lines to name, rows separated by carriage
// returns only, chronological, with the triggering save-script line
// excluded. An existing target asks for overwrite confirmation; declining
// leaves the file untouched and reports saved=false with no error. The
// recording flag is cleared on every path; the buffer is kept so a failed
// write can be retried.
func (s *Session) SaveScript(name string) (saved bool, err error) {
	defer func() { s.rec.active = false }()

	lines := s.rec.lines
	if n := len(lines); n > 0 && lang.Tokenize(lines[n-1]).Command == "save-script" {
		lines = lines[:n-1]
	}

	target := s.ResolvePath(name)
	if exists, existsErr := afero.Exists(s.fs, target); existsErr == nil && exists {
		if !s.Confirm(fmt.Sprintf("%s exists, overwrite? [y/N] ", name)) {
			return false, nil
		}
	}

	fd, err := s.fs.Create(target)
	if err != nil {
		return false, lang.Errorf(lang.IOError, "could not create %s: %v", name, err)
	}
	defer fd.Close()

	if _, err := fd.WriteString(strings.Join(lines, "\r")); err != nil {
		return false, lang.Errorf(lang.IOError, "could not write %s: %v", name, err)
	}
	return true, nil
}
