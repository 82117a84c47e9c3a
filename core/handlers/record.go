package handlers

import (
	"fmt"

	"github.com/loom-sh/loom/core/lang"
	"github.com/loom-sh/loom/core/session"
)

// StartRecording begins buffering typed lines into a script.
func StartRecording(s *session.Session, args []lang.Value) (lang.Value, error) {
	if err := noArgs("start-recording", args); err != nil {
		return lang.Value{}, err
	}
	s.StartRecording()
	return lang.StrValue("Recording. Finish with save-script [FILE]."), nil
}

// SaveScript writes the recorded lines and stops recording. Write failures
// are reported as a message rather than an error so the loop keeps going;
// the buffer survives for a retry.
func SaveScript(s *session.Session, args []lang.Value) (lang.Value, error) {
	name, hasName, err := optionalString("save-script", args)
	if err != nil {
		return lang.Value{}, err
	}
	if !hasName {
		name = s.Config().DefaultScriptName
	}

	saved, err := s.SaveScript(name)
	switch {
	case err != nil:
		return lang.StrValue(fmt.Sprintf("%s; try again", lang.UserMessage(err))), nil
	case !saved:
		return lang.StrValue(fmt.Sprintf("%s left untouched", name)), nil
	default:
		return lang.StrValue(fmt.Sprintf("Wrote %s", name)), nil
	}
}

func init() {
	register("start-recording", StartRecording)
	register("save-script", SaveScript)
}
