package lifecycle

import (
	"strings"
	"time"

	"github.com/jobdeck/jobdeck-api/internal/models"
)

// NoteTimestampLayout is the human-readable prefix format for note entries.
const NoteTimestampLayout = "1/2/2006, 3:04:05 PM"

// AppendNote formats a note as "{timestamp}: {text}" and appends it to the
// existing notes blob, separated by a blank line. Prior entries are never
// modified. Returns ErrEmptyNote when the trimmed text is empty.
func AppendNote(existing, note string, now time.Time) (string, error) {
	trimmed := strings.TrimSpace(note)
	if trimmed == "" {
		return "", models.ErrEmptyNote
	}

	entry := now.Format(NoteTimestampLayout) + ": " + trimmed
	if existing == "" {
		return entry, nil
	}
	return existing + "\n\n" + entry, nil
}
