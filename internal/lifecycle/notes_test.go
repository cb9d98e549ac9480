package lifecycle

import (
	"strings"
	"testing"
	"time"

	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendNoteToEmptyNotes(t *testing.T) {
	now := time.Date(2025, 4, 2, 14, 5, 9, 0, time.UTC)

	notes, err := AppendNote("", "called recruiter", now)
	require.NoError(t, err)

	// No leading blank line; the entry becomes the entire notes value.
	assert.Equal(t, now.Format(NoteTimestampLayout)+": called recruiter", notes)
}

func TestAppendNotePreservesOrder(t *testing.T) {
	now := time.Date(2025, 4, 2, 14, 0, 0, 0, time.UTC)

	notes, err := AppendNote("", "note A", now)
	require.NoError(t, err)
	notes, err = AppendNote(notes, "note B", now.Add(time.Hour))
	require.NoError(t, err)

	idxA := strings.Index(notes, "note A")
	idxB := strings.Index(notes, "note B")
	require.NotEqual(t, -1, idxA)
	require.NotEqual(t, -1, idxB)
	assert.Less(t, idxA, idxB)
	assert.Contains(t, notes, "\n\n")
	// The first entry is not modified by the second append.
	assert.True(t, strings.HasPrefix(notes, now.Format(NoteTimestampLayout)+": note A"))
}

func TestAppendNoteTrimsInput(t *testing.T) {
	now := time.Now()
	notes, err := AppendNote("", "  spaced out  ", now)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(notes, ": spaced out"))
}

func TestAppendNoteRejectsEmpty(t *testing.T) {
	for _, note := range []string{"", "   ", "\n\t"} {
		_, err := AppendNote("existing", note, time.Now())
		assert.ErrorIs(t, err, models.ErrEmptyNote)
	}
}
