package llm

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateUTF8KeepsRunesIntact(t *testing.T) {
	assert.Equal(t, "short", truncateUTF8("short", 100))

	// "日" is three bytes; a cap landing inside it must back off to the
	// previous boundary so the prompt stays valid UTF-8.
	got := truncateUTF8("ab日本", 4)
	assert.Equal(t, "ab", got)
	assert.True(t, utf8.ValidString(got))

	got = truncateUTF8("ab日本", 5)
	assert.Equal(t, "ab日", got)
	assert.True(t, utf8.ValidString(got))
}
