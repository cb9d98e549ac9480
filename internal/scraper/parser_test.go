package scraper

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePosting = `<!DOCTYPE html>
<html>
<head>
<title>Senior Go Engineer - Acme Corp | Careers</title>
<meta name="description" content="Acme Corp is hiring a Senior Go Engineer to build distributed systems.">
</head>
<body>
<h1>Senior Go Engineer - Acme Corp</h1>
<div class="job-location">Berlin, Germany</div>
<p>We pay $120,000 - $150,000 per year.</p>
<h2>Requirements</h2>
<ul>
<li>5+ years of Go experience</li>
<li>Solid PostgreSQL knowledge</li>
<li>5+ years of Go experience</li>
</ul>
</body>
</html>`

func TestParserExtractsStructuredFields(t *testing.T) {
	posting, err := NewParser().ExtractJobData(context.Background(), samplePosting, "https://acme.example/jobs/42")
	require.NoError(t, err)

	assert.Equal(t, "Senior Go Engineer", posting.Position)
	assert.Equal(t, "Acme Corp", posting.Company)
	assert.Equal(t, "Berlin, Germany", posting.Location)
	assert.Equal(t, "https://acme.example/jobs/42", posting.URL)
	assert.Contains(t, posting.Salary, "$120,000")
	assert.Equal(t, "Acme Corp is hiring a Senior Go Engineer to build distributed systems.", posting.Description)
	assert.Equal(t, []string{"5+ years of Go experience", "Solid PostgreSQL knowledge"}, posting.Requirements)
}

func TestParserSplitsAtCompanyTitle(t *testing.T) {
	html := `<html><head><title>Data Scientist at Globex</title></head><body></body></html>`
	posting, err := NewParser().ExtractJobData(context.Background(), html, "")
	require.NoError(t, err)

	assert.Equal(t, "Data Scientist", posting.Position)
	assert.Equal(t, "Globex", posting.Company)
}

func TestParserFallsBackToPlaceholders(t *testing.T) {
	posting, err := NewParser().ExtractJobData(context.Background(), "<html><body></body></html>", "")
	require.NoError(t, err)

	assert.Equal(t, "Unknown Position", posting.Position)
	assert.Equal(t, "Unknown Company", posting.Company)
	assert.Empty(t, posting.Requirements)
}

func TestParserTruncatesDescriptionOnRuneBoundary(t *testing.T) {
	// A long paragraph of multi-byte runes forces the 500-byte cap to land
	// mid-rune unless the cut respects boundaries.
	long := "a" + strings.Repeat("ü", 400)
	html := `<html><body><p>` + long + `</p></body></html>`
	posting, err := NewParser().ExtractJobData(context.Background(), html, "")
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(posting.Description))
	assert.True(t, strings.HasSuffix(posting.Description, "..."))
}

func TestTruncateUTF8(t *testing.T) {
	assert.Equal(t, "abc", truncateUTF8("abc", 10))
	assert.Equal(t, "ab", truncateUTF8("abcd", 2))

	// "é" is two bytes; cutting at 3 must not leave half a rune behind.
	got := truncateUTF8("aéé", 3)
	assert.Equal(t, "aé", got)
	assert.True(t, utf8.ValidString(got))
}

func TestParserDetectsRemoteLocation(t *testing.T) {
	html := `<html><body><h1>Platform Engineer - Initech</h1><p>This position is fully remote within the EU.</p></body></html>`
	posting, err := NewParser().ExtractJobData(context.Background(), html, "")
	require.NoError(t, err)

	assert.Equal(t, "Remote", posting.Location)
}
