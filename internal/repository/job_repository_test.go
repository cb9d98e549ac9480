package repository

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placeholderPattern = regexp.MustCompile(`\$(\d+)`)

// maxPlaceholder returns the highest positional parameter in a query.
func maxPlaceholder(t *testing.T, query string) int {
	t.Helper()
	max := 0
	for _, m := range placeholderPattern.FindAllStringSubmatch(query, -1) {
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		if n > max {
			max = n
		}
	}
	return max
}

// requireKeywordBoundaries fails when a SQL keyword got glued to the column
// list, e.g. "updated_atFROM" or "RETURNINGid".
func requireKeywordBoundaries(t *testing.T, query string) {
	t.Helper()
	for _, keyword := range []string{"SELECT", "FROM", "WHERE", "RETURNING", "ORDER BY"} {
		if idx := strings.Index(query, keyword); idx > 0 {
			prev := query[idx-1]
			require.Truef(t, prev == ' ' || prev == '\n' || prev == '\t' || prev == '(',
				"keyword %s not preceded by whitespace in %q", keyword, query)
		}
		if end := strings.Index(query, keyword) + len(keyword); end > len(keyword) && end < len(query) {
			next := query[end]
			require.Truef(t, next == ' ' || next == '\n' || next == '\t',
				"keyword %s not followed by whitespace in %q", keyword, query)
		}
	}
}

func TestGetJobByIDQueryWellFormed(t *testing.T) {
	requireKeywordBoundaries(t, getJobByIDQuery)
	assert.Contains(t, getJobByIDQuery, "WHERE id = $1 AND user_id = $2")
	assert.Equal(t, 2, maxPlaceholder(t, getJobByIDQuery))
}

func TestBuildListJobsQuery(t *testing.T) {
	query, args := buildListJobsQuery("user-1", models.JobFilter{})
	requireKeywordBoundaries(t, query)
	assert.Equal(t, len(args), maxPlaceholder(t, query))
	assert.Contains(t, query, "FROM jobs WHERE user_id = $1")
	assert.True(t, strings.HasSuffix(query, "ORDER BY updated_at DESC"))

	query, args = buildListJobsQuery("user-1", models.JobFilter{
		Status:        models.StatusApplied,
		Search:        "acme",
		SortBy:        "company",
		SortDirection: "asc",
	})
	requireKeywordBoundaries(t, query)
	assert.Equal(t, len(args), maxPlaceholder(t, query))
	assert.Contains(t, query, "AND status = $2")
	assert.Contains(t, query, "company ILIKE $3")
	assert.True(t, strings.HasSuffix(query, "ORDER BY company ASC"))
	assert.Equal(t, []interface{}{"user-1", models.JobStatus("applied"), "%acme%"}, args)
}

func TestBuildListJobsQueryRejectsUnknownSortColumn(t *testing.T) {
	query, _ := buildListJobsQuery("user-1", models.JobFilter{SortBy: "company; DROP TABLE jobs"})
	assert.True(t, strings.HasSuffix(query, "ORDER BY updated_at DESC"))
}

func TestBuildUpdateJobQuery(t *testing.T) {
	company := "Acme"
	status := models.StatusApplied
	query, args := buildUpdateJobQuery("job-1", "user-1", models.JobUpdate{
		Company: &company,
		Status:  &status,
	})

	requireKeywordBoundaries(t, query)
	assert.Contains(t, query, "updated_at = NOW()")
	assert.Contains(t, query, "company = $1")
	assert.Contains(t, query, "status = $2")
	assert.Contains(t, query, "WHERE id = $3 AND user_id = $4")
	assert.Equal(t, []interface{}{"Acme", models.StatusApplied, "job-1", "user-1"}, args)
	assert.Equal(t, len(args), maxPlaceholder(t, query))
}

func TestBuildUpdateJobQueryNoFields(t *testing.T) {
	query, args := buildUpdateJobQuery("job-1", "user-1", models.JobUpdate{})
	requireKeywordBoundaries(t, query)
	assert.Contains(t, query, "SET updated_at = NOW() WHERE id = $1 AND user_id = $2")
	assert.Equal(t, []interface{}{"job-1", "user-1"}, args)
}
