package scraper

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/pkg/errors"
)

// Parser is the best-effort fallback extractor used when no AI extraction
// is configured. It guesses fields out of arbitrary HTML and may return
// placeholders; callers treat the result as a draft for the user to edit.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

var (
	salaryPattern   = regexp.MustCompile(`(?i)(?:[$£€]\s?\d[\d,]*(?:\.\d+)?k?(?:\s*[-–]\s*[$£€]?\s?\d[\d,]*(?:\.\d+)?k?)?(?:\s*(?:per|/)\s*(?:year|yr|hour|hr|annum))?)`)
	locationLabel   = regexp.MustCompile(`(?i)location\s*:?\s*([A-Za-z][A-Za-z ,.-]{2,60})`)
	remotePattern   = regexp.MustCompile(`(?i)\b(remote|hybrid|on-?site)\b`)
	companyFromAt   = regexp.MustCompile(`(?i)\bat\s+([A-Z][\w&.' -]{1,40})`)
	titleSeparators = regexp.MustCompile(`\s*[|\-–]\s*`)
)

// requirement headings worth scanning list items under.
var requirementHeadings = []string{"requirement", "qualification", "what you", "must have", "skills"}

func (p *Parser) ExtractJobData(_ context.Context, html, url string) (*models.JobPosting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, "parse HTML")
	}

	posting := &models.JobPosting{URL: url}
	posting.Position, posting.Company = titleParts(doc)
	posting.Location = location(doc)
	posting.Salary = salary(doc)
	posting.Description = description(doc)
	posting.Requirements = requirements(doc)

	if posting.Position == "" {
		posting.Position = "Unknown Position"
	}
	if posting.Company == "" {
		posting.Company = "Unknown Company"
	}
	return posting, nil
}

// titleParts guesses position and company from metadata and the page title.
// Titles like "Senior Go Engineer - Acme Corp" or "Engineer at Acme | Jobs"
// split on the first separator.
func titleParts(doc *goquery.Document) (position, company string) {
	title, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
	if title == "" {
		title = doc.Find("h1").First().Text()
	}
	if title == "" {
		title = doc.Find("title").Text()
	}
	title = strings.TrimSpace(title)

	if m := companyFromAt.FindStringSubmatch(title); m != nil {
		company = strings.TrimSpace(m[1])
		position = strings.TrimSpace(companyFromAt.ReplaceAllString(title, ""))
	} else if parts := titleSeparators.Split(title, 2); len(parts) == 2 {
		position = strings.TrimSpace(parts[0])
		company = strings.TrimSpace(titleSeparators.Split(parts[1], 2)[0])
	} else {
		position = title
	}

	if company == "" {
		if siteName, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
			company = strings.TrimSpace(siteName)
		}
	}
	if company == "" {
		company = strings.TrimSpace(doc.Find(`[class*="company"], [data-testid*="company"]`).First().Text())
	}
	return position, company
}

func location(doc *goquery.Document) string {
	if loc := strings.TrimSpace(doc.Find(`[class*="location"], [data-testid*="location"]`).First().Text()); loc != "" && len(loc) < 80 {
		return loc
	}
	text := doc.Text()
	if m := locationLabel.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := remotePattern.FindString(text); m != "" {
		m = strings.ToLower(m)
		return strings.ToUpper(m[:1]) + m[1:]
	}
	return ""
}

func salary(doc *goquery.Document) string {
	if sal := strings.TrimSpace(doc.Find(`[class*="salary"], [class*="compensation"]`).First().Text()); sal != "" && len(sal) < 80 {
		return sal
	}
	return strings.TrimSpace(salaryPattern.FindString(doc.Text()))
}

func description(doc *goquery.Document) string {
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		if trimmed := strings.TrimSpace(desc); trimmed != "" {
			return trimmed
		}
	}
	var out string
	doc.Find("main p, article p, [class*='description'] p, p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); len(text) > 80 {
			out = text
			return false
		}
		return true
	})
	if len(out) > 500 {
		out = truncateUTF8(out, 500) + "..."
	}
	return out
}

// truncateUTF8 cuts s to at most max bytes without splitting a rune.
func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

func requirements(doc *goquery.Document) []string {
	var reqs []string
	seen := map[string]bool{}

	doc.Find("h1, h2, h3, h4, strong, b").Each(func(_ int, heading *goquery.Selection) {
		text := strings.ToLower(heading.Text())
		matched := false
		for _, keyword := range requirementHeadings {
			if strings.Contains(text, keyword) {
				matched = true
				break
			}
		}
		if !matched {
			return
		}
		heading.NextAllFiltered("ul, ol").First().Find("li").Each(func(_ int, item *goquery.Selection) {
			req := strings.TrimSpace(item.Text())
			if req != "" && len(req) < 200 && !seen[req] {
				seen[req] = true
				reqs = append(reqs, req)
			}
		})
	})

	if len(reqs) > 10 {
		reqs = reqs[:10]
	}
	return reqs
}
