package models

// JobPosting is a draft application extracted from a fetched job posting.
// It is returned to the caller for review and is never persisted directly.
type JobPosting struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	URL          string   `json:"url"`
	Salary       string   `json:"salary"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}
