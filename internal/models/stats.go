package models

// MonthlyCount holds the per-status application counts for one calendar month.
type MonthlyCount struct {
	Month     string `json:"month"`
	Applied   int    `json:"applied"`
	Interview int    `json:"interview"`
	Offer     int    `json:"offer"`
	Rejected  int    `json:"rejected"`
}

// DashboardStats is the derived view-model consumed by dashboards. It is
// never persisted; it is recomputed from the user's current job rows.
type DashboardStats struct {
	Total     int `json:"total"`
	Saved     int `json:"saved"`
	Applied   int `json:"applied"`
	Interview int `json:"interview"`
	Offer     int `json:"offer"`
	Rejected  int `json:"rejected"`

	// ApplicationRate is applications per week since the earliest applied date.
	ApplicationRate float64 `json:"applicationRate"`
	// ResponseRate, InterviewRate and OfferRate are whole-number percentages
	// over records that entered the pipeline (everything but saved).
	ResponseRate  int `json:"responseRate"`
	InterviewRate int `json:"interviewRate"`
	OfferRate     int `json:"offerRate"`
	// AverageResponseTime is the mean days between applying and the first
	// response, one decimal place.
	AverageResponseTime float64 `json:"averageResponseTime"`

	Monthly []MonthlyCount `json:"monthly"`
}
