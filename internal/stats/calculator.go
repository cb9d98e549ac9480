// Package stats derives the dashboard view-model from a user's job rows.
// The computation is pure and never fails: records missing the dates a
// metric needs are skipped for that metric but still count toward totals.
package stats

import (
	"math"
	"time"

	"github.com/jobdeck/jobdeck-api/internal/models"
)

const dayMillis = 86_400_000

// Calculator computes DashboardStats. The zero value is not usable; call
// NewCalculator, which wires the system clock.
type Calculator struct {
	// Now supplies the reference time for rate and bucket calculations.
	Now func() time.Time

	// BucketByHistoricalStatus switches the monthly breakdown to bucket each
	// milestone by the month it actually happened in, instead of bucketing the
	// whole record by its current status. Off by default for compatibility
	// with the dashboard's established numbers.
	BucketByHistoricalStatus bool
}

func NewCalculator() *Calculator {
	return &Calculator{Now: time.Now}
}

// Compute partitions jobs by status and derives every dashboard metric.
// All jobs are assumed to belong to a single user.
func (c *Calculator) Compute(jobs []models.Job) models.DashboardStats {
	now := c.Now()

	s := models.DashboardStats{Total: len(jobs)}
	for i := range jobs {
		switch jobs[i].Status {
		case models.StatusSaved:
			s.Saved++
		case models.StatusApplied:
			s.Applied++
		case models.StatusInterview:
			s.Interview++
		case models.StatusOffer:
			s.Offer++
		case models.StatusRejected:
			s.Rejected++
		}
	}

	// Saved records never entered the pipeline, so they are excluded from
	// every rate denominator.
	inPipeline := s.Applied + s.Interview + s.Offer + s.Rejected
	if inPipeline > 0 {
		s.ResponseRate = percent(s.Interview+s.Offer+s.Rejected, inPipeline)
		s.InterviewRate = percent(s.Interview+s.Offer, inPipeline)
		s.OfferRate = percent(s.Offer, inPipeline)
	}

	s.ApplicationRate = c.applicationRate(jobs, inPipeline, now)
	s.AverageResponseTime = averageResponseTime(jobs)
	s.Monthly = c.monthlyBuckets(jobs, now)

	return s
}

func percent(num, den int) int {
	return int(math.Round(float64(num) / float64(den) * 100))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// applicationRate is applications per week since the earliest applied date,
// with a minimum denominator of one week so same-day cohorts don't explode.
func (c *Calculator) applicationRate(jobs []models.Job, inPipeline int, now time.Time) float64 {
	var earliest *time.Time
	for i := range jobs {
		d := jobs[i].AppliedDate
		if d == nil {
			continue
		}
		if earliest == nil || d.Before(*earliest) {
			earliest = d
		}
	}
	if earliest == nil {
		return 0
	}

	days := math.Round(float64(now.Sub(*earliest).Milliseconds()) / dayMillis)
	if days < 1 {
		days = 1
	}
	weeks := days / 7
	if weeks < 1 {
		weeks = 1
	}
	return round1(float64(inPipeline) / weeks)
}

// averageResponseTime is the mean whole-day gap between applying and the
// first response, preferring the interview date over the rejection date.
// Negative gaps are data errors and are discarded.
func averageResponseTime(jobs []models.Job) float64 {
	var total, count int64
	for i := range jobs {
		applied := jobs[i].AppliedDate
		if applied == nil {
			continue
		}
		response := jobs[i].InterviewDate
		if response == nil {
			response = jobs[i].RejectedDate
		}
		if response == nil {
			continue
		}
		days := response.Sub(*applied).Milliseconds() / dayMillis
		if days < 0 {
			continue
		}
		total += days
		count++
	}
	if count == 0 {
		return 0
	}
	return round1(float64(total) / float64(count))
}

// monthlyBuckets builds exactly six month slots ending at the current month.
func (c *Calculator) monthlyBuckets(jobs []models.Job, now time.Time) []models.MonthlyCount {
	buckets := make([]models.MonthlyCount, 6)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -5, 0)
	for i := range buckets {
		buckets[i].Month = start.AddDate(0, i, 0).Format("Jan")
	}

	slot := func(t time.Time) int {
		idx := (t.Year()-start.Year())*12 + int(t.Month()) - int(start.Month())
		if idx < 0 || idx > 5 {
			return -1
		}
		return idx
	}

	for i := range jobs {
		job := &jobs[i]
		if c.BucketByHistoricalStatus {
			// Corrected behavior: each milestone lands in the month it happened.
			bucketMilestone(buckets, slot, job.AppliedDate, models.StatusApplied)
			bucketMilestone(buckets, slot, job.InterviewDate, models.StatusInterview)
			bucketMilestone(buckets, slot, job.OfferDate, models.StatusOffer)
			bucketMilestone(buckets, slot, job.RejectedDate, models.StatusRejected)
			continue
		}

		// Compatibility behavior: the record's whole history is attributed to
		// its current status in the month it was applied in.
		if job.AppliedDate == nil {
			continue
		}
		idx := slot(*job.AppliedDate)
		if idx < 0 {
			continue
		}
		incrementBucket(&buckets[idx], job.Status)
	}

	return buckets
}

func bucketMilestone(buckets []models.MonthlyCount, slot func(time.Time) int, date *time.Time, status models.JobStatus) {
	if date == nil {
		return
	}
	if idx := slot(*date); idx >= 0 {
		incrementBucket(&buckets[idx], status)
	}
}

func incrementBucket(b *models.MonthlyCount, status models.JobStatus) {
	switch status {
	case models.StatusApplied:
		b.Applied++
	case models.StatusInterview:
		b.Interview++
	case models.StatusOffer:
		b.Offer++
	case models.StatusRejected:
		b.Rejected++
	}
}
