package models

import "time"

// TimestampLayout is the ISO 8601 form used for PostedAt (millisecond
// precision, UTC "Z" suffix).
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in TimestampLayout, normalised to UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeFreelance  JobType = "Freelance"
	JobTypeInternship JobType = "Internship"
)

// JobTypes lists every job type in display order. The extractor scans them in
// this order.
var JobTypes = []JobType{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeContract,
	JobTypeFreelance,
	JobTypeInternship,
}

// Valid reports whether t is one of JobTypes.
func (t JobType) Valid() bool {
	for _, jt := range JobTypes {
		if t == jt {
			return true
		}
	}
	return false
}

type JobLocation struct {
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Country string `json:"country"`
	Remote  bool   `json:"remote"`
}

// SalaryRange is not validated here: min <= max is only arranged by the extractor.
type SalaryRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type Job struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Company        string       `json:"company"`
	Logo           string       `json:"logo,omitempty"`
	Location       JobLocation  `json:"location"`
	Type           JobType      `json:"type"`
	Description    string       `json:"description"`
	Requirements   []string     `json:"requirements"`
	Salary         *SalaryRange `json:"salary,omitempty"`
	PostedAt       string       `json:"postedAt"`
	ApplicationURL string       `json:"applicationUrl,omitempty"`
	Featured       bool         `json:"featured"`
}

// Clone returns a deep copy so callers never share slices or pointers with
// the store.
func (j Job) Clone() Job {
	c := j
	if j.Requirements != nil {
		c.Requirements = append([]string(nil), j.Requirements...)
	}
	if j.Salary != nil {
		s := *j.Salary
		c.Salary = &s
	}
	return c
}

// JobFilter narrows the visible job collection. Zero values mean "no
// constraint": an empty SearchTerm, Location or Type, and Remote=false.
type JobFilter struct {
	SearchTerm string  `json:"searchTerm,omitempty" form:"q"`
	Location   string  `json:"location,omitempty" form:"location"`
	Remote     bool    `json:"remote,omitempty" form:"remote"`
	Type       JobType `json:"type,omitempty" form:"type"`
}

// Application is a candidate's submission for a job listing.
type Application struct {
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	CoverLetter    string    `json:"cover_letter,omitempty"`
	ResumeFilename string    `json:"resume_filename,omitempty"`
	ResumeSize     int64     `json:"resume_size,omitempty"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// DashboardStats mirrors the counters on the admin dashboard.
type DashboardStats struct {
	TotalJobs    int `json:"total_jobs"`
	FeaturedJobs int `json:"featured_jobs"`
	Companies    int `json:"companies"`
	Locations    int `json:"locations"`
	RemoteJobs   int `json:"remote_jobs"`
}
