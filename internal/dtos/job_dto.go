package dtos

import (
	"strings"

	"github.com/justsurfingit/job-board/internal/models"
)

type JobLocationRequest struct {
	City    string `json:"city" binding:"required"`
	State   string `json:"state"`
	Country string `json:"country" binding:"required"`
	Remote  bool   `json:"remote"`
}

type SalaryRequest struct {
	Min      float64 `json:"min" binding:"gte=0"`
	Max      float64 `json:"max" binding:"gte=0"`
	Currency string  `json:"currency" binding:"required,len=3"`
}

// JobRequest is the body of POST /jobs and PUT /jobs/:id.
type JobRequest struct {
	ID             string             `json:"id"`
	Title          string             `json:"title" binding:"required,min=3"`
	Company        string             `json:"company" binding:"required,min=2"`
	Logo           string             `json:"logo"`
	Location       JobLocationRequest `json:"location"`
	Type           models.JobType     `json:"type" binding:"required,oneof=Full-time Part-time Contract Freelance Internship"`
	Description    string             `json:"description" binding:"required,min=10"`
	Requirements   []string           `json:"requirements"`
	Salary         *SalaryRequest     `json:"salary"`
	PostedAt       string             `json:"postedAt"`
	ApplicationURL string             `json:"applicationUrl" binding:"omitempty,url"`
	Featured       bool               `json:"featured"`
}

// ToModel converts the request to a job record, dropping blank requirement
// lines.
func (r *JobRequest) ToModel() models.Job {
	job := models.Job{
		ID:      r.ID,
		Title:   r.Title,
		Company: r.Company,
		Logo:    r.Logo,
		Location: models.JobLocation{
			City:    r.Location.City,
			State:   r.Location.State,
			Country: r.Location.Country,
			Remote:  r.Location.Remote,
		},
		Type:           r.Type,
		Description:    r.Description,
		Requirements:   CompactRequirements(r.Requirements),
		PostedAt:       r.PostedAt,
		ApplicationURL: r.ApplicationURL,
		Featured:       r.Featured,
	}
	if r.Salary != nil {
		job.Salary = &models.SalaryRange{
			Min:      r.Salary.Min,
			Max:      r.Salary.Max,
			Currency: r.Salary.Currency,
		}
	}
	return job
}

// CompactRequirements drops requirement lines that are empty or whitespace,
// keeping the order of the rest.
func CompactRequirements(reqs []string) []string {
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		if strings.TrimSpace(r) != "" {
			out = append(out, r)
		}
	}
	return out
}

// JobExtractionRequest is the body of POST /jobs/extract. Draft, when
// present, is the form state the generated fields are merged into.
type JobExtractionRequest struct {
	Prompt string      `json:"prompt"`
	Draft  *models.Job `json:"draft"`
}

// FilterRequest is the body of PUT /filter and the query of GET /jobs/search.
type FilterRequest struct {
	SearchTerm string         `json:"searchTerm" form:"q"`
	Location   string         `json:"location" form:"location"`
	Remote     bool           `json:"remote" form:"remote"`
	Type       models.JobType `json:"type" form:"type" binding:"omitempty,oneof=Full-time Part-time Contract Freelance Internship"`
}

func (r *FilterRequest) ToModel() models.JobFilter {
	return models.JobFilter{
		SearchTerm: r.SearchTerm,
		Location:   r.Location,
		Remote:     r.Remote,
		Type:       r.Type,
	}
}

// ApplicationRequest is the body of POST /jobs/:id/apply, as JSON or as a
// multipart form (with an optional "resume" file part).
type ApplicationRequest struct {
	FullName    string `json:"full_name" form:"full_name" binding:"required"`
	Email       string `json:"email" form:"email" binding:"required,email"`
	Phone       string `json:"phone" form:"phone"`
	CoverLetter string `json:"cover_letter" form:"cover_letter"`
}

func (r *ApplicationRequest) ToModel() models.Application {
	return models.Application{
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Phone,
		CoverLetter: r.CoverLetter,
	}
}
