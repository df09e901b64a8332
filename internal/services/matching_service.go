package services

import (
	"strings"

	"github.com/justsurfingit/job-board/internal/models"
)

// Matches reports whether job satisfies every constraint present in filter.
//
//   - SearchTerm: case-insensitive substring of title, company or description.
//   - Location:   case-insensitive substring of city, state or country.
//   - Remote:     when true, only remote jobs; false never excludes anything.
//   - Type:       exact equality.
func Matches(job models.Job, filter models.JobFilter) bool {
	if filter.SearchTerm != "" {
		term := strings.ToLower(filter.SearchTerm)
		if !containsFold(job.Title, term) &&
			!containsFold(job.Company, term) &&
			!containsFold(job.Description, term) {
			return false
		}
	}

	if filter.Location != "" {
		loc := strings.ToLower(filter.Location)
		// An absent state never matches on its own.
		stateHit := job.Location.State != "" && containsFold(job.Location.State, loc)
		if !containsFold(job.Location.City, loc) &&
			!stateHit &&
			!containsFold(job.Location.Country, loc) {
			return false
		}
	}

	if filter.Remote && !job.Location.Remote {
		return false
	}

	if filter.Type != "" && job.Type != filter.Type {
		return false
	}

	return true
}

// ComputeView returns the jobs matching filter, in their original order. The
// result is always a fresh slice of cloned records.
func ComputeView(jobs []models.Job, filter models.JobFilter) []models.Job {
	view := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if Matches(j, filter) {
			view = append(view, j.Clone())
		}
	}
	return view
}

// containsFold reports whether lowerTerm occurs in s, ignoring case.
// lowerTerm must already be lower-cased.
func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
