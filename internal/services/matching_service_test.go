package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-board/internal/database"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/services"
)

func seedJobs(t *testing.T) []models.Job {
	t.Helper()
	jobs, err := database.SeedJobs()
	require.NoError(t, err)
	return jobs
}

func ids(jobs []models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

// ── Matches ────────────────────────────────────────────────────────────────

func TestMatches(t *testing.T) {
	job := models.Job{
		Title:       "Backend Engineer",
		Company:     "DataSystems",
		Description: "Design database schemas",
		Type:        models.JobTypeFullTime,
		Location:    models.JobLocation{City: "New York", State: "NY", Country: "USA"},
	}

	tests := []struct {
		name   string
		filter models.JobFilter
		want   bool
	}{
		{"empty filter matches all", models.JobFilter{}, true},
		{"search title case-insensitive", models.JobFilter{SearchTerm: "backEND"}, true},
		{"search company", models.JobFilter{SearchTerm: "datasys"}, true},
		{"search description", models.JobFilter{SearchTerm: "SCHEMAS"}, true},
		{"search miss", models.JobFilter{SearchTerm: "frontend"}, false},
		{"location city", models.JobFilter{Location: "new york"}, true},
		{"location state", models.JobFilter{Location: "ny"}, true},
		{"location country", models.JobFilter{Location: "usa"}, true},
		{"location miss", models.JobFilter{Location: "berlin"}, false},
		{"remote required but job on-site", models.JobFilter{Remote: true}, false},
		{"type match", models.JobFilter{Type: models.JobTypeFullTime}, true},
		{"type miss", models.JobFilter{Type: models.JobTypeContract}, false},
		{"all constraints ANDed", models.JobFilter{SearchTerm: "engineer", Location: "USA", Type: models.JobTypeFullTime}, true},
		{"one failing constraint fails all", models.JobFilter{SearchTerm: "engineer", Location: "UK"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.Matches(job, tt.filter))
		})
	}
}

func TestMatches_MissingStateOnlyFailsThatSubCheck(t *testing.T) {
	job := models.Job{Location: models.JobLocation{City: "London", Country: "UK"}}

	assert.True(t, services.Matches(job, models.JobFilter{Location: "lon"}))
	assert.True(t, services.Matches(job, models.JobFilter{Location: "uk"}))
	assert.False(t, services.Matches(job, models.JobFilter{Location: "ca"}))
}

func TestMatches_RemoteFalseIsNoConstraint(t *testing.T) {
	remote := models.Job{Location: models.JobLocation{City: "Berlin", Country: "Germany", Remote: true}}
	onsite := models.Job{Location: models.JobLocation{City: "Austin", Country: "USA"}}

	assert.True(t, services.Matches(remote, models.JobFilter{Remote: false}))
	assert.True(t, services.Matches(onsite, models.JobFilter{Remote: false}))
	assert.True(t, services.Matches(remote, models.JobFilter{Remote: true}))
}

// ── ComputeView ────────────────────────────────────────────────────────────

func TestComputeView_SeedScenarios(t *testing.T) {
	jobs := seedJobs(t)

	tests := []struct {
		name   string
		filter models.JobFilter
		want   []string
	}{
		{"no filter", models.JobFilter{}, []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"remote only", models.JobFilter{Remote: true}, []string{"1", "3", "5", "7", "8"}},
		{"contract", models.JobFilter{Type: models.JobTypeContract}, []string{"3"}},
		{"engineer", models.JobFilter{SearchTerm: "engineer"}, []string{"2", "5", "6"}},
		{"usa remote", models.JobFilter{Location: "usa", Remote: true}, []string{"1", "5"}},
		{"nothing matches", models.JobFilter{Type: models.JobTypeInternship}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(services.ComputeView(jobs, tt.filter)))
		})
	}
}

func TestComputeView_SubsetPreservingOrder(t *testing.T) {
	jobs := seedJobs(t)
	filters := []models.JobFilter{
		{}, {Remote: true}, {SearchTerm: "developer"}, {Location: "a"}, {Type: models.JobTypeFullTime, Remote: true},
	}

	for _, f := range filters {
		view := services.ComputeView(jobs, f)
		pos := 0
		for _, v := range view {
			for pos < len(jobs) && jobs[pos].ID != v.ID {
				pos++
			}
			require.Less(t, pos, len(jobs), "job %s out of order or not in source for filter %+v", v.ID, f)
			pos++
		}
	}
}

func TestComputeView_Idempotent(t *testing.T) {
	jobs := seedJobs(t)
	f := models.JobFilter{SearchTerm: "e", Location: "us"}

	once := services.ComputeView(jobs, f)
	twice := services.ComputeView(once, f)

	assert.Equal(t, once, twice)
}

func TestComputeView_ReturnsCopies(t *testing.T) {
	jobs := seedJobs(t)

	view := services.ComputeView(jobs, models.JobFilter{})
	view[0].Requirements[0] = "changed"

	assert.NotEqual(t, "changed", jobs[0].Requirements[0])
}
