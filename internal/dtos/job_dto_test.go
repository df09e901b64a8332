package dtos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/models"
)

func TestCompactRequirements(t *testing.T) {
	got := dtos.CompactRequirements([]string{"Go", "", "  ", "SQL", "\t"})
	assert.Equal(t, []string{"Go", "SQL"}, got)
	assert.Empty(t, dtos.CompactRequirements(nil))
}

func TestJobRequest_ToModel(t *testing.T) {
	req := dtos.JobRequest{
		ID:           "42",
		Title:        "Go Developer",
		Company:      "Gophers",
		Location:     dtos.JobLocationRequest{City: "Lisbon", Country: "Portugal", Remote: true},
		Type:         models.JobTypeFreelance,
		Description:  "Build things in Go",
		Requirements: []string{"Go", " "},
		Salary:       &dtos.SalaryRequest{Min: 1, Max: 2, Currency: "EUR"},
		Featured:     true,
	}

	job := req.ToModel()
	assert.Equal(t, "42", job.ID)
	assert.Equal(t, []string{"Go"}, job.Requirements)
	assert.True(t, job.Location.Remote)
	require.NotNil(t, job.Salary)
	assert.Equal(t, "EUR", job.Salary.Currency)
	assert.True(t, job.Featured)

	req.Salary = nil
	assert.Nil(t, req.ToModel().Salary)
}
