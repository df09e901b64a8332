package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-board/internal/database"
	"github.com/justsurfingit/job-board/internal/models"
)

func TestSeedJobs(t *testing.T) {
	jobs, err := database.SeedJobs()
	require.NoError(t, err)
	require.Len(t, jobs, 8)

	first := jobs[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Frontend Developer", first.Title)
	assert.Equal(t, "TechCorp", first.Company)
	assert.Equal(t, models.JobTypeFullTime, first.Type)
	assert.True(t, first.Location.Remote)
	require.NotNil(t, first.Salary)
	assert.Equal(t, float64(90000), first.Salary.Min)
	assert.Len(t, first.Requirements, 5)

	london := jobs[2]
	assert.Equal(t, "London", london.Location.City)
	assert.Empty(t, london.Location.State)
	assert.Equal(t, models.JobTypeContract, london.Type)
}

func TestLoadJobs_RejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not an array", `{"id":"1"}`},
		{"missing title", `[{"id":"1","company":"A","location":{"city":"X","country":"Y","remote":false},"type":"Contract","description":"d","requirements":[],"postedAt":"2023-01-01T00:00:00Z","featured":false}]`},
		{"bad type", `[{"id":"1","title":"T","company":"A","location":{"city":"X","country":"Y","remote":false},"type":"Gig","description":"d","requirements":[],"postedAt":"2023-01-01T00:00:00Z","featured":false}]`},
		{"negative salary", `[{"id":"1","title":"T","company":"A","location":{"city":"X","country":"Y","remote":false},"type":"Contract","description":"d","requirements":[],"salary":{"min":-1,"max":2,"currency":"USD"},"postedAt":"2023-01-01T00:00:00Z","featured":false}]`},
		{"missing city", `[{"id":"1","title":"T","company":"A","location":{"country":"Y","remote":false},"type":"Contract","description":"d","requirements":[],"postedAt":"2023-01-01T00:00:00Z","featured":false}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := database.LoadJobs([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadJobs_RejectsDuplicateIDs(t *testing.T) {
	job := `{"id":"1","title":"T","company":"A","location":{"city":"X","country":"Y","remote":false},"type":"Contract","description":"d","requirements":[],"postedAt":"2023-01-01T00:00:00Z","featured":false}`
	_, err := database.LoadJobs([]byte("[" + job + "," + job + "]"))
	assert.ErrorContains(t, err, "duplicate job id")
}
