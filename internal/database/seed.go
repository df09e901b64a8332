// Package database holds the bootstrap data for the in-memory job store.
// The example listings ship embedded in the binary and are checked against a
// JSON schema before they are handed to the store.
package database

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/justsurfingit/job-board/internal/models"
)

//go:embed seed/jobs.json
var seedJobsJSON []byte

// SeedJobs returns the example job listings shipped with the service.
func SeedJobs() ([]models.Job, error) {
	return LoadJobs(seedJobsJSON)
}

// LoadJobs validates data against the job collection schema and decodes it.
func LoadJobs(data []byte) ([]models.Job, error) {
	if err := validateAgainstSchema(BuildJobsJSONSchema(), data); err != nil {
		return nil, err
	}

	var jobs []models.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}

	seen := make(map[string]struct{}, len(jobs))
	for _, j := range jobs {
		if _, dup := seen[j.ID]; dup {
			return nil, fmt.Errorf("duplicate job id %q", j.ID)
		}
		seen[j.ID] = struct{}{}
	}
	return jobs, nil
}

// BuildJobsJSONSchema returns the schema (draft 2020-12 subset) for an array
// of job records, as a generic map.
func BuildJobsJSONSchema() map[string]any {
	jobTypes := make([]string, 0, len(models.JobTypes))
	for _, jt := range models.JobTypes {
		jobTypes = append(jobTypes, string(jt))
	}

	location := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"city":    nonEmptyString(),
			"state":   map[string]any{"type": "string"},
			"country": nonEmptyString(),
			"remote":  map[string]any{"type": "boolean"},
		},
		"required": []string{"city", "country", "remote"},
	}

	salary := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"min":      map[string]any{"type": "number", "minimum": 0},
			"max":      map[string]any{"type": "number", "minimum": 0},
			"currency": map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		},
		"required": []string{"min", "max", "currency"},
	}

	job := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":             nonEmptyString(),
			"title":          nonEmptyString(),
			"company":        nonEmptyString(),
			"logo":           map[string]any{"type": "string"},
			"location":       location,
			"type":           map[string]any{"type": "string", "enum": jobTypes},
			"description":    map[string]any{"type": "string"},
			"requirements":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"salary":         salary,
			"postedAt":       map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`},
			"applicationUrl": map[string]any{"type": "string"},
			"featured":       map[string]any{"type": "boolean"},
		},
		"required": []string{"id", "title", "company", "location", "type", "description", "requirements", "postedAt", "featured"},
	}

	return map[string]any{
		"type":  "array",
		"items": job,
	}
}

func nonEmptyString() map[string]any {
	return map[string]any{"type": "string", "minLength": 1}
}

func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("jobs.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("jobs.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal jobs: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("jobs do not match schema: %w", err)
	}
	return nil
}
