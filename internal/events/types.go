// Package events carries user-visible notifications (job created, deleted,
// application received) from the services to connected clients.
package events

import (
	"context"
	"time"
)

// Event types published by the job board.
const (
	EventTypeJobCreated           = "job:created"
	EventTypeJobUpdated           = "job:updated"
	EventTypeJobDeleted           = "job:deleted"
	EventTypeApplicationSubmitted = "application:submitted"
)

// Variants tell the client how to style the notification.
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Event is a single notification.
type Event struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     string    `json:"variant"`
	JobID       string    `json:"job_id,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Publisher sends events to whoever is listening.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NewJobCreatedEvent creates a job:created event.
func NewJobCreatedEvent(jobID, title, company string) Event {
	return Event{
		Type:        EventTypeJobCreated,
		Title:       "Job Created",
		Description: title + " at " + company + " has been created.",
		Variant:     VariantDefault,
		JobID:       jobID,
		Timestamp:   time.Now().UTC(),
	}
}

// NewJobUpdatedEvent creates a job:updated event.
func NewJobUpdatedEvent(jobID, title, company string) Event {
	return Event{
		Type:        EventTypeJobUpdated,
		Title:       "Job Updated",
		Description: title + " at " + company + " has been updated.",
		Variant:     VariantDefault,
		JobID:       jobID,
		Timestamp:   time.Now().UTC(),
	}
}

// NewJobDeletedEvent creates a job:deleted event.
func NewJobDeletedEvent(jobID, title, company string) Event {
	return Event{
		Type:        EventTypeJobDeleted,
		Title:       "Job Deleted",
		Description: title + " at " + company + " has been deleted.",
		Variant:     VariantDestructive,
		JobID:       jobID,
		Timestamp:   time.Now().UTC(),
	}
}

// NewApplicationSubmittedEvent creates an application:submitted event.
func NewApplicationSubmittedEvent(jobID, title, company string) Event {
	return Event{
		Type:        EventTypeApplicationSubmitted,
		Title:       "Application submitted successfully!",
		Description: "Your application for " + title + " at " + company + " has been received.",
		Variant:     VariantDefault,
		JobID:       jobID,
		Timestamp:   time.Now().UTC(),
	}
}
