package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/justsurfingit/job-board/internal/events"
	"github.com/justsurfingit/job-board/internal/logger"
	"github.com/justsurfingit/job-board/internal/metrics"
	"github.com/justsurfingit/job-board/internal/models"
)

var resumeExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true}

// JobLookup is the part of the job store the application flow needs.
type JobLookup interface {
	GetJob(id string) (models.Job, bool)
}

// ApplicationService records applications submitted against job listings.
type ApplicationService struct {
	Jobs      JobLookup
	Publisher events.Publisher
	Metrics   *metrics.Metrics
	Logger    logger.Logger

	mu    sync.RWMutex
	byJob map[string][]models.Application
}

func NewApplicationService(jobs JobLookup, pub events.Publisher, m *metrics.Metrics, log logger.Logger) *ApplicationService {
	if log == nil {
		log = logger.NewNop()
	}
	return &ApplicationService{
		Jobs:      jobs,
		Publisher: pub,
		Metrics:   m,
		Logger:    log,
		byJob:     make(map[string][]models.Application),
	}
}

// ValidateResumeFilename checks the resume extension. An empty name means no
// resume was attached and is accepted.
func ValidateResumeFilename(name string) error {
	if name == "" {
		return nil
	}
	if !resumeExtensions[strings.ToLower(filepath.Ext(name))] {
		return ErrInvalidResume
	}
	return nil
}

// Submit records app for jobID. The job must exist.
func (s *ApplicationService) Submit(ctx context.Context, jobID string, app models.Application) (models.Application, error) {
	job, ok := s.Jobs.GetJob(jobID)
	if !ok {
		s.Metrics.ObserveApplication(metrics.ResultNotFound)
		return models.Application{}, fmt.Errorf("apply to %q: %w", jobID, ErrJobNotFound)
	}
	if err := ValidateResumeFilename(app.ResumeFilename); err != nil {
		s.Metrics.ObserveApplication(metrics.ResultRejected)
		return models.Application{}, err
	}

	app.ID = uuid.NewString()
	app.JobID = jobID
	app.SubmittedAt = time.Now().UTC()

	s.mu.Lock()
	s.byJob[jobID] = append(s.byJob[jobID], app)
	s.mu.Unlock()

	s.Metrics.ObserveApplication(metrics.ResultOK)
	s.Logger.Info("Application submitted",
		logger.String("application_id", app.ID),
		logger.String("job_id", jobID),
		logger.String("job_title", job.Title),
		logger.Bool("has_resume", app.ResumeFilename != ""),
	)

	if s.Publisher != nil {
		if err := s.Publisher.Publish(ctx, events.NewApplicationSubmittedEvent(jobID, job.Title, job.Company)); err != nil {
			s.Logger.Warn("Failed to publish notification", logger.Error(err))
		}
	}
	return app, nil
}

// ListForJob returns the applications recorded for jobID, oldest first.
func (s *ApplicationService) ListForJob(jobID string) []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Application{}, s.byJob[jobID]...)
}
