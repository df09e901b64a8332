package services

import (
	"context"
	"sync"
	"time"

	"github.com/justsurfingit/job-board/internal/events"
	"github.com/justsurfingit/job-board/internal/logger"
	"github.com/justsurfingit/job-board/internal/metrics"
	"github.com/justsurfingit/job-board/internal/models"
)

// JobService owns the job collection, the active filter and the filtered view
// derived from both. Every mutation runs under one write lock and recomputes
// the view before releasing it.
type JobService struct {
	Logger    logger.Logger
	Publisher events.Publisher
	Metrics   *metrics.Metrics

	mu       sync.RWMutex
	jobs     []models.Job // most recent first
	filter   models.JobFilter
	filtered []models.Job
	loading  bool

	now   func() time.Time
	newID func() string
}

// JobServiceOption configures a JobService.
type JobServiceOption func(*JobService)

// WithClock overrides the time source used for postedAt.
func WithClock(now func() time.Time) JobServiceOption {
	return func(s *JobService) { s.now = now }
}

// WithIDGenerator overrides the id source used for new jobs.
func WithIDGenerator(newID func() string) JobServiceOption {
	return func(s *JobService) { s.newID = newID }
}

// NewJobService creates an empty store in the loading state. pub may be nil,
// in which case no notifications are sent.
func NewJobService(log logger.Logger, pub events.Publisher, m *metrics.Metrics, opts ...JobServiceOption) *JobService {
	if log == nil {
		log = logger.NewNop()
	}
	s := &JobService{
		Logger:    log,
		Publisher: pub,
		Metrics:   m,
		jobs:      []models.Job{},
		filtered:  []models.Job{},
		loading:   true,
		now:       time.Now,
		newID:     newJobID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed installs the initial collection and leaves the loading state.
func (s *JobService) Seed(jobs []models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		s.jobs = append(s.jobs, j.Clone())
	}
	s.loading = false
	s.recomputeLocked()

	s.Logger.Info("Job store seeded", logger.Int("jobs", len(s.jobs)))
}

// Loading reports whether the seed collection has not arrived yet.
func (s *JobService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// ListAll returns every job, most recent first.
func (s *JobService) ListAll() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneJobs(s.jobs)
}

// ListFiltered returns the current filtered view.
func (s *JobService) ListFiltered() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneJobs(s.filtered)
}

// Filter returns the active filter.
func (s *JobService) Filter() models.JobFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// GetJob looks a job up by id. A missing id is reported with ok=false.
func (s *JobService) GetJob(id string) (job models.Job, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(id); i >= 0 {
		return s.jobs[i].Clone(), true
	}
	return models.Job{}, false
}

// AddJob stores job at the front of the collection and returns the stored
// record. A blank (or already taken) id is replaced with a fresh one and a
// blank postedAt is set to now.
func (s *JobService) AddJob(ctx context.Context, job models.Job) models.Job {
	s.mu.Lock()
	stored := job.Clone()
	if stored.ID == "" || s.indexLocked(stored.ID) >= 0 {
		if stored.ID != "" {
			s.Logger.Warn("Job id already taken, assigning a new one", logger.String("requested_id", stored.ID))
		}
		stored.ID = s.uniqueIDLocked()
	}
	if stored.PostedAt == "" {
		stored.PostedAt = models.FormatTimestamp(s.now())
	}

	s.jobs = append([]models.Job{stored}, s.jobs...)
	s.recomputeLocked()
	total := len(s.jobs)
	s.mu.Unlock()

	s.Metrics.ObserveStoreOp("add", metrics.ResultOK)
	s.Metrics.SetJobCount(total)
	s.Logger.Info("Job created",
		logger.String("job_id", stored.ID),
		logger.String("title", stored.Title),
		logger.String("company", stored.Company),
	)
	s.publish(ctx, events.NewJobCreatedEvent(stored.ID, stored.Title, stored.Company))

	return stored.Clone()
}

// UpdateJob replaces the job with the same id. The stored postedAt is kept.
// An unknown id is a no-op: nothing is inserted and updated is false.
func (s *JobService) UpdateJob(ctx context.Context, job models.Job) (updated bool) {
	s.mu.Lock()
	i := s.indexLocked(job.ID)
	if i < 0 {
		s.mu.Unlock()
		s.Metrics.ObserveStoreOp("update", metrics.ResultNotFound)
		s.Logger.Debug("Update for unknown job ignored", logger.String("job_id", job.ID))
		return false
	}

	replacement := job.Clone()
	replacement.PostedAt = s.jobs[i].PostedAt
	s.jobs[i] = replacement
	s.recomputeLocked()
	s.mu.Unlock()

	s.Metrics.ObserveStoreOp("update", metrics.ResultOK)
	s.Logger.Info("Job updated",
		logger.String("job_id", replacement.ID),
		logger.String("title", replacement.Title),
	)
	s.publish(ctx, events.NewJobUpdatedEvent(replacement.ID, replacement.Title, replacement.Company))
	return true
}

// DeleteJob removes the job with the given id. deleted is false (and nothing
// is announced) when no such job exists.
func (s *JobService) DeleteJob(ctx context.Context, id string) (deleted bool) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		s.Metrics.ObserveStoreOp("delete", metrics.ResultNotFound)
		return false
	}

	removed := s.jobs[i]
	s.jobs = append(s.jobs[:i:i], s.jobs[i+1:]...)
	s.recomputeLocked()
	total := len(s.jobs)
	s.mu.Unlock()

	s.Metrics.ObserveStoreOp("delete", metrics.ResultOK)
	s.Metrics.SetJobCount(total)
	s.Logger.Info("Job deleted", logger.String("job_id", id))
	s.publish(ctx, events.NewJobDeletedEvent(removed.ID, removed.Title, removed.Company))
	return true
}

// SetFilter replaces the active filter (no merging with the previous one).
func (s *JobService) SetFilter(filter models.JobFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = filter
	s.recomputeLocked()
	s.Metrics.ObserveStoreOp("set_filter", metrics.ResultOK)
}

// Stats returns the dashboard counters.
func (s *JobService) Stats() models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	companies := make(map[string]struct{})
	cities := make(map[string]struct{})
	stats := models.DashboardStats{TotalJobs: len(s.jobs)}
	for _, j := range s.jobs {
		if j.Featured {
			stats.FeaturedJobs++
		}
		if j.Location.Remote {
			stats.RemoteJobs++
		}
		companies[j.Company] = struct{}{}
		cities[j.Location.City] = struct{}{}
	}
	stats.Companies = len(companies)
	stats.Locations = len(cities)
	return stats
}

func (s *JobService) recomputeLocked() {
	s.filtered = ComputeView(s.jobs, s.filter)
}

func (s *JobService) indexLocked(id string) int {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *JobService) uniqueIDLocked() string {
	for {
		id := s.newID()
		if id != "" && s.indexLocked(id) < 0 {
			return id
		}
	}
}

func (s *JobService) publish(ctx context.Context, ev events.Event) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.Publish(ctx, ev); err != nil {
		s.Logger.Warn("Failed to publish notification",
			logger.String("event_type", ev.Type),
			logger.Error(err),
		)
	}
}

func cloneJobs(jobs []models.Job) []models.Job {
	out := make([]models.Job, len(jobs))
	for i, j := range jobs {
		out[i] = j.Clone()
	}
	return out
}
