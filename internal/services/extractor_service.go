package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/justsurfingit/job-board/internal/logger"
	"github.com/justsurfingit/job-board/internal/metrics"
	"github.com/justsurfingit/job-board/internal/models"
)

// Defaults used when the description gives no better answer.
const (
	DefaultTitle     = "Software Developer"
	DefaultCompany   = "TechCorp"
	DefaultCity      = "San Francisco"
	DefaultState     = "CA"
	DefaultCountry   = "USA"
	DefaultCurrency  = "USD"
	DefaultSalaryMin = 50000
	DefaultSalaryMax = 100000
)

// titleRules are checked in order and every hit overwrites the previous one,
// so the last matching keyword decides the title.
var titleRules = []struct {
	keyword string
	title   string
}{
	{"designer", "UI/UX Designer"},
	{"manager", "Project Manager"},
	{"engineer", "Software Engineer"},
	{"market", "Marketing Specialist"},
}

// DefaultRequirements is the fixed list attached to every extracted job.
var DefaultRequirements = []string{
	"Strong understanding of industry principles",
	"Excellent communication skills",
	"Problem-solving abilities",
	"Team collaboration",
}

// salaryPattern matches "$120k", "$120,000", "120k" and "120,000". It can
// also pick up years or phone fragments like "2,024"; that is accepted.
var salaryPattern = regexp.MustCompile(`\$\d+k|\$\d+,\d+|\d+k|\d+,\d+`)

// ExtractorService turns a free-form job description into a job draft using
// keyword and pattern rules.
type ExtractorService struct {
	Delay   time.Duration
	Logger  logger.Logger
	Metrics *metrics.Metrics

	now   func() time.Time
	newID func() string
}

// NewExtractorService creates the extractor. delay is the artificial latency
// ExtractJobDetails waits before answering.
func NewExtractorService(delay time.Duration, log logger.Logger, m *metrics.Metrics) *ExtractorService {
	if log == nil {
		log = logger.NewNop()
	}
	return &ExtractorService{
		Delay:   delay,
		Logger:  log,
		Metrics: m,
		now:     time.Now,
		newID:   newJobID,
	}
}

// ExtractJobDetails waits for the configured delay, then runs Extract. The only
// possible error is ctx ending during the wait.
func (s *ExtractorService) ExtractJobDetails(ctx context.Context, text string) (models.Job, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return models.Job{}, ctx.Err()
		}
	}

	job := s.Extract(text)
	s.Metrics.ObserveExtraction()
	s.Logger.Info("Job details extracted",
		logger.String("job_id", job.ID),
		logger.String("title", job.Title),
		logger.String("type", string(job.Type)),
		logger.Bool("remote", job.Location.Remote),
	)
	return job, nil
}

// Extract maps text to a fully populated job. It never fails; an empty string
// yields all defaults.
func (s *ExtractorService) Extract(text string) models.Job {
	lower := strings.ToLower(text)
	salaryMin, salaryMax := extractSalary(text)

	return models.Job{
		ID:      s.newID(),
		Title:   extractTitle(lower),
		Company: DefaultCompany,
		Location: models.JobLocation{
			City:    DefaultCity,
			State:   DefaultState,
			Country: DefaultCountry,
			Remote:  strings.Contains(lower, "remote"),
		},
		Type:         extractType(lower),
		Description:  text,
		Requirements: append([]string(nil), DefaultRequirements...),
		Salary: &models.SalaryRange{
			Min:      salaryMin,
			Max:      salaryMax,
			Currency: DefaultCurrency,
		},
		PostedAt:       models.FormatTimestamp(s.now()),
		ApplicationURL: "",
		Featured:       false,
	}
}

// MergeDraft overlays generated onto draft. The draft keeps its id and
// postedAt when it has them. Logo, application URL and the featured flag are
// never generated, so they always come from the draft.
func MergeDraft(draft *models.Job, generated models.Job) models.Job {
	merged := generated.Clone()
	if draft == nil {
		merged.Featured = false
		return merged
	}
	if draft.ID != "" {
		merged.ID = draft.ID
	}
	if draft.PostedAt != "" {
		merged.PostedAt = draft.PostedAt
	}
	merged.Logo = draft.Logo
	merged.ApplicationURL = draft.ApplicationURL
	merged.Featured = draft.Featured
	return merged
}

func extractTitle(lower string) string {
	title := DefaultTitle
	for _, r := range titleRules {
		if strings.Contains(lower, r.keyword) {
			title = r.title
		}
	}
	return title
}

// extractType returns the first job type, in models.JobTypes order, named in
// the text.
func extractType(lower string) models.JobType {
	for _, jt := range models.JobTypes {
		if strings.Contains(lower, strings.ToLower(string(jt))) {
			return jt
		}
	}
	return models.JobTypeFullTime
}

func extractSalary(text string) (float64, float64) {
	matches := salaryPattern.FindAllString(text, 2)
	if len(matches) < 2 {
		return DefaultSalaryMin, DefaultSalaryMax
	}

	a, okA := parseSalaryToken(matches[0])
	b, okB := parseSalaryToken(matches[1])
	if !okA || !okB {
		return DefaultSalaryMin, DefaultSalaryMax
	}
	return min(a, b), max(a, b)
}

// parseSalaryToken works in float64 so long digit runs lose precision
// instead of wrapping.
func parseSalaryToken(token string) (float64, bool) {
	multiplier := 1.0
	if strings.Contains(token, "k") {
		multiplier = 1000
	}
	digits := strings.NewReplacer("$", "", ",", "", "k", "").Replace(token)
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return n * multiplier, true
}

// newJobID returns a time-ordered unique id.
func newJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
