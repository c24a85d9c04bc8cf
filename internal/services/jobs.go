package services

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"gigboard/internal/api"
	"gigboard/internal/models"
)

// JobsService wraps the job-board endpoints.
type JobsService struct {
	client *api.Client
}

// NewJobsService creates a jobs accessor on top of the resource client.
func NewJobsService(client *api.Client) *JobsService {
	return &JobsService{client: client}
}

// JobFilters narrows a job listing. Zero values are omitted from the query.
type JobFilters struct {
	Q               string
	Category        string
	Location        string
	JobType         models.JobType
	ExperienceLevel string
	Page            int
	Limit           int
}

func (f JobFilters) values() url.Values {
	q := url.Values{}
	if f.Q != "" {
		q.Set("q", f.Q)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.JobType != "" {
		q.Set("jobType", string(f.JobType))
	}
	if f.ExperienceLevel != "" {
		q.Set("experienceLevel", f.ExperienceLevel)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

// List fetches jobs matching the filters. An unsuccessful envelope yields an
// empty slice, never an error.
func (s *JobsService) List(ctx context.Context, f JobFilters) ([]models.Job, error) {
	env, err := s.client.Get(ctx, "/jobs", f.values())
	if err != nil {
		return nil, err
	}
	jobs := []models.Job{}
	if _, err := decodeData(env, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Get fetches a single job. A missing job is (nil, nil).
func (s *JobsService) Get(ctx context.Context, id string) (*models.Job, error) {
	env, err := s.client.Get(ctx, "/jobs/"+id, nil)
	if api.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var job models.Job
	found, err := decodeData(env, &job)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &job, nil
}

// ApplyInput is the payload for a job application.
type ApplyInput struct {
	CVURL       string `json:"cvUrl"`
	CoverLetter string `json:"coverLetter"`
}

// Validate rejects incomplete applications before any network round trip.
func (in ApplyInput) Validate() error {
	if in.CVURL == "" {
		return validationError("cvUrl")
	}
	if in.CoverLetter == "" {
		return validationError("coverLetter")
	}
	return nil
}

// Apply submits an application against a job.
func (s *JobsService) Apply(ctx context.Context, jobID string, in ApplyInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	_, err := s.client.Post(ctx, "/jobs/"+jobID+"/apply", in)
	return err
}

// MyApplications lists the current user's job applications.
func (s *JobsService) MyApplications(ctx context.Context) ([]models.JobApplication, error) {
	env, err := s.client.Get(ctx, "/my-applications", nil)
	if err != nil {
		return nil, err
	}
	apps := []models.JobApplication{}
	if _, err := decodeData(env, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// NewJob is the payload for posting a job. Only approved employers may post;
// the backend is the final authority on that gate.
type NewJob struct {
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Category        string         `json:"category"`
	Location        string         `json:"location"`
	JobType         models.JobType `json:"jobType"`
	ExperienceLevel string         `json:"experienceLevel"`
	SalaryMin       *float64       `json:"salaryMin,omitempty"`
	SalaryMax       *float64       `json:"salaryMax,omitempty"`
	Skills          []string       `json:"skills"`
	Deadline        time.Time      `json:"deadline"`
}

// Validate rejects incomplete postings before any network round trip.
func (in NewJob) Validate() error {
	if in.Title == "" {
		return validationError("title")
	}
	if !models.ValidJobType(in.JobType) {
		return validationError("jobType")
	}
	return nil
}

// Create posts a new job and returns the created entity.
func (s *JobsService) Create(ctx context.Context, in NewJob) (*models.Job, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	env, err := s.client.Post(ctx, "/jobs", in)
	if err != nil {
		return nil, err
	}
	var job models.Job
	if _, err := decodeData(env, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// EmployerJobs lists the jobs posted by the current employer.
func (s *JobsService) EmployerJobs(ctx context.Context) ([]models.Job, error) {
	env, err := s.client.Get(ctx, "/employer/jobs", nil)
	if err != nil {
		return nil, err
	}
	jobs := []models.Job{}
	if _, err := decodeData(env, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// EmployerJobApplications lists the applicants for one of the current
// employer's jobs.
func (s *JobsService) EmployerJobApplications(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	env, err := s.client.Get(ctx, "/employer/jobs/"+jobID+"/applications", nil)
	if err != nil {
		return nil, err
	}
	apps := []models.JobApplication{}
	if _, err := decodeData(env, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
