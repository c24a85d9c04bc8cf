package models

import "time"

// JobType enumerates the employment arrangements a job can offer.
type JobType string

const (
	JobFullTime   JobType = "Full-time"
	JobPartTime   JobType = "Part-time"
	JobContract   JobType = "Contract"
	JobRemote     JobType = "Remote"
	JobInternship JobType = "Internship"
)

// JobStatus is the listing state of a job.
type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
)

// Job is a posting created by an approved employer.
type Job struct {
	ID              string    `gorm:"primaryKey" json:"_id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Location        string    `json:"location"`
	JobType         JobType   `json:"jobType"`
	ExperienceLevel string    `json:"experienceLevel"`
	SalaryMin       *float64  `json:"salaryMin,omitempty"`
	SalaryMax       *float64  `json:"salaryMax,omitempty"`
	Skills          []string  `gorm:"serializer:json" json:"skills"`
	Deadline        time.Time `json:"deadline"`
	PostedBy        string    `gorm:"index;not null" json:"postedBy"`
	Status          JobStatus `gorm:"default:open" json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"-"`
}

// ValidJobType reports whether t is one of the supported job types.
func ValidJobType(t JobType) bool {
	switch t {
	case JobFullTime, JobPartTime, JobContract, JobRemote, JobInternship:
		return true
	}
	return false
}

// JobApplication is a job-seeker's application against a job. Applications
// carry no lifecycle status: the flow is list-only for the applicant,
// asymmetric with project proposals.
type JobApplication struct {
	ID          string    `gorm:"primaryKey" json:"_id"`
	JobID       string    `gorm:"index;not null" json:"-"`
	Job         Job       `gorm:"foreignKey:JobID" json:"job"`
	Applicant   string    `gorm:"index;not null" json:"applicant"`
	CVURL       string    `gorm:"not null" json:"cvUrl"`
	CoverLetter string    `json:"coverLetter"`
	AppliedAt   time.Time `json:"appliedAt"`
}
