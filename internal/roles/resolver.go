// Package roles derives the current user's operative role from local auth
// state plus the remote employer-status check, and answers which actions the
// role permits. Gating here is UX only: the backend independently rejects
// disallowed actions and remains the security boundary.
package roles

import (
	"context"
	"log/slog"

	"gigboard/internal/models"
	"gigboard/internal/services"
	"gigboard/internal/session"
)

// Role is the user's operative role on the job-board axis. The project axis
// (client/freelancer/visitor) is resolved per project via
// ProjectsService.Relationship, not here.
type Role string

const (
	RoleGuest            Role = "guest"
	RoleJobSeeker        Role = "job_seeker"
	RoleEmployerPending  Role = "employer_pending"
	RoleEmployerApproved Role = "employer_approved"
)

// CanApplyToJobs reports whether the role may submit job applications.
// Approved employers post jobs; they do not apply to them.
func (r Role) CanApplyToJobs() bool {
	return r == RoleJobSeeker || r == RoleEmployerPending
}

// CanPostJobs reports whether the role may create job postings.
func (r Role) CanPostJobs() bool {
	return r == RoleEmployerApproved
}

// CanManageApplicants reports whether the role may view its jobs' applicants.
func (r Role) CanManageApplicants() bool {
	return r == RoleEmployerApproved
}

// CanApplyAsEmployer reports whether the role may submit an employer
// application. A pending application blocks a second one.
func (r Role) CanApplyAsEmployer() bool {
	return r == RoleJobSeeker
}

// Resolution is the outcome of a role resolution.
type Resolution struct {
	Role           Role
	EmployerStatus services.EmployerStatus
}

// Resolver combines session state with the employer-status endpoint.
type Resolver struct {
	employers *services.EmployersService
	logger    *slog.Logger
}

// NewResolver creates a role resolver. logger may be nil.
func NewResolver(employers *services.EmployersService, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{employers: employers, logger: logger}
}

// Resolve determines the operative role for the given session.
//
// A failed employer-status fetch (401, 403, network) resolves to job_seeker
// silently: most users are not employers, so "couldn't confirm employer"
// is the expected path, not a fault. Resolve never returns an error for it.
func (r *Resolver) Resolve(ctx context.Context, sess *session.Session) Resolution {
	if !sess.Authenticated() {
		return Resolution{Role: RoleGuest}
	}

	status, err := r.employers.Status(ctx)
	if err != nil {
		r.logger.Debug("employer status unavailable, resolving as job seeker",
			slog.String("error", err.Error()))
		return Resolution{Role: RoleJobSeeker}
	}

	res := Resolution{Role: RoleJobSeeker, EmployerStatus: status}
	switch {
	case status.Approved:
		res.Role = RoleEmployerApproved
	case status.Status == models.ApprovalPending:
		res.Role = RoleEmployerPending
	}
	return res
}
