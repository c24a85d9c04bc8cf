package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigboard/internal/api"
	"gigboard/internal/models"
	"gigboard/internal/roles"
	"gigboard/internal/services"
	"gigboard/internal/session"
	"gigboard/internal/workflow"
)

// startBackend serves the app on a real TCP listener so the SDK talks to it
// over HTTP, the way a deployed client would.
func startBackend(t *testing.T) (*Server, string) {
	t.Helper()
	srv, app := newTestServer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	// Wait for the listener to accept.
	baseURL := "http://" + ln.Addr().String()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := net.Dial("tcp", ln.Addr().String())
		if err == nil {
			conn.Close()
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	return srv, baseURL
}

func clientFor(baseURL string, sess *session.Session) *api.Client {
	if sess == nil {
		return api.NewClient(baseURL)
	}
	return api.NewClient(baseURL, api.WithTokenSource(sess.TokenSource()))
}

func TestEndToEndMarketplaceFlow(t *testing.T) {
	_, baseURL := startBackend(t)
	ctx := context.Background()

	auth := services.NewAuthService(api.NewClient(baseURL))

	cleo, err := auth.Signup(ctx, "Cleo", "cleo@example.com", "password123")
	require.NoError(t, err)
	finn, err := auth.Signup(ctx, "Finn", "finn@example.com", "password123")
	require.NoError(t, err)

	cleoProjects := services.NewProjectsService(clientFor(baseURL, cleo))
	finnProjects := services.NewProjectsService(clientFor(baseURL, finn))

	budget := 2500.0
	project, err := cleoProjects.Create(ctx, services.NewProject{
		Title:      "Marketplace revamp",
		BudgetType: models.BudgetFixed,
		Budget:     &budget,
	})
	require.NoError(t, err)
	require.NotEmpty(t, project.ID)

	pricing, err := project.Pricing()
	require.NoError(t, err)
	assert.Equal(t, models.BudgetFixed, pricing.Type)
	assert.Equal(t, budget, pricing.Amount)

	// Finn sees the project as a visitor and may bid.
	rel, err := finnProjects.Relationship(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, workflow.CanSubmitProposal(*rel, *project))

	price := 2200.0
	proposal, err := finnProjects.SubmitProposal(ctx, project.ID, services.NewProposal{
		CoverLetter:   "I can deliver this.",
		ProposedPrice: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProposalPending, proposal.Status)

	// After bidding Finn is a freelancer on the project; no second bid.
	rel, err = finnProjects.Relationship(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectRoleFreelancer, rel.Role)
	assert.False(t, workflow.CanSubmitProposal(*rel, *project))

	// Finn cannot list the proposals; Cleo can.
	_, err = finnProjects.Proposals(ctx, project.ID)
	assert.True(t, api.IsForbidden(err))

	proposals, err := cleoProjects.Proposals(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, proposals, 1)

	cleoRel, err := cleoProjects.Relationship(ctx, project.ID)
	require.NoError(t, err)
	actions := workflow.ProposalActions(*cleoRel, *project, proposals, proposals[0])
	assert.Equal(t, []workflow.Action{workflow.ActionAccept, workflow.ActionReject}, actions)

	// Cleo accepts; the project moves to in_progress with Finn selected.
	decided, err := cleoProjects.UpdateProposalStatus(ctx, proposal.ID, models.ProposalAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalAccepted, decided.Status)

	refetched, err := cleoProjects.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectInProgress, refetched.Status)
	assert.Equal(t, finn.User.ID, refetched.SelectedFreelancer)

	// A second decision on the same proposal conflicts.
	_, err = cleoProjects.UpdateProposalStatus(ctx, proposal.ID, models.ProposalRejected)
	assert.True(t, api.IsConflict(err))
}

func TestEndToEndJobApplicationFlow(t *testing.T) {
	srv, baseURL := startBackend(t)
	ctx := context.Background()

	auth := services.NewAuthService(api.NewClient(baseURL))
	alex, err := auth.Signup(ctx, "Alex", "alex@example.com", "password123")
	require.NoError(t, err)
	sam, err := auth.Signup(ctx, "Sam", "sam@example.com", "password123")
	require.NoError(t, err)

	// Alex becomes an approved employer and posts a job.
	alexEmployers := services.NewEmployersService(clientFor(baseURL, alex))
	_, err = alexEmployers.Apply(ctx, services.EmployerApplication{
		CompanyName:     "Alex GmbH",
		CompanyLocation: "Berlin",
	})
	require.NoError(t, err)
	require.NoError(t, srv.employers.SetApproval(ctx, alex.User.ID, models.ApprovalApproved))

	alexJobs := services.NewJobsService(clientFor(baseURL, alex))
	job, err := alexJobs.Create(ctx, services.NewJob{Title: "Backend Engineer", JobType: models.JobFullTime})
	require.NoError(t, err)

	// Sam finds it in the public listing and applies.
	samJobs := services.NewJobsService(clientFor(baseURL, sam))
	listed, err := samJobs.List(ctx, services.JobFilters{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, job.ID, listed[0].ID)

	err = samJobs.Apply(ctx, job.ID, services.ApplyInput{
		CVURL:       "https://cdn.example.com/cv/sam.pdf",
		CoverLetter: "I would like to apply.",
	})
	require.NoError(t, err)

	// The application shows up with the job nested under it.
	apps, err := samJobs.MyApplications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, job.ID, apps[0].Job.ID)

	// A second application to the same job conflicts.
	err = samJobs.Apply(ctx, job.ID, services.ApplyInput{
		CVURL:       "https://cdn.example.com/cv/sam.pdf",
		CoverLetter: "Applying again.",
	})
	assert.True(t, api.IsConflict(err))

	// Alex sees Sam's application on the posting.
	postings, err := alexJobs.EmployerJobs(ctx)
	require.NoError(t, err)
	require.Len(t, postings, 1)

	applicants, err := alexJobs.EmployerJobApplications(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, sam.User.ID, applicants[0].Applicant)
}

func TestEndToEndRoleResolution(t *testing.T) {
	srv, baseURL := startBackend(t)
	ctx := context.Background()

	auth := services.NewAuthService(api.NewClient(baseURL))
	sam, err := auth.Signup(ctx, "Sam", "sam@example.com", "password123")
	require.NoError(t, err)

	samEmployers := services.NewEmployersService(clientFor(baseURL, sam))
	resolver := roles.NewResolver(samEmployers, nil)

	// Fresh accounts are job seekers.
	res := resolver.Resolve(ctx, sam)
	assert.Equal(t, roles.RoleJobSeeker, res.Role)
	assert.True(t, res.Role.CanApplyToJobs())
	assert.False(t, res.Role.CanPostJobs())

	// Guests resolve without touching the network.
	assert.Equal(t, roles.RoleGuest, resolver.Resolve(ctx, nil).Role)

	// Applying as employer moves the role to pending.
	_, err = samEmployers.Apply(ctx, services.EmployerApplication{
		CompanyName:     "Sam Co",
		CompanyLocation: "Berlin",
	})
	require.NoError(t, err)
	assert.Equal(t, roles.RoleEmployerPending, resolver.Resolve(ctx, sam).Role)

	// Moderation approval flips it to approved, which unlocks posting.
	require.NoError(t, srv.employers.SetApproval(ctx, sam.User.ID, models.ApprovalApproved))
	res = resolver.Resolve(ctx, sam)
	assert.Equal(t, roles.RoleEmployerApproved, res.Role)
	assert.True(t, res.Role.CanPostJobs())

	// And the job posting actually goes through.
	jobs := services.NewJobsService(clientFor(baseURL, sam))
	job, err := jobs.Create(ctx, services.NewJob{Title: "Backend Engineer", JobType: models.JobFullTime})
	require.NoError(t, err)
	assert.Equal(t, models.JobOpen, job.Status)

	// A stale or foreign token degrades to job seeker, not an error.
	forged := &session.Session{User: &models.User{ID: "ghost"}, Token: "not-a-real-token"}
	forgedResolver := roles.NewResolver(
		services.NewEmployersService(clientFor(baseURL, forged)), nil)
	assert.Equal(t, roles.RoleJobSeeker, forgedResolver.Resolve(ctx, forged).Role)
}
