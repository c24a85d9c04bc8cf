// Package seed provides helpers to create demo and test data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gigboard/internal/models"
)

// DefaultPassword is shared by every seeded account.
const DefaultPassword = "password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// pastTime spreads created_at timestamps over the last maxDays days so lists
// don't look machine-generated.
func (f *Factory) pastTime(maxDays int) time.Time {
	daysBack := f.rand.Intn(maxDays)
	hoursBack := f.rand.Intn(24)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	user := &models.User{
		ID:        uuid.NewString(),
		Name:      gofakeit.Name(),
		Email:     gofakeit.Email(),
		Password:  string(hashed),
		Phone:     gofakeit.Phone(),
		Location:  gofakeit.City(),
		CreatedAt: f.pastTime(365),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateEmployerProfile persists an employer application for user with the
// given approval status.
func (f *Factory) CreateEmployerProfile(user *models.User, approval models.ApprovalStatus) (*models.EmployerProfile, error) {
	profile := &models.EmployerProfile{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		CompanyName:     gofakeit.Company(),
		CompanyWebsite:  gofakeit.URL(),
		CompanyLocation: gofakeit.City(),
		Description:     gofakeit.Sentence(12),
		Approval:        approval,
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

var jobCategories = []string{"Engineering", "Design", "Marketing", "Sales", "Support", "Finance"}

var jobTypes = []models.JobType{
	models.JobFullTime,
	models.JobPartTime,
	models.JobContract,
	models.JobRemote,
	models.JobInternship,
}

var experienceLevels = []string{"Entry", "Mid", "Senior", "Lead"}

// CreateJob persists a job posting owned by poster.
func (f *Factory) CreateJob(poster *models.User, overrides ...func(*models.Job)) (*models.Job, error) {
	min := float64(gofakeit.Number(30, 80)) * 1000
	max := min + float64(gofakeit.Number(10, 60))*1000
	job := &models.Job{
		ID:              uuid.NewString(),
		Title:           gofakeit.JobTitle(),
		Description:     gofakeit.Paragraph(1, 3, 8, "\n"),
		Category:        jobCategories[f.rand.Intn(len(jobCategories))],
		Location:        gofakeit.City(),
		JobType:         jobTypes[f.rand.Intn(len(jobTypes))],
		ExperienceLevel: experienceLevels[f.rand.Intn(len(experienceLevels))],
		SalaryMin:       &min,
		SalaryMax:       &max,
		Skills:          []string{gofakeit.ProgrammingLanguage(), gofakeit.ProgrammingLanguage(), gofakeit.HackerNoun()},
		Deadline:        time.Now().AddDate(0, 1, 0),
		PostedBy:        poster.ID,
		Status:          models.JobOpen,
		CreatedAt:       f.pastTime(60),
	}
	for _, override := range overrides {
		override(job)
	}
	if err := f.db.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// CreateApplication persists a job application by applicant against job.
func (f *Factory) CreateApplication(job *models.Job, applicant *models.User) (*models.JobApplication, error) {
	app := &models.JobApplication{
		ID:          uuid.NewString(),
		JobID:       job.ID,
		Applicant:   applicant.ID,
		CVURL:       fmt.Sprintf("https://cdn.example.com/cv/%s.pdf", uuid.NewString()),
		CoverLetter: gofakeit.Paragraph(1, 2, 10, " "),
		AppliedAt:   f.pastTime(30),
	}
	if err := f.db.Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// CreateProject persists a freelance project owned by poster. Budget fields
// follow the exclusivity rule for the rolled budget type.
func (f *Factory) CreateProject(poster *models.User, overrides ...func(*models.Project)) (*models.Project, error) {
	project := &models.Project{
		ID:          uuid.NewString(),
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
		Category:    jobCategories[f.rand.Intn(len(jobCategories))],
		Skills:      []string{gofakeit.ProgrammingLanguage(), gofakeit.HackerNoun()},
		Deadline:    time.Now().AddDate(0, 2, 0),
		PostedBy:    poster.ID,
		Status:      models.ProjectOpen,
		CreatedAt:   f.pastTime(60),
	}
	if f.rand.Intn(2) == 0 {
		amount := float64(gofakeit.Number(500, 10000))
		project.BudgetType = models.BudgetFixed
		project.Budget = &amount
	} else {
		rate := float64(gofakeit.Number(20, 150))
		project.BudgetType = models.BudgetHourly
		project.HourlyRate = &rate
	}
	for _, override := range overrides {
		override(project)
	}
	if err := f.db.Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// CreateProposal persists a pending proposal by freelancer against project,
// priced to match the project's budget type.
func (f *Factory) CreateProposal(project *models.Project, freelancer *models.User) (*models.Proposal, error) {
	proposal := &models.Proposal{
		ID:           uuid.NewString(),
		ProjectID:    project.ID,
		Freelancer:   freelancer.ID,
		CoverLetter:  gofakeit.Paragraph(1, 2, 10, " "),
		DeliveryTime: fmt.Sprintf("%d days", gofakeit.Number(3, 45)),
		Status:       models.ProposalPending,
		CreatedAt:    f.pastTime(20),
	}
	if project.BudgetType == models.BudgetFixed {
		price := float64(gofakeit.Number(400, 9000))
		proposal.ProposedPrice = &price
	} else {
		rate := float64(gofakeit.Number(15, 140))
		proposal.HourlyRate = &rate
	}
	if err := f.db.Create(proposal).Error; err != nil {
		return nil, err
	}
	return proposal, nil
}

// CreateOrganization persists a directory entry.
func (f *Factory) CreateOrganization(submitter *models.User) (*models.Organization, error) {
	orgType := models.OrgPartner
	if f.rand.Intn(2) == 0 {
		orgType = models.OrgSocial
	}
	org := &models.Organization{
		ID:           uuid.NewString(),
		Name:         gofakeit.Company(),
		Type:         orgType,
		Email:        gofakeit.Email(),
		Phone:        gofakeit.Phone(),
		Location:     gofakeit.City(),
		Description:  gofakeit.Sentence(15),
		ProfileImage: fmt.Sprintf("https://picsum.photos/seed/%s/400/400", uuid.NewString()),
		Status:       models.ApprovalApproved,
		Sections: []models.Section{
			{Title: "About", Details: gofakeit.Paragraph(1, 2, 10, " ")},
			{Title: "Mission", Details: gofakeit.Sentence(12)},
		},
		SubmittedBy: submitter.ID,
		CreatedAt:   f.pastTime(180),
	}
	if err := f.db.Create(org).Error; err != nil {
		return nil, err
	}
	return org, nil
}

// CreateActivity persists an event under org.
func (f *Factory) CreateActivity(org *models.Organization) (*models.Activity, error) {
	activity := &models.Activity{
		ID:             uuid.NewString(),
		OrganizationID: org.ID,
		Title:          gofakeit.Sentence(3),
		Details:        gofakeit.Paragraph(1, 2, 8, " "),
		Date:           time.Now().AddDate(0, 0, gofakeit.Number(1, 60)),
		Place:          gofakeit.City(),
		Image:          fmt.Sprintf("https://picsum.photos/seed/%s/600/400", uuid.NewString()),
	}
	if err := f.db.Create(activity).Error; err != nil {
		return nil, err
	}
	return activity, nil
}

// CreateAudioBook persists a catalogue entry.
func (f *Factory) CreateAudioBook() (*models.AudioBook, error) {
	book := &models.AudioBook{
		ID:          uuid.NewString(),
		Title:       gofakeit.BookTitle(),
		Author:      gofakeit.BookAuthor(),
		Narrator:    gofakeit.Name(),
		CoverImage:  fmt.Sprintf("https://picsum.photos/seed/%s/300/450", uuid.NewString()),
		AudioURL:    fmt.Sprintf("https://cdn.example.com/audio/%s.mp3", uuid.NewString()),
		Duration:    gofakeit.Number(1800, 43200),
		Category:    gofakeit.BookGenre(),
		Description: gofakeit.Paragraph(1, 2, 10, " "),
	}
	if err := f.db.Create(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

// CreateOpinion persists a feed post authored by user.
func (f *Factory) CreateOpinion(user *models.User) (*models.Opinion, error) {
	opinion := &models.Opinion{
		ID:        uuid.NewString(),
		Author:    user.ID,
		Content:   gofakeit.Sentence(gofakeit.Number(8, 25)),
		CreatedAt: f.pastTime(14),
	}
	if err := f.db.Create(opinion).Error; err != nil {
		return nil, err
	}
	return opinion, nil
}
