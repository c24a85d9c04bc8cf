package seed

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"gigboard/internal/models"
)

// Seeder orchestrates demo-data generation.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	logger  *slog.Logger
}

// NewSeeder creates a seeder over db.
func NewSeeder(db *gorm.DB, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Seeder{db: db, factory: NewFactory(db), logger: logger}
}

// ClearAll deletes all rows from every seeded table. Order matters for the
// foreign keys.
func (s *Seeder) ClearAll() error {
	tables := []any{
		&models.Proposal{},
		&models.Project{},
		&models.JobApplication{},
		&models.Job{},
		&models.EmployerProfile{},
		&models.Activity{},
		&models.Organization{},
		&models.AudioBook{},
		&models.Opinion{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("clear table %T: %w", table, err)
		}
	}
	s.logger.Info("cleared all tables")
	return nil
}

// Run populates the database with a connected demo dataset: approved and
// pending employers, seekers with applications and proposals, plus directory
// and feed content.
func (s *Seeder) Run(numSeekers, numJobs, numProjects int) error {
	employers := make([]*models.User, 0, 4)
	for i := 0; i < 4; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return err
		}
		approval := models.ApprovalApproved
		if i == 3 {
			approval = models.ApprovalPending
		}
		if _, err := s.factory.CreateEmployerProfile(user, approval); err != nil {
			return err
		}
		employers = append(employers, user)
	}

	seekers := make([]*models.User, 0, numSeekers)
	for i := 0; i < numSeekers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return err
		}
		seekers = append(seekers, user)
	}
	s.logger.Info("seeded users", "employers", len(employers), "seekers", len(seekers))

	// Jobs belong to the approved employers only; the pending one exercises
	// the posting gate.
	jobs := make([]*models.Job, 0, numJobs)
	for i := 0; i < numJobs; i++ {
		job, err := s.factory.CreateJob(employers[i%3])
		if err != nil {
			return err
		}
		jobs = append(jobs, job)
	}
	for i, seeker := range seekers {
		if len(jobs) == 0 {
			break
		}
		if _, err := s.factory.CreateApplication(jobs[i%len(jobs)], seeker); err != nil {
			return err
		}
	}
	s.logger.Info("seeded jobs", "jobs", len(jobs), "applications", len(seekers))

	projects := make([]*models.Project, 0, numProjects)
	for i := 0; i < numProjects; i++ {
		project, err := s.factory.CreateProject(employers[i%3])
		if err != nil {
			return err
		}
		projects = append(projects, project)
	}
	proposals := 0
	for i, seeker := range seekers {
		if len(projects) == 0 {
			break
		}
		if _, err := s.factory.CreateProposal(projects[i%len(projects)], seeker); err != nil {
			return err
		}
		proposals++
	}
	s.logger.Info("seeded projects", "projects", len(projects), "proposals", proposals)

	for i := 0; i < 5 && len(seekers) > 0; i++ {
		org, err := s.factory.CreateOrganization(seekers[i%len(seekers)])
		if err != nil {
			return err
		}
		for j := 0; j < 2; j++ {
			if _, err := s.factory.CreateActivity(org); err != nil {
				return err
			}
		}
	}
	for i := 0; i < 8; i++ {
		if _, err := s.factory.CreateAudioBook(); err != nil {
			return err
		}
	}
	for _, seeker := range seekers {
		if _, err := s.factory.CreateOpinion(seeker); err != nil {
			return err
		}
	}
	s.logger.Info("seeded directory and feed content")

	return nil
}
