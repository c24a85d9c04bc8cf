package models

import (
	"errors"
	"time"
)

// BudgetType selects how a project is priced.
type BudgetType string

const (
	BudgetFixed  BudgetType = "fixed"
	BudgetHourly BudgetType = "hourly"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectOpen       ProjectStatus = "open"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

// Budget-exclusivity violations reported by Project.Pricing and friends.
var (
	ErrBudgetMissing   = errors.New("budget amount not set for budget type")
	ErrBudgetAmbiguous = errors.New("both budget and hourlyRate are set")
	ErrBadBudgetType   = errors.New("budgetType must be fixed or hourly")
)

// Project is a client's freelance listing. Exactly one of Budget or
// HourlyRate is populated, keyed on BudgetType.
type Project struct {
	ID                 string        `gorm:"primaryKey" json:"_id"`
	Title              string        `gorm:"not null" json:"title"`
	Description        string        `json:"description"`
	Category           string        `json:"category"`
	BudgetType         BudgetType    `gorm:"not null" json:"budgetType"`
	Budget             *float64      `json:"budget,omitempty"`
	HourlyRate         *float64      `json:"hourlyRate,omitempty"`
	Skills             []string      `gorm:"serializer:json" json:"skills"`
	Deadline           time.Time     `json:"deadline"`
	PostedBy           string        `gorm:"index;not null" json:"postedBy"`
	Status             ProjectStatus `gorm:"default:open" json:"status"`
	SelectedFreelancer string        `json:"selectedFreelancer,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"-"`
}

// ProjectRole is the caller's relationship to a specific project.
type ProjectRole string

const (
	ProjectRoleClient     ProjectRole = "client"
	ProjectRoleFreelancer ProjectRole = "freelancer"
	ProjectRoleVisitor    ProjectRole = "visitor"
)

// ProjectRelationship is the explicit answer to "what am I to this project":
// its owner, a freelancer with a proposal on it (carried alongside), or a
// plain visitor.
type ProjectRelationship struct {
	Role     ProjectRole `json:"role"`
	Proposal *Proposal   `json:"proposal,omitempty"`
}

// Pricing is the tagged form of a project's budget: the amount is a fixed
// total when Type is fixed, a per-hour rate when Type is hourly.
type Pricing struct {
	Type   BudgetType
	Amount float64
}

// Pricing resolves the budget fields into their tagged form, rejecting
// projects where the exclusivity invariant does not hold.
func (p *Project) Pricing() (Pricing, error) {
	switch p.BudgetType {
	case BudgetFixed:
		if p.Budget == nil {
			return Pricing{}, ErrBudgetMissing
		}
		if p.HourlyRate != nil {
			return Pricing{}, ErrBudgetAmbiguous
		}
		return Pricing{Type: BudgetFixed, Amount: *p.Budget}, nil
	case BudgetHourly:
		if p.HourlyRate == nil {
			return Pricing{}, ErrBudgetMissing
		}
		if p.Budget != nil {
			return Pricing{}, ErrBudgetAmbiguous
		}
		return Pricing{Type: BudgetHourly, Amount: *p.HourlyRate}, nil
	default:
		return Pricing{}, ErrBadBudgetType
	}
}

// ValidateBudget checks the budget-exclusivity invariant without caring about
// the amount.
func (p *Project) ValidateBudget() error {
	_, err := p.Pricing()
	return err
}
