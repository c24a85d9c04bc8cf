package models

import "time"

// ProposalStatus is the lifecycle state of a proposal.
type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalRejected ProposalStatus = "rejected"
)

// Terminal reports whether no further transition is permitted from s.
func (s ProposalStatus) Terminal() bool {
	return s == ProposalAccepted || s == ProposalRejected
}

// ValidProposalStatus reports whether s is a known status value.
func ValidProposalStatus(s ProposalStatus) bool {
	return s == ProposalPending || s.Terminal()
}

// CanTransitionProposal reports whether a proposal may move from one status
// to another. The only legal moves are pending→accepted and pending→rejected;
// there is no withdraw and no reopen.
func CanTransitionProposal(from, to ProposalStatus) bool {
	return from == ProposalPending && to.Terminal()
}

// Proposal is a freelancer's bid against a project. Exactly one of
// ProposedPrice or HourlyRate is set, matching the project's budget type.
// The partial unique index on ProjectID holds the at-most-one-acceptance
// rule in the schema itself, so concurrent accepts cannot both commit.
type Proposal struct {
	ID            string         `gorm:"primaryKey" json:"_id"`
	ProjectID     string         `gorm:"index;not null;uniqueIndex:uniq_proposals_one_accepted,where:status = 'accepted'" json:"project"`
	Freelancer    string         `gorm:"index;not null" json:"freelancer"`
	CoverLetter   string         `gorm:"not null" json:"coverLetter"`
	ProposedPrice *float64       `json:"proposedPrice,omitempty"`
	HourlyRate    *float64       `json:"hourlyRate,omitempty"`
	DeliveryTime  string         `json:"deliveryTime"`
	Status        ProposalStatus `gorm:"default:pending" json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"-"`
}
