// Package workflow mirrors the proposal lifecycle client-side so the UI can
// decide which actions to offer. The backend owns the authoritative state
// machine; everything here is a pre-check, and callers re-fetch from the
// server after any mutation instead of trusting local assumptions.
package workflow

import "gigboard/internal/models"

// Action is a proposal action the UI may offer.
type Action string

const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
)

// hasAcceptedProposal reports whether any proposal in the list already
// reached accepted.
func hasAcceptedProposal(proposals []models.Proposal) bool {
	for _, p := range proposals {
		if p.Status == models.ProposalAccepted {
			return true
		}
	}
	return false
}

// ProposalActions returns the actions the current user may take on proposal p,
// given their relationship to the project and the project's full proposal
// list. Accept and reject are offered together or not at all: only to the
// project's client, only while p is pending, only while the project is open,
// and never once any proposal on the project is already accepted — the
// client-side safeguard for the one-acceptance-per-project invariant.
func ProposalActions(rel models.ProjectRelationship, project models.Project, proposals []models.Proposal, p models.Proposal) []Action {
	if rel.Role != models.ProjectRoleClient {
		return nil
	}
	if project.Status != models.ProjectOpen {
		return nil
	}
	if p.Status.Terminal() {
		return nil
	}
	if hasAcceptedProposal(proposals) {
		return nil
	}
	return []Action{ActionAccept, ActionReject}
}

// CanSubmitProposal reports whether the current user may bid on the project:
// a plain visitor (not the owner, no prior proposal) while the project is
// still open. There is no withdraw-and-resubmit; one proposal per freelancer
// per project.
func CanSubmitProposal(rel models.ProjectRelationship, project models.Project) bool {
	return rel.Role == models.ProjectRoleVisitor && project.Status == models.ProjectOpen
}
