package models

import "time"

// OrganizationType distinguishes partner organizations from social ones.
type OrganizationType string

const (
	OrgPartner OrganizationType = "partner"
	OrgSocial  OrganizationType = "social"
)

// Section is a titled content block nested inside an organization profile.
type Section struct {
	Title   string `json:"title"`
	Details string `json:"details"`
	Media   string `json:"media,omitempty"`
}

// Organization is a directory entry submitted by a user and moderated
// externally.
type Organization struct {
	ID           string           `gorm:"primaryKey" json:"_id"`
	Name         string           `gorm:"not null" json:"name"`
	Type         OrganizationType `json:"type"`
	Email        string           `json:"email,omitempty"`
	Phone        string           `json:"phone,omitempty"`
	Location     string           `json:"location,omitempty"`
	Description  string           `json:"description"`
	ProfileImage string           `json:"profileImage,omitempty"`
	Status       ApprovalStatus   `gorm:"default:pending" json:"status"`
	Sections     []Section        `gorm:"serializer:json" json:"sections,omitempty"`
	SubmittedBy  string           `gorm:"index" json:"submittedBy,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"-"`
}

// Activity is an event hosted by an organization.
type Activity struct {
	ID             string    `gorm:"primaryKey" json:"_id"`
	OrganizationID string    `gorm:"index" json:"organization,omitempty"`
	Title          string    `gorm:"not null" json:"title"`
	Details        string    `json:"details"`
	Date           time.Time `json:"date"`
	Place          string    `json:"place"`
	Image          string    `json:"image,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
