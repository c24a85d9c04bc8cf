// Package models contains the domain types shared by the client SDK and the
// reference backend. JSON field names follow the backend wire contract
// (Mongo-style `_id` keys).
package models

import "time"

// User represents an authenticated account.
type User struct {
	ID        string    `gorm:"primaryKey" json:"_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// ApprovalStatus is the moderation state of an employer profile.
type ApprovalStatus string

const (
	ApprovalNone     ApprovalStatus = "none"
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// EmployerProfile is a user's employer application. One per user; it is never
// deleted, only status-transitioned by an external approval workflow.
type EmployerProfile struct {
	ID              string         `gorm:"primaryKey" json:"_id"`
	UserID          string         `gorm:"uniqueIndex;not null" json:"user"`
	CompanyName     string         `gorm:"not null" json:"companyName"`
	CompanyWebsite  string         `json:"companyWebsite,omitempty"`
	CompanyLocation string         `json:"companyLocation"`
	Description     string         `json:"description"`
	Approval        ApprovalStatus `gorm:"default:pending" json:"approval"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"-"`
}
