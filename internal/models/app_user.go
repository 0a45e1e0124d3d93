package models

import (
	"time"

	"homeledger/internal/uuid"
)

// Role is an AppUser permission level.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// AppUser links an external identity to a role. AuthSubjectID holds a
// pending placeholder until the invited user first signs in.
type AppUser struct {
	Base
	AuthSubjectID string     `gorm:"uniqueIndex;not null" json:"-"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	Name          string     `json:"name"`
	Role          Role       `gorm:"not null" json:"role"`
	IsActive      bool       `gorm:"not null" json:"is_active"`
	LastSeenAt    *time.Time `json:"last_seen_at,omitempty"`
}

// IsPending reports whether the user was invited but has never signed in.
func (u *AppUser) IsPending() bool {
	return uuid.IsPendingSubject(u.AuthSubjectID)
}
