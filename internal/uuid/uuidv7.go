package uuid

import (
	googleuuid "github.com/google/uuid"
)

// PendingPrefix marks an auth subject id that has not been linked to a real
// identity yet. Invited users carry it until their first sign-in.
const PendingPrefix = "pending_"

// New returns a time-ordered UUIDv7 string for use as a primary key.
// Falls back to a random UUIDv4 if the v7 generator fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// NewPendingSubject returns a placeholder auth subject id for an invited user.
// The suffix is a UUIDv7: time-ordered, with 74 random bits, so it cannot be
// guessed and never collides with a real provider subject.
func NewPendingSubject() string {
	return PendingPrefix + New()
}

// IsPendingSubject reports whether subject is a placeholder issued by NewPendingSubject.
func IsPendingSubject(subject string) bool {
	return len(subject) > len(PendingPrefix) && subject[:len(PendingPrefix)] == PendingPrefix
}

// Parse validates and normalizes a UUID string.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
