package repository

import authdomain "bookstore-backend/internal/auth/domain"

// UserDirectoryRepository holds the registered local accounts as one
// whole-value record.
type UserDirectoryRepository interface {
	All() ([]authdomain.User, error)
	FindByEmail(email string) (*authdomain.User, error)
	Append(user authdomain.User) error
}

// SessionRepository holds the singleton active session per visitor.
type SessionRepository interface {
	Get(visitorID string) (*authdomain.Session, error)
	Put(visitorID string, session authdomain.Session) error
	Delete(visitorID string) error
}

// PKCERepository holds the transient verifier/state pair for one login
// attempt per visitor.
type PKCERepository interface {
	Put(visitorID string, session authdomain.PKCESession) error
	Get(visitorID string) (*authdomain.PKCESession, error)
	Delete(visitorID string) error
}
