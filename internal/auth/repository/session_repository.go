package repository

import (
	"encoding/json"
	"log"

	authdomain "bookstore-backend/internal/auth/domain"
	"bookstore-backend/internal/storage"
)

type sessionRepository struct {
	store storage.Store
}

func NewSessionRepository(store storage.Store) SessionRepository {
	return &sessionRepository{store: store}
}

// Get returns the visitor's active session, or nil for anonymous. Malformed
// records read as anonymous.
func (r *sessionRepository) Get(visitorID string) (*authdomain.Session, error) {
	value, found, err := r.store.Read(storage.KeySessionPrefix + visitorID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var session authdomain.Session
	if err := json.Unmarshal(value, &session); err != nil {
		log.Printf("[WARN] malformed session record for visitor %s, treating as anonymous", visitorID)
		return nil, nil
	}
	return &session, nil
}

// Put overwrites the singleton active session.
func (r *sessionRepository) Put(visitorID string, session authdomain.Session) error {
	value, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.store.Write(storage.KeySessionPrefix+visitorID, value)
}

func (r *sessionRepository) Delete(visitorID string) error {
	return r.store.Delete(storage.KeySessionPrefix + visitorID)
}
