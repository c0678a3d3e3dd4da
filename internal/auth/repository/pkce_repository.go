package repository

import (
	"encoding/json"

	authdomain "bookstore-backend/internal/auth/domain"
	"bookstore-backend/internal/storage"
)

type pkceRepository struct {
	store storage.Store
}

func NewPKCERepository(store storage.Store) PKCERepository {
	return &pkceRepository{store: store}
}

// Put overwrites any previous attempt's pair; old verifier/state values are
// never reused across attempts.
func (r *pkceRepository) Put(visitorID string, session authdomain.PKCESession) error {
	value, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.store.Write(storage.KeyPKCEPrefix+visitorID, value)
}

func (r *pkceRepository) Get(visitorID string) (*authdomain.PKCESession, error) {
	value, found, err := r.store.Read(storage.KeyPKCEPrefix + visitorID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var session authdomain.PKCESession
	if err := json.Unmarshal(value, &session); err != nil {
		return nil, nil
	}
	return &session, nil
}

func (r *pkceRepository) Delete(visitorID string) error {
	return r.store.Delete(storage.KeyPKCEPrefix + visitorID)
}
