package repository

import (
	"encoding/json"
	"log"

	cartdomain "bookstore-backend/internal/cart/domain"
	"bookstore-backend/internal/storage"
)

// cartRepository implements CartRepository on the whole-value store.
type cartRepository struct {
	store storage.Store
}

func NewCartRepository(store storage.Store) CartRepository {
	return &cartRepository{store: store}
}

// Get returns the visitor's cart. An absent record and a malformed one both
// read as an empty cart; malformation is never surfaced to the caller.
func (r *cartRepository) Get(visitorID string) (cartdomain.Cart, error) {
	value, found, err := r.store.Read(storage.KeyCartPrefix + visitorID)
	if err != nil {
		return nil, err
	}
	if !found {
		return cartdomain.Cart{}, nil
	}

	var cart cartdomain.Cart
	if err := json.Unmarshal(value, &cart); err != nil {
		log.Printf("[WARN] malformed cart record for visitor %s, treating as empty", visitorID)
		return cartdomain.Cart{}, nil
	}
	return cart, nil
}

// Save overwrites the whole cart record.
func (r *cartRepository) Save(visitorID string, cart cartdomain.Cart) error {
	value, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.store.Write(storage.KeyCartPrefix+visitorID, value)
}
