package repository

import cartdomain "bookstore-backend/internal/cart/domain"

// CartRepository persists each visitor's cart as one whole-value record.
type CartRepository interface {
	Get(visitorID string) (cartdomain.Cart, error)
	Save(visitorID string, cart cartdomain.Cart) error
}
