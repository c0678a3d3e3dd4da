package usecase

import (
	cartdomain "bookstore-backend/internal/cart/domain"
)

// Notifier broadcasts a change event to the visitor's open views.
// Consumers define this interface so tests can assert delivery.
type Notifier interface {
	Publish(visitorID, event string, payload interface{})
}

type CartUsecase interface {
	Get(visitorID string) (cartdomain.Cart, error)
	AddItem(visitorID string, item cartdomain.CartItem) (cartdomain.Cart, error)
	RemoveItem(visitorID, itemID string) (cartdomain.Cart, error)
	Checkout(visitorID string, delivery cartdomain.DeliveryInfo) (message, link string, err error)
}
