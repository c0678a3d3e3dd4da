package usecase

import (
	"errors"
	"fmt"
	"strings"

	cartdomain "bookstore-backend/internal/cart/domain"
	"bookstore-backend/internal/cart/repository"
	"bookstore-backend/pkg/whatsapp"
)

// ErrEmptyCart guards the checkout path: no order message is composed for an
// empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// EventCartUpdated is emitted after every cart mutation so other open views
// re-read the cart.
const EventCartUpdated = "cartUpdated"

type cartUsecase struct {
	cartRepo repository.CartRepository
	notifier Notifier
	waHost   string
	waPhone  string
}

func NewCartUsecase(cartRepo repository.CartRepository, notifier Notifier, waHost, waPhone string) CartUsecase {
	return &cartUsecase{
		cartRepo: cartRepo,
		notifier: notifier,
		waHost:   waHost,
		waPhone:  waPhone,
	}
}

func (u *cartUsecase) Get(visitorID string) (cartdomain.Cart, error) {
	return u.cartRepo.Get(visitorID)
}

// AddItem merges the item into the visitor's cart. An existing entry keeps
// its own name, image and price and only has its quantity increased; a new
// entry is appended. Quantities below one are clamped to one.
func (u *cartUsecase) AddItem(visitorID string, item cartdomain.CartItem) (cartdomain.Cart, error) {
	if item.Qty < 1 {
		item.Qty = 1
	}

	cart, err := u.cartRepo.Get(visitorID)
	if err != nil {
		return nil, err
	}

	if existing := cart.Find(item.ID); existing != nil {
		existing.Qty += item.Qty
	} else {
		cart = append(cart, item)
	}

	if err := u.cartRepo.Save(visitorID, cart); err != nil {
		return nil, err
	}
	u.notifier.Publish(visitorID, EventCartUpdated, cart)
	return cart, nil
}

// RemoveItem drops every entry with the given ID. A missing ID is a no-op,
// not an error.
func (u *cartUsecase) RemoveItem(visitorID, itemID string) (cartdomain.Cart, error) {
	cart, err := u.cartRepo.Get(visitorID)
	if err != nil {
		return nil, err
	}

	updated := make(cartdomain.Cart, 0, len(cart))
	for _, item := range cart {
		if item.ID != itemID {
			updated = append(updated, item)
		}
	}

	if err := u.cartRepo.Save(visitorID, updated); err != nil {
		return nil, err
	}
	u.notifier.Publish(visitorID, EventCartUpdated, updated)
	return updated, nil
}

// Checkout composes the order message and the WhatsApp deep link. Rejects an
// empty cart before composing anything.
func (u *cartUsecase) Checkout(visitorID string, delivery cartdomain.DeliveryInfo) (string, string, error) {
	cart, err := u.cartRepo.Get(visitorID)
	if err != nil {
		return "", "", err
	}
	if len(cart) == 0 {
		return "", "", ErrEmptyCart
	}

	message := ComposeOrderMessage(cart, delivery)
	return message, whatsapp.OrderLink(u.waHost, u.waPhone, message), nil
}

// ComposeOrderMessage renders the order summary sent to the store's WhatsApp
// contact: a header, one line per item in stored order, and a delivery block
// listing only the filled-in address fields. The delivery block is omitted
// entirely when every field is empty.
func ComposeOrderMessage(cart cartdomain.Cart, delivery cartdomain.DeliveryInfo) string {
	var b strings.Builder
	b.WriteString("Olá! Gostaria de comprar:\n")
	for _, item := range cart {
		fmt.Fprintf(&b, "\n- %s (%dx) - %s", item.Name, item.Qty, item.Price)
	}

	fields := []struct {
		label, value string
	}{
		{"Logradouro", delivery.Logradouro},
		{"Número", delivery.Numero},
		{"Complemento", delivery.Complemento},
		{"Bairro", delivery.Bairro},
		{"Cidade", delivery.Cidade},
		{"UF", delivery.UF},
		{"CEP", delivery.CEP},
		{"Ponto de referência", delivery.PontoReferencia},
		{"Código cidade", delivery.CodigoCidade},
	}

	var details strings.Builder
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(&details, "%s: %s\n", f.label, f.value)
		}
	}
	if details.Len() > 0 {
		b.WriteString("\n\nDados de entrega:\n")
		b.WriteString(details.String())
	}

	return b.String()
}
