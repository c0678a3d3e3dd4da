package usecase

import (
	"context"

	catalogdomain "bookstore-backend/internal/catalog/domain"
	catalogdto "bookstore-backend/internal/catalog/dto"
)

type CatalogUsecase interface {
	// Search returns one normalized provider page, sorted by the requested
	// mode. Sorting applies to the fetched page only.
	Search(ctx context.Context, term string, page int, sortMode string) (*catalogdto.SearchResponse, error)

	// Featured returns the home-page shelf.
	Featured(ctx context.Context) ([]catalogdomain.Product, error)

	// GetBook returns the detail view plus related titles, or nil when the
	// volume does not exist.
	GetBook(ctx context.Context, id string) (*catalogdto.BookResponse, error)
}
