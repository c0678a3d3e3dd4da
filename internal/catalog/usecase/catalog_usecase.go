package usecase

import (
	"context"
	"log"
	"sort"
	"strings"

	catalogdomain "bookstore-backend/internal/catalog/domain"
	catalogdto "bookstore-backend/internal/catalog/dto"
	"bookstore-backend/pkg/googlebooks"
	"bookstore-backend/pkg/openlibrary"
)

const (
	featuredShelfSize = 10
	relatedFetchSize  = 12
	relatedShelfSize  = 10
)

type catalogUsecase struct {
	openLibrary   *openlibrary.Client
	googleBooks   *googlebooks.Client
	pageSize      int
	defaultQuery  string
	featuredQuery string
}

func NewCatalogUsecase(openLibrary *openlibrary.Client, googleBooks *googlebooks.Client, pageSize int, defaultQuery, featuredQuery string) CatalogUsecase {
	return &catalogUsecase{
		openLibrary:   openLibrary,
		googleBooks:   googleBooks,
		pageSize:      pageSize,
		defaultQuery:  defaultQuery,
		featuredQuery: featuredQuery,
	}
}

func (u *catalogUsecase) Search(ctx context.Context, term string, page int, sortMode string) (*catalogdto.SearchResponse, error) {
	if page < 1 {
		page = 1
	}

	term = strings.TrimSpace(term)
	byTitle := term != ""
	query := term
	if !byTitle {
		query = u.defaultQuery
	}

	products, numFound, err := u.openLibrary.Search(ctx, query, byTitle, u.pageSize, page)
	if err != nil {
		return nil, err
	}

	totalPages := (numFound + u.pageSize - 1) / u.pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	sortPage(products, sortMode)

	return &catalogdto.SearchResponse{
		Products:   products,
		Total:      numFound,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func (u *catalogUsecase) Featured(ctx context.Context) ([]catalogdomain.Product, error) {
	products, _, err := u.openLibrary.Search(ctx, u.featuredQuery, false, featuredShelfSize, 1)
	if err != nil {
		return nil, err
	}
	if len(products) > featuredShelfSize {
		products = products[:featuredShelfSize]
	}
	return products, nil
}

func (u *catalogUsecase) GetBook(ctx context.Context, id string) (*catalogdto.BookResponse, error) {
	detail, authors, err := u.googleBooks.GetVolume(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, nil
	}

	related, err := u.googleBooks.Related(ctx, detail.Categories, authors, relatedFetchSize)
	if err != nil {
		// Detail still renders; the shelf just stays empty.
		log.Printf("[WARN] related lookup failed for volume %s: %v", id, err)
		related = nil
	}

	filtered := make([]catalogdomain.Product, 0, len(related))
	for _, r := range related {
		if r.ID == detail.ID {
			continue
		}
		filtered = append(filtered, r)
		if len(filtered) == relatedShelfSize {
			break
		}
	}

	return &catalogdto.BookResponse{Book: detail, Related: filtered}, nil
}

// sortPage reorders the fetched page in place. Relevance keeps provider
// order; the sort is stable so ties keep it too.
func sortPage(products []catalogdomain.Product, mode string) {
	switch mode {
	case catalogdomain.SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case catalogdomain.SortYearDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].FirstPublishYear > products[j].FirstPublishYear
		})
	case catalogdomain.SortYearAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].FirstPublishYear < products[j].FirstPublishYear
		})
	}
}
