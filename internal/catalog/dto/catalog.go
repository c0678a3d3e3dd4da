package dto

import catalogdomain "bookstore-backend/internal/catalog/domain"

type SearchResponse struct {
	Products   []catalogdomain.Product `json:"products"`
	Total      int                     `json:"total"`
	Page       int                     `json:"page"`
	TotalPages int                     `json:"total_pages"`
}

type FeaturedResponse struct {
	Products []catalogdomain.Product `json:"products"`
}

type BookResponse struct {
	Book    *catalogdomain.BookDetail `json:"book"`
	Related []catalogdomain.Product   `json:"related"`
}
