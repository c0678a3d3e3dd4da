package googlebooks

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	catalogdomain "bookstore-backend/internal/catalog/domain"

	books "google.golang.org/api/books/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// Client wraps the Google Books volumes API for detail pages and
// related-title lookups.
type Client struct {
	service     *books.Service
	placeholder string
}

// NewClient creates the Books service. baseURL overrides the API endpoint
// and is empty in production.
func NewClient(ctx context.Context, baseURL, placeholder string) (*Client, error) {
	opts := []option.ClientOption{option.WithoutAuthentication()}
	if baseURL != "" {
		opts = append(opts, option.WithEndpoint(baseURL))
	}

	service, err := books.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Books service: %w", err)
	}

	return &Client{service: service, placeholder: placeholder}, nil
}

// GetVolume fetches one volume by provider ID. A missing volume returns
// (nil, nil) so callers render a not-found state instead of failing.
func (c *Client) GetVolume(ctx context.Context, id string) (*catalogdomain.BookDetail, []string, error) {
	volume, err := c.service.Volumes.Get(id).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == 404 {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("google books volume lookup failed: %w", err)
	}

	info := volume.VolumeInfo
	if info == nil {
		info = &books.VolumeVolumeInfo{}
	}

	title := info.Title
	if title == "" {
		title = "Sem título"
	} else if info.Subtitle != "" {
		title = info.Title + ": " + info.Subtitle
	}

	detail := &catalogdomain.BookDetail{
		ID:            volume.Id,
		Title:         title,
		Description:   info.Description,
		Categories:    info.Categories,
		Cover:         c.coverOf(info),
		Authors:       strings.Join(info.Authors, ", "),
		PublishedYear: yearPattern.FindString(info.PublishedDate),
		PageCount:     info.PageCount,
		Dimensions:    dimensionsOf(info),
		Publisher:     info.Publisher,
		PublishedDate: info.PublishedDate,
	}
	return detail, info.Authors, nil
}

// Related searches volumes by subject, falling back to author when the
// volume carries no category.
func (c *Client) Related(ctx context.Context, categories, authors []string, max int64) ([]catalogdomain.Product, error) {
	var query string
	switch {
	case len(categories) > 0:
		query = "subject:" + categories[0]
	case len(authors) > 0:
		query = "inauthor:" + authors[0]
	default:
		return nil, nil
	}

	list, err := c.service.Volumes.List(query).MaxResults(max).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("google books related lookup failed: %w", err)
	}

	products := make([]catalogdomain.Product, 0, len(list.Items))
	for i, item := range list.Items {
		products = append(products, c.mapVolume(item, i))
	}
	return products, nil
}

func (c *Client) mapVolume(volume *books.Volume, idx int) catalogdomain.Product {
	info := volume.VolumeInfo
	if info == nil {
		info = &books.VolumeVolumeInfo{}
	}

	id := volume.Id
	if id == "" {
		title := info.Title
		if title == "" {
			title = "no-title"
		}
		id = fmt.Sprintf("%s-%d", title, idx)
	}

	name := info.Title
	if name == "" {
		name = "Sem título"
	}

	badge := "Livro"
	if len(info.Categories) > 0 {
		badge = info.Categories[0]
	} else if len(info.Authors) > 0 {
		badge = info.Authors[0]
	}

	return catalogdomain.Product{
		ID:          id,
		Name:        name,
		Image:       c.coverOf(info),
		Badge:       badge,
		Description: describeVolume(info),
		Source:      "googlebooks",
	}
}

func describeVolume(info *books.VolumeVolumeInfo) string {
	if info.Description != "" {
		return info.Description
	}
	if len(info.Categories) > 0 {
		categories := info.Categories
		if len(categories) > 5 {
			categories = categories[:5]
		}
		return strings.Join(categories, ", ")
	}
	if info.PublishedDate != "" {
		return "Publicado em " + info.PublishedDate
	}
	return "Publicado em desconhecido"
}

// coverOf prefers the larger thumbnail and upgrades the scheme; Google still
// hands out plain-http image links.
func (c *Client) coverOf(info *books.VolumeVolumeInfo) string {
	if info.ImageLinks == nil {
		return c.placeholder
	}
	link := info.ImageLinks.Thumbnail
	if link == "" {
		link = info.ImageLinks.SmallThumbnail
	}
	if link == "" {
		return c.placeholder
	}
	return strings.Replace(link, "http:", "https:", 1)
}

func dimensionsOf(info *books.VolumeVolumeInfo) string {
	if info.Dimensions == nil {
		return ""
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{info.Dimensions.Height, info.Dimensions.Width, info.Dimensions.Thickness} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " x ")
}
