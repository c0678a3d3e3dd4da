package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	catalogdomain "bookstore-backend/internal/catalog/domain"
)

// Client talks to the OpenLibrary search API and normalizes its documents.
type Client struct {
	baseURL     string
	coversURL   string
	placeholder string
	httpClient  *http.Client
}

func NewClient(baseURL, coversURL, placeholder string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		coversURL:   strings.TrimRight(coversURL, "/"),
		placeholder: placeholder,
		httpClient:  http.DefaultClient,
	}
}

type searchResponse struct {
	NumFound int   `json:"numFound"`
	Docs     []doc `json:"docs"`
}

type doc struct {
	Key              string          `json:"key"`
	CoverEditionKey  string          `json:"cover_edition_key"`
	Title            string          `json:"title"`
	Subtitle         string          `json:"subtitle"`
	CoverID          int64           `json:"cover_i"`
	Subject          []string        `json:"subject"`
	AuthorName       []string        `json:"author_name"`
	FirstSentence    json.RawMessage `json:"first_sentence"`
	RatingsAverage   float64         `json:"ratings_average"`
	FirstPublishYear int             `json:"first_publish_year"`
}

// Search runs a paginated search. byTitle selects the title= form of the
// query, otherwise the general q= form is used. Returns the normalized page
// and the provider's total hit count.
func (c *Client) Search(ctx context.Context, term string, byTitle bool, limit, page int) ([]catalogdomain.Product, int, error) {
	params := url.Values{}
	if byTitle {
		params.Set("title", term)
	} else {
		params.Set("q", term)
	}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))

	endpoint := fmt.Sprintf("%s/search.json?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("openlibrary search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("openlibrary search failed: status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, 0, fmt.Errorf("failed to decode openlibrary response: %w", err)
	}

	products := make([]catalogdomain.Product, 0, len(parsed.Docs))
	for i, d := range parsed.Docs {
		products = append(products, c.mapDoc(d, i))
	}

	numFound := parsed.NumFound
	if numFound == 0 {
		numFound = len(parsed.Docs)
	}
	return products, numFound, nil
}

// mapDoc normalizes one search document. All OpenLibrary quirks (slash-bearing
// keys, pluralized fields, first_sentence being either a string or a list)
// are handled here and nowhere else.
func (c *Client) mapDoc(d doc, idx int) catalogdomain.Product {
	id := d.Key
	if id == "" {
		id = d.CoverEditionKey
	}
	if id == "" {
		id = fmt.Sprintf("%s-%d", d.Title, idx)
	}
	id = strings.ReplaceAll(id, "/", "_")

	name := d.Title
	if d.Subtitle != "" {
		name = d.Title + ": " + d.Subtitle
	}

	image := c.placeholder
	if d.CoverID != 0 {
		image = c.CoverURL(d.CoverID)
	}

	badge := "Desconhecido"
	if len(d.Subject) > 0 {
		badge = d.Subject[0]
	} else if len(d.AuthorName) > 0 {
		badge = d.AuthorName[0]
	}

	return catalogdomain.Product{
		ID:               id,
		Name:             name,
		Image:            image,
		Badge:            badge,
		Description:      c.describe(d),
		Source:           "openlibrary",
		Rating:           d.RatingsAverage,
		FirstPublishYear: d.FirstPublishYear,
	}
}

func (c *Client) describe(d doc) string {
	if s := firstSentence(d.FirstSentence); s != "" {
		return s
	}
	if len(d.Subject) > 0 {
		subjects := d.Subject
		if len(subjects) > 5 {
			subjects = subjects[:5]
		}
		return strings.Join(subjects, ", ")
	}
	if d.FirstPublishYear != 0 {
		return fmt.Sprintf("Publicado em %d", d.FirstPublishYear)
	}
	return "Publicado em desconhecido"
}

// firstSentence tolerates both shapes the API returns for the field.
func firstSentence(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return strings.Join(many, " ")
	}
	return ""
}

// CoverURL derives the large cover image URL for a numeric cover identifier.
func (c *Client) CoverURL(coverID int64) string {
	return fmt.Sprintf("%s/b/id/%d-L.jpg", c.coversURL, coverID)
}
