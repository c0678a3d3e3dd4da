package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	catalogdomain "bookstore-backend/internal/catalog/domain"
	"bookstore-backend/pkg/googlebooks"
	"bookstore-backend/pkg/openlibrary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOpenLibrary struct {
	server    *httptest.Server
	response  map[string]interface{}
	status    int
	lastQuery map[string]string
}

func newFakeOpenLibrary() *fakeOpenLibrary {
	f := &fakeOpenLibrary{
		status:   http.StatusOK,
		response: map[string]interface{}{"numFound": 0, "docs": []interface{}{}},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", func(w http.ResponseWriter, r *http.Request) {
		f.lastQuery = map[string]string{
			"title": r.URL.Query().Get("title"),
			"q":     r.URL.Query().Get("q"),
			"limit": r.URL.Query().Get("limit"),
			"page":  r.URL.Query().Get("page"),
		}
		if f.status != http.StatusOK {
			w.WriteHeader(f.status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.response)
	})
	f.server = httptest.NewServer(mux)
	return f
}

type fakeGoogleBooks struct {
	server *httptest.Server
	volume map[string]interface{}
	items  []interface{}
}

func newFakeGoogleBooks() *fakeGoogleBooks {
	f := &fakeGoogleBooks{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(r.URL.Path, "/volumes/"):
			if f.volume == nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_ = json.NewEncoder(w).Encode(f.volume)
		default:
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"items": f.items})
		}
	}))
	return f
}

func newTestUsecase(t *testing.T) (CatalogUsecase, *fakeOpenLibrary, *fakeGoogleBooks) {
	t.Helper()
	ol := newFakeOpenLibrary()
	t.Cleanup(ol.server.Close)
	gb := newFakeGoogleBooks()
	t.Cleanup(gb.server.Close)

	olClient := openlibrary.NewClient(ol.server.URL, "https://covers.example", "/placeholder.svg")
	gbClient, err := googlebooks.NewClient(context.Background(), gb.server.URL, "/placeholder.svg")
	require.NoError(t, err)

	uc := NewCatalogUsecase(olClient, gbClient, 20, "Programação", "Batman")
	return uc, ol, gb
}

func TestSearchZeroResultsIsEmptySinglePage(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	result, err := uc.Search(context.Background(), "nothing-matches", 1, catalogdomain.SortRelevance)
	require.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 1, result.TotalPages)
}

func TestSearchMapsProviderDocuments(t *testing.T) {
	uc, ol, _ := newTestUsecase(t)
	ol.response = map[string]interface{}{
		"numFound": 2,
		"docs": []interface{}{
			map[string]interface{}{
				"key":                "/works/OL1W",
				"title":              "Clean Code",
				"subtitle":           "A Handbook",
				"cover_i":            123,
				"subject":            []string{"Software", "Craft"},
				"author_name":        []string{"Robert Martin"},
				"first_publish_year": 2008,
				"ratings_average":    4.2,
			},
			map[string]interface{}{
				"title":       "No Cover Book",
				"author_name": []string{"Anon"},
			},
		},
	}

	result, err := uc.Search(context.Background(), "clean code", 1, catalogdomain.SortRelevance)
	require.NoError(t, err)
	require.Len(t, result.Products, 2)

	first := result.Products[0]
	assert.Equal(t, "_works_OL1W", first.ID)
	assert.Equal(t, "Clean Code: A Handbook", first.Name)
	assert.Equal(t, "https://covers.example/b/id/123-L.jpg", first.Image)
	assert.Equal(t, "Software", first.Badge)
	assert.Equal(t, "openlibrary", first.Source)
	assert.Equal(t, 2008, first.FirstPublishYear)

	second := result.Products[1]
	assert.Equal(t, "/placeholder.svg", second.Image)
	assert.Equal(t, "Anon", second.Badge)
}

func TestSearchUsesTitleFormForTermsAndDefaultOtherwise(t *testing.T) {
	uc, ol, _ := newTestUsecase(t)

	_, err := uc.Search(context.Background(), "  sicp  ", 2, catalogdomain.SortRelevance)
	require.NoError(t, err)
	assert.Equal(t, "sicp", ol.lastQuery["title"])
	assert.Empty(t, ol.lastQuery["q"])
	assert.Equal(t, "20", ol.lastQuery["limit"])
	assert.Equal(t, "2", ol.lastQuery["page"])

	_, err = uc.Search(context.Background(), "", 1, catalogdomain.SortRelevance)
	require.NoError(t, err)
	assert.Empty(t, ol.lastQuery["title"])
	assert.Equal(t, "Programação", ol.lastQuery["q"])
}

func TestSearchTotalPagesRoundsUp(t *testing.T) {
	uc, ol, _ := newTestUsecase(t)
	ol.response = map[string]interface{}{
		"numFound": 41,
		"docs":     []interface{}{},
	}

	result, err := uc.Search(context.Background(), "go", 1, catalogdomain.SortRelevance)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalPages)
}

func TestSearchSortsFetchedPageOnly(t *testing.T) {
	uc, ol, _ := newTestUsecase(t)
	ol.response = map[string]interface{}{
		"numFound": 3,
		"docs": []interface{}{
			map[string]interface{}{"key": "/works/A", "title": "A", "first_publish_year": 2000, "ratings_average": 3.0},
			map[string]interface{}{"key": "/works/B", "title": "B", "first_publish_year": 2020, "ratings_average": 5.0},
			map[string]interface{}{"key": "/works/C", "title": "C", "first_publish_year": 2010, "ratings_average": 4.0},
		},
	}

	byRating, err := uc.Search(context.Background(), "x", 1, catalogdomain.SortRatingDesc)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, names(byRating.Products))

	newest, err := uc.Search(context.Background(), "x", 1, catalogdomain.SortYearDesc)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, names(newest.Products))

	oldest, err := uc.Search(context.Background(), "x", 1, catalogdomain.SortYearAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, names(oldest.Products))

	relevance, err := uc.Search(context.Background(), "x", 1, catalogdomain.SortRelevance)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, names(relevance.Products))
}

func names(products []catalogdomain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestFeaturedUsesConfiguredQuery(t *testing.T) {
	uc, ol, _ := newTestUsecase(t)
	ol.response = map[string]interface{}{
		"numFound": 1,
		"docs": []interface{}{
			map[string]interface{}{"key": "/works/B1", "title": "Batman Year One"},
		},
	}

	products, err := uc.Featured(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Batman", ol.lastQuery["q"])
	assert.Equal(t, "Batman Year One", products[0].Name)
}

func TestGetBookMapsVolumeAndRelated(t *testing.T) {
	uc, _, gb := newTestUsecase(t)
	gb.volume = map[string]interface{}{
		"id": "vol1",
		"volumeInfo": map[string]interface{}{
			"title":         "Refactoring",
			"subtitle":      "Improving the Design",
			"description":   "A classic.",
			"categories":    []string{"Computers"},
			"authors":       []string{"Martin Fowler", "Kent Beck"},
			"publisher":     "Addison-Wesley",
			"publishedDate": "1999-07-08",
			"pageCount":     448,
			"imageLinks":    map[string]string{"thumbnail": "http://books.example/r.jpg"},
			"dimensions":    map[string]string{"height": "24 cm", "width": "16 cm"},
		},
	}
	items := []interface{}{
		map[string]interface{}{"id": "vol1", "volumeInfo": map[string]interface{}{"title": "Refactoring"}},
	}
	for i := 0; i < 11; i++ {
		items = append(items, map[string]interface{}{
			"id":         string(rune('a' + i)),
			"volumeInfo": map[string]interface{}{"title": "Related"},
		})
	}
	gb.items = items

	result, err := uc.GetBook(context.Background(), "vol1")
	require.NoError(t, err)
	require.NotNil(t, result)

	book := result.Book
	assert.Equal(t, "Refactoring: Improving the Design", book.Title)
	assert.Equal(t, "Martin Fowler, Kent Beck", book.Authors)
	assert.Equal(t, "https://books.example/r.jpg", book.Cover)
	assert.Equal(t, "1999", book.PublishedYear)
	assert.Equal(t, int64(448), book.PageCount)
	assert.Equal(t, "24 cm x 16 cm", book.Dimensions)
	assert.Equal(t, "Addison-Wesley", book.Publisher)

	// The volume itself is dropped and the shelf caps at ten.
	assert.Len(t, result.Related, 10)
	for _, r := range result.Related {
		assert.NotEqual(t, "vol1", r.ID)
	}
}

func TestGetBookNotFound(t *testing.T) {
	uc, _, gb := newTestUsecase(t)
	gb.volume = nil

	result, err := uc.GetBook(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, result)
}
