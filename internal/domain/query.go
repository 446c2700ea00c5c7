package domain

import (
	"fmt"
	"net/url"
	"strings"
)

const contentEndpoint = "/ocs/v1/content/data"

// searchScope is the fixed multi-category scope every search runs against.
var searchScope = func() string {
	ids := make([]string, 0, len(Categories))
	for _, c := range Categories {
		ids = append(ids, c.ID())
	}
	return strings.Join(ids, ",")
}()

// PageQuery describes one catalog listing request. Setters return the
// receiver for chaining; a query handed to a worker must be a Clone so that
// later setter calls cannot race with an in-flight request.
type PageQuery struct {
	Category Category
	Sort     SortOrder
	Page     int
	PageSize int
}

// NewPageQuery returns the default listing query: first page of Gtk themes,
// most recently updated, ten items per page.
func NewPageQuery() *PageQuery {
	return &PageQuery{
		Category: CategoryGtk4Themes,
		Sort:     SortLatest,
		Page:     0,
		PageSize: 10,
	}
}

func (q *PageQuery) SetCategory(c Category) *PageQuery {
	q.Category = c
	return q
}

func (q *PageQuery) SetSort(s SortOrder) *PageQuery {
	q.Sort = s
	return q
}

func (q *PageQuery) SetPage(page int) *PageQuery {
	q.Page = page
	return q
}

func (q *PageQuery) SetPageSize(size int) *PageQuery {
	q.PageSize = size
	return q
}

// NextPage advances the query to the following page.
func (q *PageQuery) NextPage() *PageQuery {
	q.Page++
	return q
}

func (q *PageQuery) Clone() *PageQuery {
	clone := *q
	return &clone
}

// URL renders the canonical listing request URL against baseURL.
func (q *PageQuery) URL(baseURL string) string {
	return fmt.Sprintf("%s%s?format=json&pagesize=%d&categories=%s&page=%d&sortmode=%s",
		strings.TrimSuffix(baseURL, "/"), contentEndpoint,
		q.PageSize, q.Category.ID(), q.Page, q.Sort.Token())
}

// SearchQuery describes one free-text search request. Searches always target
// all five categories, page zero, most recently updated first.
type SearchQuery struct {
	Text     string
	PageSize int
}

func NewSearchQuery(text string) *SearchQuery {
	return &SearchQuery{
		Text:     text,
		PageSize: 30,
	}
}

func (q *SearchQuery) SetText(text string) *SearchQuery {
	q.Text = text
	return q
}

func (q *SearchQuery) SetPageSize(size int) *SearchQuery {
	q.PageSize = size
	return q
}

func (q *SearchQuery) Clone() *SearchQuery {
	clone := *q
	return &clone
}

// URL renders the canonical search request URL against baseURL. The search
// text is query-escaped.
func (q *SearchQuery) URL(baseURL string) string {
	return fmt.Sprintf("%s%s?format=json&categories=%s&pagesize=%d&page=0&sortmode=%s&search=%s",
		strings.TrimSuffix(baseURL, "/"), contentEndpoint,
		searchScope, q.PageSize, SortLatest.Token(), url.QueryEscape(q.Text))
}
