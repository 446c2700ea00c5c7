package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testBaseURL = "https://www.pling.com"

func TestPageQueryURL(t *testing.T) {
	query := NewPageQuery()

	url := query.URL(testBaseURL)
	assert.Equal(t, "https://www.pling.com/ocs/v1/content/data?format=json&pagesize=10&categories=135&page=0&sortmode=update", url)

	// Same input, same URL.
	assert.Equal(t, url, query.URL(testBaseURL))
}

func TestPageQueryBuilder(t *testing.T) {
	query := NewPageQuery().
		SetCategory(CategoryCursors).
		SetSort(SortRating).
		SetPage(3).
		SetPageSize(25)

	assert.Equal(t, "https://www.pling.com/ocs/v1/content/data?format=json&pagesize=25&categories=107&page=3&sortmode=high", query.URL(testBaseURL))

	query.NextPage()
	assert.Equal(t, 4, query.Page)
}

func TestPageQueryCloneIsIndependent(t *testing.T) {
	query := NewPageQuery().SetCategory(CategoryKDEThemes).SetPage(2)
	snapshot := query.Clone()

	query.SetPage(9).SetCategory(CategoryCursors)

	assert.Equal(t, 2, snapshot.Page)
	assert.Equal(t, CategoryKDEThemes, snapshot.Category)
}

func TestSearchQueryURL(t *testing.T) {
	query := NewSearchQuery("papirus")

	assert.Equal(t, "https://www.pling.com/ocs/v1/content/data?format=json&categories=132,107,134,135,104&pagesize=30&page=0&sortmode=update&search=papirus", query.URL(testBaseURL))
}

func TestSearchQueryEscapesText(t *testing.T) {
	query := NewSearchQuery("papirus theme&page=9")

	url := query.URL(testBaseURL)
	assert.NotContains(t, url, " ")
	assert.Contains(t, url, "search=papirus+theme%26page%3D9")
}

func TestSearchQueryClone(t *testing.T) {
	query := NewSearchQuery("adwaita")
	snapshot := query.Clone()

	query.SetText("breeze")

	assert.Equal(t, "adwaita", snapshot.Text)
	assert.Equal(t, 30, snapshot.PageSize)
}
