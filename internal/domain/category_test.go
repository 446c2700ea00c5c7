package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryIDs(t *testing.T) {
	expected := map[Category]string{
		CategoryFullIconThemes:   "132",
		CategoryCursors:          "107",
		CategoryGnomeShellThemes: "134",
		CategoryGtk4Themes:       "135",
		CategoryKDEThemes:        "104",
	}

	assert.Len(t, Categories, len(expected))
	for _, c := range Categories {
		assert.Equal(t, expected[c], c.ID())
	}
}

func TestCategoryLabels(t *testing.T) {
	tests := []struct {
		category Category
		label    string
	}{
		{CategoryFullIconThemes, "Full Icon Themes"},
		{CategoryCursors, "Cursor Themes"},
		{CategoryGnomeShellThemes, "Gnome Shell Themes"},
		{CategoryGtk4Themes, "Gtk Themes"},
		{CategoryKDEThemes, "KDE Themes"},
		{Category("999"), "Others"},
	}

	for _, test := range tests {
		assert.Equal(t, test.label, test.category.Label())
	}
}

func TestCategoryFromID(t *testing.T) {
	for _, c := range Categories {
		got, ok := CategoryFromID(c.ID())
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}

	_, ok := CategoryFromID("999")
	assert.False(t, ok)

	assert.Equal(t, "Others", LabelForID("999"))
}

func TestSortOrderTokens(t *testing.T) {
	expected := map[SortOrder]string{
		SortLatest:       "update",
		SortRating:       "high",
		SortCreator:      "new",
		SortDownloads:    "down",
		SortAlphabetical: "alpha",
	}

	assert.Len(t, SortOrders, len(expected))
	for _, s := range SortOrders {
		assert.Equal(t, expected[s], s.Token())
		assert.NotEqual(t, "Unknown", s.Label())
	}
}
