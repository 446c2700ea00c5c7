package client

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordEndToEnd(t *testing.T) {
	parser := newRecordParser()

	product, err := parser.parseRecord(map[string]any{
		"details":       "full",
		"id":            float64(5),
		"name":          "Foo",
		"typeid":        float64(135),
		"typename":      "Gtk Themes",
		"personid":      "someone",
		"created":       "2024-01-02T10:00:00Z",
		"changed":       "2024-02-03T10:00:00Z",
		"score":         float64(0),
		"downloads":     "",
		"description":   "",
		"previewpic1":   "http://x/a.png",
		"downloadlink1": "http://x/a.tar",
		"downloadname1": "A",
		"downloadsize1": "1024",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), product.ID)
	assert.Equal(t, "Foo", product.Name)
	assert.Equal(t, int64(135), product.TypeID)
	assert.Equal(t, []string{"http://x/a.png"}, product.PreviewPics)
	require.Len(t, product.DownloadList, 1)
	assert.Equal(t, "http://x/a.tar", product.DownloadList[0].Link)
	assert.Equal(t, "A", product.DownloadList[0].Name)
	assert.Equal(t, int64(1024), product.DownloadList[0].Size)
	assert.Equal(t, "0", product.Downloads)
}

func TestParseRecordMandatoryFields(t *testing.T) {
	parser := newRecordParser()

	_, err := parser.parseRecord(map[string]any{"name": "NoID"})
	assert.Error(t, err)

	_, err = parser.parseRecord(map[string]any{"id": float64(7)})
	assert.Error(t, err)
}

func TestCollectVariantsDropsEmptyLinks(t *testing.T) {
	variants := collectVariants(map[string]any{
		"downloadlink1": "",
		"downloadname1": "Gone",
		"downloadlink2": "http://x/b.zip",
		"downloadname2": "B",
		"downloadsize2": float64(9),
		"downloadname3": "LinkNeverSet",
		"downloadlink4": "http://x/a.zip",
		"downloadname4": "A",
	})

	require.Len(t, variants, 2)
	for _, v := range variants {
		assert.NotEmpty(t, v.Link)
	}
	// Sorted by display name.
	assert.Equal(t, "A", variants[0].Name)
	assert.Equal(t, "B", variants[1].Name)
}

func TestCollectVariantsSizeDefaults(t *testing.T) {
	variants := collectVariants(map[string]any{
		"downloadlink1": "http://x/a.tar",
		"downloadname1": "A",
		"downloadsize1": "not-a-number",
		"downloadlink2": "http://x/b.tar",
		"downloadname2": "B",
		"downloadsize2": float64(-4),
		"downloadlink3": "http://x/c.tar",
		"downloadname3": "C",
	})

	require.Len(t, variants, 3)
	for _, v := range variants {
		assert.Equal(t, int64(0), v.Size)
	}
}

func TestSplitIndexedKey(t *testing.T) {
	tests := []struct {
		key   string
		field string
		index int
		ok    bool
	}{
		{"downloadlink1", "downloadlink", 1, true},
		{"downloadsize12", "downloadsize", 12, true},
		{"previewpic3", "previewpic", 3, true},
		{"description", "", 0, false},
		{"", "", 0, false},
	}

	for _, test := range tests {
		field, index, ok := splitIndexedKey(test.key)
		assert.Equal(t, test.ok, ok, test.key)
		if ok {
			assert.Equal(t, test.field, field, test.key)
			assert.Equal(t, test.index, index, test.key)
		}
	}
}

func TestParseRecordPreviewOrder(t *testing.T) {
	parser := newRecordParser()

	record := map[string]any{"id": float64(1), "name": "P"}
	for i := 1; i <= 12; i++ {
		record[fmt.Sprintf("previewpic%d", i)] = fmt.Sprintf("http://x/%d.png", i)
	}

	product, err := parser.parseRecord(record)
	require.NoError(t, err)

	// Capped at ten, ascending index order.
	require.Len(t, product.PreviewPics, 10)
	for i, pic := range product.PreviewPics {
		assert.Equal(t, fmt.Sprintf("http://x/%d.png", i+1), pic)
	}
}

func TestParseRecordSparsePreviews(t *testing.T) {
	parser := newRecordParser()

	product, err := parser.parseRecord(map[string]any{
		"id":          float64(1),
		"name":        "P",
		"previewpic2": "http://x/2.png",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"http://x/2.png"}, product.PreviewPics)
}

func TestRescaleScore(t *testing.T) {
	tests := []struct {
		raw      float64
		expected float64
	}{
		{0, 0},
		{25, 2.5},
		{50, 5.0},
		{43, 4.3},
		{60, 5.0},
		{-10, 0},
	}

	for _, test := range tests {
		assert.InDelta(t, test.expected, rescaleScore(test.raw), 1e-9)
	}
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "Nice theme", StripMarkup("<b>Nice</b> theme"))
	assert.Equal(t, "plain text", StripMarkup("plain text"))
	assert.Equal(t, "ab", StripMarkup("a<br/>b"))
	assert.Equal(t, "", StripMarkup("<only><tags>"))
}

func TestStripMarkupIdempotent(t *testing.T) {
	inputs := []string{
		"<b>Nice</b> theme",
		"a <i>b</i> c",
		"no markup at all",
		"unbalanced < tail",
	}

	for _, input := range inputs {
		once := StripMarkup(input)
		assert.Equal(t, once, StripMarkup(once), input)
	}
}

func TestParseRecordDownloadsPassthrough(t *testing.T) {
	parser := newRecordParser()

	product, err := parser.parseRecord(map[string]any{
		"id":        float64(1),
		"name":      "P",
		"downloads": "12,345",
	})
	require.NoError(t, err)
	assert.Equal(t, "12,345", product.Downloads)
}

func TestParseCatalogPage(t *testing.T) {
	parser := newRecordParser()

	body := []byte(`{
		"status": "ok",
		"statuscode": 100,
		"message": "",
		"totalitems": 240,
		"itemsperpage": 10,
		"data": [
			{"id": 1, "name": "First", "score": 43, "downloads": ""},
			{"id": 2, "name": "Second", "description": "<p>Hi</p>"}
		]
	}`)

	page, err := parser.ParseCatalogPage(body)
	require.NoError(t, err)

	assert.Equal(t, "ok", page.Status)
	assert.Equal(t, int64(100), page.StatusCode)
	assert.Equal(t, int64(240), page.TotalItems)
	assert.Equal(t, int64(10), page.ItemsPerPage)
	require.Len(t, page.Products, 2)
	assert.InDelta(t, 4.3, page.Products[0].Score, 1e-9)
	assert.Equal(t, "0", page.Products[0].Downloads)
	assert.Equal(t, "Hi", page.Products[1].Description)
}

func TestParseCatalogPageBadBody(t *testing.T) {
	parser := newRecordParser()

	_, err := parser.ParseCatalogPage([]byte("<html>not json</html>"))
	assert.Error(t, err)

	_, err = parser.ParseCatalogPage([]byte(`{"data": [{"name": "no id"}]}`))
	assert.Error(t, err)
}
