package client

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"pling/themestore/internal/domain"

	log "github.com/sirupsen/logrus"
)

// maxPreviewPics is the highest preview index the upstream schema emits.
const maxPreviewPics = 10

// pageEnvelope is the fixed top-level shape of a content listing response.
// Product records stay generic maps because the per-record schema is open:
// the variable-length fields arrive as numbered flat keys.
type pageEnvelope struct {
	Status       string           `json:"status"`
	StatusCode   int64            `json:"statuscode"`
	Message      string           `json:"message"`
	TotalItems   int64            `json:"totalitems"`
	ItemsPerPage int64            `json:"itemsperpage"`
	Data         []map[string]any `json:"data"`
}

type recordParser struct{}

func newRecordParser() *recordParser {
	return &recordParser{}
}

// ParseCatalogPage decodes a raw listing body into a CatalogPage. A record
// missing its mandatory fixed fields fails the whole decode; any other
// per-field defect degrades to a default value instead.
func (p *recordParser) ParseCatalogPage(body []byte) (*domain.CatalogPage, error) {
	var envelope pageEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode catalog envelope: %w", err)
	}

	page := &domain.CatalogPage{
		Status:       envelope.Status,
		StatusCode:   envelope.StatusCode,
		Message:      envelope.Message,
		TotalItems:   envelope.TotalItems,
		ItemsPerPage: envelope.ItemsPerPage,
		Products:     make([]domain.Product, 0, len(envelope.Data)),
	}

	for i, record := range envelope.Data {
		product, err := p.parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		page.Products = append(page.Products, product)
	}

	log.Debugf("Parsed catalog page with %d products (%d total items)", len(page.Products), page.TotalItems)
	return page, nil
}

// parseRecord normalizes one raw product record: fixed fields first, then
// the ordered preview list, then the numbered download groups.
func (p *recordParser) parseRecord(record map[string]any) (domain.Product, error) {
	id, ok := asInt64(record["id"])
	if !ok {
		return domain.Product{}, fmt.Errorf("record has no usable id")
	}
	name, ok := record["name"].(string)
	if !ok {
		return domain.Product{}, fmt.Errorf("record %d has no name", id)
	}

	product := domain.Product{
		Details:     asString(record["details"]),
		ID:          id,
		Name:        name,
		TypeName:    asString(record["typename"]),
		PersonID:    asString(record["personid"]),
		Created:     asString(record["created"]),
		Changed:     asString(record["changed"]),
		Score:       rescaleScore(asFloat64(record["score"])),
		Downloads:   asString(record["downloads"]),
		Description: StripMarkup(asString(record["description"])),
	}
	product.TypeID, _ = asInt64(record["typeid"])
	if product.Downloads == "" {
		product.Downloads = "0"
	}

	for i := 1; i <= maxPreviewPics; i++ {
		if pic, ok := record[fmt.Sprintf("previewpic%d", i)].(string); ok {
			product.PreviewPics = append(product.PreviewPics, pic)
		}
	}

	product.DownloadList = collectVariants(record)
	return product, nil
}

// collectVariants regroups the numbered downloadlinkN/downloadnameN/
// downloadsizeN keys by suffix index. Groups that never received a link are
// partial records upstream and are dropped; the survivors are sorted by
// display name.
func collectVariants(record map[string]any) []domain.DownloadVariant {
	groups := make(map[int]*domain.DownloadVariant)

	variant := func(index int) *domain.DownloadVariant {
		if v, ok := groups[index]; ok {
			return v
		}
		v := &domain.DownloadVariant{}
		groups[index] = v
		return v
	}

	for key, value := range record {
		field, index, ok := splitIndexedKey(key)
		if !ok {
			continue
		}
		switch field {
		case "downloadlink":
			variant(index).Link = asString(value)
		case "downloadname":
			variant(index).Name = asString(value)
		case "downloadsize":
			variant(index).Size = asSize(value)
		}
	}

	variants := make([]domain.DownloadVariant, 0, len(groups))
	for _, v := range groups {
		if v.Link == "" {
			continue
		}
		variants = append(variants, *v)
	}
	sort.Slice(variants, func(i, j int) bool {
		return variants[i].Name < variants[j].Name
	})
	return variants
}

// splitIndexedKey splits a flattened key into its field name and trailing
// numeric suffix. The suffix is the run of ASCII digits starting at the
// first digit; keys without a digit carry no index.
func splitIndexedKey(key string) (string, int, bool) {
	start := strings.IndexFunc(key, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	if start < 0 {
		return "", 0, false
	}
	index, err := strconv.Atoi(key[start:])
	if err != nil {
		return "", 0, false
	}
	return key[:start], index, true
}

// StripMarkup removes inline markup from free text: every character inside a
// <...> run is dropped, including the delimiters, everything else passes
// through. Entities are not decoded and nesting is not validated.
func StripMarkup(source string) string {
	var out strings.Builder
	out.Grow(len(source))
	inside := false
	for _, r := range source {
		switch r {
		case '<':
			inside = true
		case '>':
			inside = false
		default:
			if !inside {
				out.WriteRune(r)
			}
		}
	}
	return out.String()
}

// rescaleScore maps the raw 0..50 score onto the 0.0..5.0 display range.
func rescaleScore(raw float64) float64 {
	score := raw / 10
	if score < 0 {
		return 0
	}
	if score > 5 {
		return 5
	}
	return score
}

func asString(value any) string {
	s, _ := value.(string)
	return s
}

func asFloat64(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case float64:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// asSize parses a download size that may arrive as a JSON number or a
// numeric string. Unparseable or negative values default to zero.
func asSize(value any) int64 {
	switch v := value.(type) {
	case float64:
		if v < 0 {
			return 0
		}
		return int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return 0
		}
		return n
	default:
		return 0
	}
}
