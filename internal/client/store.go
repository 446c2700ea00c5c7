package client

import (
	"context"
	"time"

	"pling/themestore/internal/config"
	"pling/themestore/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// StoreClient talks to the marketplace content listing endpoint. One call is
// one request; failed calls surface immediately and retrying is the
// caller's decision.
type StoreClient interface {
	FetchPage(ctx context.Context, query *domain.PageQuery) (*domain.CatalogPage, error)
	Search(ctx context.Context, query *domain.SearchQuery) (*domain.CatalogPage, error)
}

type storeClient struct {
	rl         ratelimit.Limiter
	baseURL    string
	httpClient *resty.Client
	parser     *recordParser
}

func NewStoreClient(cfg config.StoreConfig) StoreClient {
	httpClient := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetHeader("User-Agent", "themestore/1.0").
		SetHeader("Accept", "application/json")

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &storeClient{
		rl:         rl,
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		parser:     newRecordParser(),
	}
}

func (c *storeClient) FetchPage(ctx context.Context, query *domain.PageQuery) (*domain.CatalogPage, error) {
	url := query.URL(c.baseURL)

	page, err := c.fetchCatalog(ctx, url)
	if err != nil {
		return nil, err
	}

	log.Debugf("Fetched page %d of %s with %d products", query.Page, query.Category.Label(), len(page.Products))
	return page, nil
}

func (c *storeClient) Search(ctx context.Context, query *domain.SearchQuery) (*domain.CatalogPage, error) {
	url := query.URL(c.baseURL)

	page, err := c.fetchCatalog(ctx, url)
	if err != nil {
		return nil, err
	}

	log.Debugf("Search %q returned %d products", query.Text, len(page.Products))
	return page, nil
}

func (c *storeClient) fetchCatalog(ctx context.Context, url string) (*domain.CatalogPage, error) {
	body, err := c.fetchJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	page, err := c.parser.ParseCatalogPage(body)
	if err != nil {
		return nil, &DecodeError{URL: url, Err: err}
	}
	return page, nil
}

func (c *storeClient) fetchJSON(ctx context.Context, url string) ([]byte, error) {
	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	if resp.IsError() {
		return nil, &TransportError{URL: url, StatusCode: resp.StatusCode()}
	}

	return resp.Bytes(), nil
}
