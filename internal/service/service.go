package service

import (
	"context"

	"pling/themestore/internal/cache"
	"pling/themestore/internal/client"
	"pling/themestore/internal/domain"
	"pling/themestore/internal/install"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// PageResult is the completion notice for one catalog listing fetch.
type PageResult struct {
	Query *domain.PageQuery
	Page  *domain.CatalogPage
	Err   error
}

// SearchResult is the completion notice for one search fetch.
type SearchResult struct {
	Query *domain.SearchQuery
	Page  *domain.CatalogPage
	Err   error
}

// AssetResult is the completion notice for one preview image fetch.
type AssetResult struct {
	URL  string
	Path string
	Err  error
}

// InstallResult is the completion notice for one install.
type InstallResult struct {
	Variant domain.DownloadVariant
	Err     error
}

// Service coordinates the pipeline's background work: every fetch or install
// runs on its own worker and delivers exactly one completion notice per
// logical unit on the returned channel, which is closed when the dispatched
// work is done. Failures are delivered, never dropped. Queries are
// snapshotted at dispatch so the caller may keep mutating its copy.
type Service struct {
	client     client.StoreClient
	assets     *cache.AssetCache
	installer  *install.Installer
	maxWorkers int
}

func NewService(
	client client.StoreClient,
	assets *cache.AssetCache,
	installer *install.Installer,
	maxWorkers int,
) *Service {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Service{
		client:     client,
		assets:     assets,
		installer:  installer,
		maxWorkers: maxWorkers,
	}
}

// LoadPage dispatches one catalog listing fetch.
func (s *Service) LoadPage(ctx context.Context, query *domain.PageQuery) <-chan PageResult {
	snapshot := query.Clone()
	results := make(chan PageResult, 1)

	go func() {
		defer close(results)

		page, err := s.client.FetchPage(ctx, snapshot)
		if err != nil {
			log.Errorf("Failed to fetch page %d of %s: %v", snapshot.Page, snapshot.Category.Label(), err)
		}
		results <- PageResult{Query: snapshot, Page: page, Err: err}
	}()

	return results
}

// LoadMore advances the query to the next page and dispatches the fetch for
// it. The caller's query is advanced before the snapshot is taken, so a
// subsequent LoadMore requests the page after this one.
func (s *Service) LoadMore(ctx context.Context, query *domain.PageQuery) <-chan PageResult {
	return s.LoadPage(ctx, query.NextPage())
}

// Search dispatches one free-text search fetch.
func (s *Service) Search(ctx context.Context, query *domain.SearchQuery) <-chan SearchResult {
	snapshot := query.Clone()
	results := make(chan SearchResult, 1)

	go func() {
		defer close(results)

		page, err := s.client.Search(ctx, snapshot)
		if err != nil {
			log.Errorf("Search %q failed: %v", snapshot.Text, err)
		}
		results <- SearchResult{Query: snapshot, Page: page, Err: err}
	}()

	return results
}

// PrefetchPreviews makes every preview image of a product present in the
// cache, one completion per image. The first preview is fetched before the
// rest fan out, so the thumbnail is ready as early as possible.
func (s *Service) PrefetchPreviews(ctx context.Context, product domain.Product) <-chan AssetResult {
	results := make(chan AssetResult, len(product.PreviewPics))

	go func() {
		defer close(results)

		if len(product.PreviewPics) == 0 {
			return
		}

		thumb := product.PreviewPics[0]
		path, err := s.assets.Ensure(ctx, thumb)
		results <- AssetResult{URL: thumb, Path: path, Err: err}

		g := new(errgroup.Group)
		g.SetLimit(s.maxWorkers)
		for _, pic := range product.PreviewPics[1:] {
			pic := pic
			g.Go(func() error {
				path, err := s.assets.Ensure(ctx, pic)
				results <- AssetResult{URL: pic, Path: path, Err: err}
				return nil
			})
		}
		g.Wait()
	}()

	return results
}

// PrefetchThumbnails warms the first preview of every product on a page,
// one completion per product that has any previews.
func (s *Service) PrefetchThumbnails(ctx context.Context, page *domain.CatalogPage) <-chan AssetResult {
	results := make(chan AssetResult, len(page.Products))

	go func() {
		defer close(results)

		g := new(errgroup.Group)
		g.SetLimit(s.maxWorkers)
		for _, product := range page.Products {
			if len(product.PreviewPics) == 0 {
				continue
			}
			thumb := product.PreviewPics[0]
			g.Go(func() error {
				path, err := s.assets.Ensure(ctx, thumb)
				results <- AssetResult{URL: thumb, Path: path, Err: err}
				return nil
			})
		}
		g.Wait()
	}()

	return results
}

// Install dispatches one download-and-extract for a variant.
func (s *Service) Install(ctx context.Context, variant domain.DownloadVariant, category domain.Category) <-chan InstallResult {
	results := make(chan InstallResult, 1)

	go func() {
		defer close(results)

		err := s.installer.Install(ctx, variant, category)
		if err != nil {
			log.Errorf("Failed to install %s: %v", variant.Name, err)
		}
		results <- InstallResult{Variant: variant, Err: err}
	}()

	return results
}
