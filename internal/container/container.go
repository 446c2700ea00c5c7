package container

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"pling/themestore/internal/cache"
	"pling/themestore/internal/client"
	"pling/themestore/internal/config"
	"pling/themestore/internal/domain"
	"pling/themestore/internal/install"
	"pling/themestore/internal/service"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// Container holds all initialized components
type Container struct {
	Config    *config.Config
	Client    client.StoreClient
	Previews  *cache.AssetCache
	Installer *install.Installer

	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	storeClient := client.NewStoreClient(cfg.Store)
	container.Client = storeClient

	// Asset downloads share one HTTP client; previews and archives only
	// differ in where their bytes land.
	assetClient := resty.New().
		SetTimeout(time.Duration(cfg.Store.Timeout) * time.Second).
		SetHeader("User-Agent", "themestore/1.0")

	previews := cache.New(cfg.Cache.PreviewDir, assetClient)
	container.Previews = previews

	archives := cache.New(cfg.Cache.DownloadDir, assetClient)
	installer := install.New(archives, cfg.Cache.DownloadDir, cfg.Install.DataDir)
	container.Installer = installer

	container.Service = service.NewService(
		storeClient,
		previews,
		installer,
		cfg.Store.MaxWorkers,
	)

	return container, nil
}

// Run fetches the first listing page of every category and warms the
// thumbnail cache for each, reporting what the marketplace returned.
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, category := range domain.Categories {
		category := category
		g.Go(func() error {
			query := domain.NewPageQuery().
				SetCategory(category).
				SetPageSize(c.Config.Store.PageSize)

			result := <-c.Service.LoadPage(ctx, query)
			if result.Err != nil {
				log.Errorf("Failed to fetch %s: %v", category.Label(), result.Err)
				return result.Err
			}

			log.Infof("%s: %d products on page %d, %d total",
				category.Label(), len(result.Page.Products), query.Page, result.Page.TotalItems)

			if len(result.Page.Products) > 0 {
				newest := result.Page.Products[0]
				log.Debugf("%s: newest is %q, updated %s",
					category.Label(), newest.Name, domain.FormatDate(newest.Changed))
			}

			for asset := range c.Service.PrefetchThumbnails(ctx, result.Page) {
				if asset.Err != nil {
					log.Warnf("Preview %s failed: %v", asset.URL, asset.Err)
					continue
				}
				log.Debugf("Preview ready at %s", asset.Path)
			}

			return nil
		})
	}

	return g.Wait()
}
