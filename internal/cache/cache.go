package cache

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// AssetCache maps remote asset URLs onto files under a fixed root directory.
// There is no index and no eviction: presence of the file on disk is the
// only existence signal, and content at a given URL is treated as immutable.
type AssetCache struct {
	root       string
	httpClient *resty.Client
}

func New(root string, httpClient *resty.Client) *AssetCache {
	return &AssetCache{
		root:       root,
		httpClient: httpClient,
	}
}

// LocalPath derives the cache path for a remote URL by appending the URL's
// path component to the cache root. Deterministic, no I/O.
func (c *AssetCache) LocalPath(remoteURL string) (string, error) {
	parsed, err := url.Parse(remoteURL)
	if err != nil {
		return "", &FetchError{URL: remoteURL, Err: err}
	}
	return filepath.Join(c.root, filepath.FromSlash(path.Clean("/"+parsed.Path))), nil
}

// Ensure makes the asset at remoteURL present in the cache and returns its
// local path. A file already at the derived path short-circuits without any
// network access. Concurrent calls for the same missing URL may both fetch
// and both write the same bytes, which is benign.
func (c *AssetCache) Ensure(ctx context.Context, remoteURL string) (string, error) {
	localPath, err := c.LocalPath(remoteURL)
	if err != nil {
		return "", err
	}
	if err := c.EnsureAt(ctx, remoteURL, localPath); err != nil {
		return "", err
	}
	return localPath, nil
}

// EnsureAt fetches remoteURL into an explicit local path, creating missing
// parent directories. Used by the installer, whose archives are keyed by
// category and display name rather than by URL path.
func (c *AssetCache) EnsureAt(ctx context.Context, remoteURL, localPath string) error {
	if _, err := os.Stat(localPath); err == nil {
		log.Debugf("Cache hit for %s at %s", remoteURL, localPath)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return &IOError{Path: filepath.Dir(localPath), Err: err}
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(remoteURL)
	if err != nil {
		return &FetchError{URL: remoteURL, Err: err}
	}
	if resp.IsError() {
		return &FetchError{URL: remoteURL, StatusCode: resp.StatusCode()}
	}

	if err := os.WriteFile(localPath, resp.Bytes(), 0o644); err != nil {
		return &IOError{Path: localPath, Err: err}
	}

	log.Debugf("Cached %s at %s", remoteURL, localPath)
	return nil
}
