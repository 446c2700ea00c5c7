package install

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"pling/themestore/internal/cache"
	"pling/themestore/internal/domain"

	log "github.com/sirupsen/logrus"
)

// CommandRunner runs an external extraction tool to completion and reports
// its exit status.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Installer downloads a variant archive into the local archive cache and
// extracts it into the per-category theme directory.
type Installer struct {
	assets      *cache.AssetCache
	downloadDir string
	dataDir     string
	runner      CommandRunner
}

// New creates an Installer. downloadDir holds fetched archives, dataDir is
// the local-share root the install directories live under.
func New(assets *cache.AssetCache, downloadDir, dataDir string) *Installer {
	return &Installer{
		assets:      assets,
		downloadDir: downloadDir,
		dataDir:     dataDir,
		runner:      execRunner{},
	}
}

// ArchivePath is where a variant's archive is cached, keyed by category
// label and display name. Deterministic, no I/O.
func (i *Installer) ArchivePath(variant domain.DownloadVariant, category domain.Category) string {
	return filepath.Join(i.downloadDir, category.Label(), variant.Name)
}

// TargetDir maps a category onto its installation directory. Unrecognized
// categories install as generic themes, matching the upstream fallback.
func (i *Installer) TargetDir(category domain.Category) string {
	switch category {
	case domain.CategoryFullIconThemes, domain.CategoryCursors:
		return filepath.Join(i.dataDir, "icons")
	case domain.CategoryKDEThemes:
		return filepath.Join(i.dataDir, "plasma", "desktoptheme")
	case domain.CategoryGtk4Themes, domain.CategoryGnomeShellThemes:
		return filepath.Join(i.dataDir, "themes")
	default:
		return filepath.Join(i.dataDir, "themes")
	}
}

// Install fetches the variant's archive if it is not already cached, then
// extracts it into the category's install directory. An archive already on
// disk skips the download, so repeated installs are cheap.
func (i *Installer) Install(ctx context.Context, variant domain.DownloadVariant, category domain.Category) error {
	archive := i.ArchivePath(variant, category)
	if err := i.assets.EnsureAt(ctx, variant.Link, archive); err != nil {
		return err
	}

	target := i.TargetDir(category)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return &cache.IOError{Path: target, Err: err}
	}

	switch {
	case strings.HasSuffix(archive, ".tar"),
		strings.HasSuffix(archive, ".tar.xz"),
		strings.HasSuffix(archive, ".tar.gz"):
		return i.extract(ctx, archive, "tar", "-xf", archive, "-C", target)
	case strings.HasSuffix(archive, ".7z"):
		return i.extract(ctx, archive, "7z", "x", archive, "-o"+target)
	case strings.HasSuffix(archive, ".zip"):
		return i.extract(ctx, archive, "unzip", archive, "-d", target)
	default:
		return &UnsupportedFormatError{Archive: archive}
	}
}

func (i *Installer) extract(ctx context.Context, archive, tool string, args ...string) error {
	log.Infof("Extracting %s with %s", archive, tool)
	if err := i.runner.Run(ctx, tool, args...); err != nil {
		return &ExtractionError{Tool: tool, Archive: archive, Err: err}
	}
	return nil
}
