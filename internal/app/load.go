package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/optgen/internal/catalog"
	"github.com/specialistvlad/optgen/internal/fsutil"
	"github.com/specialistvlad/optgen/internal/hclcatalog"
	"github.com/specialistvlad/optgen/internal/yamlcatalog"
)

// loaders maps catalog file extensions to their loader.
var loaders = func() map[string]catalog.Loader {
	m := map[string]catalog.Loader{hclcatalog.Extension: hclcatalog.NewLoader()}
	for _, ext := range yamlcatalog.Extensions {
		m[ext] = yamlcatalog.NewLoader()
	}
	return m
}()

func catalogExtensions() []string {
	exts := make([]string, 0, len(loaders))
	exts = append(exts, hclcatalog.Extension)
	exts = append(exts, yamlcatalog.Extensions...)
	return exts
}

// load reads every catalog file under the configured paths, one file at a
// time and in order, so that records keep their order across files and
// formats.
func (a *App) load() (*catalog.Catalog, error) {
	a.logger.Debug("Loading catalog...", "paths", a.config.CatalogPaths)

	files, err := fsutil.FindFiles(a.config.CatalogPaths, catalogExtensions()...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no catalog files in %s", catalog.ErrCatalogUnavailable, strings.Join(a.config.CatalogPaths, ", "))
	}

	cat := &catalog.Catalog{}
	for _, file := range files {
		loader, ok := loaders[filepath.Ext(file)]
		if !ok {
			return nil, fmt.Errorf("no loader for %s", file)
		}
		part, err := loader.Load(a.ctx, file)
		if err != nil {
			return nil, err
		}
		cat.Records = append(cat.Records, part.Records...)
		cat.Contexts = append(cat.Contexts, part.Contexts...)
		cat.Sources = append(cat.Sources, part.Sources...)
	}

	a.logger.Debug("Catalog loaded.", "files", len(files), "records", len(cat.Records))
	return cat, nil
}
