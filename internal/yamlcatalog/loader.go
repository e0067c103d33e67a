// Package yamlcatalog reads option catalogs written in YAML.
//
// A catalog document holds a `records` sequence, in catalog order, and an
// optional `contexts` sequence:
//
//	records:
//	  - id: modes_Group
//	    kind: group
//	    name: <mode options>
//	  - id: emit_module
//	    kind: flag
//	    prefixes: ["-", "--"]
//	    spelling: emit-module
//	    group: modes_Group
//	    flags: [frontend]
//	contexts:
//	  - name: indexing
//	    predicate: "!noDriver"
//
// Unknown fields are rejected.
package yamlcatalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/optgen/internal/catalog"
	"github.com/specialistvlad/optgen/internal/ctxlog"
	"github.com/specialistvlad/optgen/internal/fsutil"
)

// Extensions lists the file extensions of YAML catalogs.
var Extensions = []string{".yaml", ".yml"}

// Loader is the YAML implementation of the catalog.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ catalog.Loader = (*Loader)(nil)

// Load reads every YAML file found under paths, in order, into one catalog.
func (l *Loader) Load(ctx context.Context, paths ...string) (*catalog.Catalog, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML catalog loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no YAML files in %s", catalog.ErrCatalogUnavailable, strings.Join(paths, ", "))
	}

	cat := &catalog.Catalog{}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}
		records, contexts, err := decode(file, data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}
		cat.Append(file, records, contexts)
	}

	logger.Debug("YAML loading complete.", "files", len(files), "records", len(cat.Records), "contexts", len(cat.Contexts))
	return cat, nil
}

type document struct {
	Records  []record     `yaml:"records"`
	Contexts []contextDef `yaml:"contexts"`
}

func decode(file string, data []byte) ([]*catalog.OptionRecord, []*catalog.ContextDef, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, err
	}

	records := make([]*catalog.OptionRecord, 0, len(doc.Records))
	for _, r := range doc.Records {
		raw, err := r.raw(file)
		if err != nil {
			return nil, nil, err
		}
		rec, err := raw.Record()
		if err != nil {
			return nil, nil, err
		}
		records = append(records, rec)
	}

	contexts := make([]*catalog.ContextDef, 0, len(doc.Contexts))
	for _, c := range doc.Contexts {
		contexts = append(contexts, &catalog.ContextDef{
			Name:      c.Name,
			Predicate: c.Predicate,
			Pos:       catalog.Pos{File: file, Line: c.line},
		})
	}
	return records, contexts, nil
}
