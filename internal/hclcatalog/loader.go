package hclcatalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/specialistvlad/optgen/internal/catalog"
	"github.com/specialistvlad/optgen/internal/ctxlog"
	"github.com/specialistvlad/optgen/internal/fsutil"
)

// Extension is the file extension of HCL catalogs.
const Extension = ".hcl"

// Loader is the HCL implementation of the catalog.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ catalog.Loader = (*Loader)(nil)

// Load reads every .hcl file found under paths, in order, into one catalog.
// Directories are walked recursively.
func (l *Loader) Load(ctx context.Context, paths ...string) (*catalog.Catalog, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL catalog loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", catalog.ErrCatalogUnavailable, Extension, strings.Join(paths, ", "))
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	cat := &catalog.Catalog{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		records, contexts, err := decodeFile(ctx, hclFile)
		if err != nil {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, err)
		}
		cat.Append(file, records, contexts)
	}

	logger.Debug("HCL loading complete.", "records", len(cat.Records), "contexts", len(cat.Contexts))
	return cat, nil
}

// decodeFile decodes the blocks of one file in source order.
func decodeFile(ctx context.Context, file *hcl.File) ([]*catalog.OptionRecord, []*catalog.ContextDef, error) {
	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, nil, diags
	}

	var records []*catalog.OptionRecord
	var contexts []*catalog.ContextDef
	for _, block := range content.Blocks {
		switch block.Type {
		case blockContext:
			def, diags := decodeContext(block)
			if diags.HasErrors() {
				return nil, nil, diags
			}
			contexts = append(contexts, def)
		default:
			raw, diags := decodeRecord(block)
			if diags.HasErrors() {
				return nil, nil, diags
			}
			rec, err := raw.Record()
			if err != nil {
				return nil, nil, err
			}
			ctxlog.FromContext(ctx).Debug("Decoded catalog record.", "record", raw, "pos", rec.Pos)
			records = append(records, rec)
		}
	}
	return records, contexts, nil
}

func position(block *hcl.Block) catalog.Pos {
	return catalog.Pos{File: block.DefRange.Filename, Line: block.DefRange.Start.Line}
}

func decodeRecord(block *hcl.Block) (*catalog.RawRecord, hcl.Diagnostics) {
	raw := &catalog.RawRecord{ID: block.Labels[0], Pos: position(block)}

	if block.Type == blockGroup {
		var g groupBlock
		if diags := gohcl.DecodeBody(block.Body, nil, &g); diags.HasErrors() {
			return nil, diags
		}
		raw.Kind = catalog.KindGroup.String()
		raw.Spelling = g.Name
		raw.HelpText = g.Help
		return raw, nil
	}

	var o optionBlock
	if diags := gohcl.DecodeBody(block.Body, nil, &o); diags.HasErrors() {
		return nil, diags
	}
	mask, diags := decodeMask(block, o.Mask)
	if diags.HasErrors() {
		return nil, diags
	}
	raw.Kind = o.Kind
	raw.Prefixes = o.Prefixes
	raw.Spelling = o.Spelling
	raw.Group = o.Group
	raw.Alias = o.Alias
	raw.Flags = o.Flags
	raw.Mask = mask
	raw.HelpText = o.Help
	raw.MetaVar = o.MetaVar
	raw.NumArgs = o.NumArgs
	return raw, nil
}

// decodeMask converts the optional `mask` attribute into an unsigned
// integer. Numeric strings are accepted.
func decodeMask(block *hcl.Block, v cty.Value) (*uint64, hcl.Diagnostics) {
	if v == cty.NilVal || v.IsNull() {
		return nil, nil
	}

	invalid := func(detail string) hcl.Diagnostics {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid mask",
			Detail:   detail,
			Subject:  block.DefRange.Ptr(),
		}}
	}

	n, err := convert.Convert(v, cty.Number)
	if err != nil {
		return nil, invalid(fmt.Sprintf("The mask of option %q must be a number: %s.", block.Labels[0], err))
	}
	if n.IsKnown() && !n.AsBigFloat().IsInt() {
		return nil, invalid(fmt.Sprintf("The mask of option %q must be a whole number.", block.Labels[0]))
	}
	var mask uint64
	if err := gocty.FromCtyValue(n, &mask); err != nil {
		return nil, invalid(fmt.Sprintf("The mask of option %q must be a non-negative integer: %s.", block.Labels[0], err))
	}
	return &mask, nil
}

func decodeContext(block *hcl.Block) (*catalog.ContextDef, hcl.Diagnostics) {
	var c contextBlock
	if diags := gohcl.DecodeBody(block.Body, nil, &c); diags.HasErrors() {
		return nil, diags
	}
	return &catalog.ContextDef{Name: block.Labels[0], Predicate: c.Predicate, Pos: position(block)}, nil
}
