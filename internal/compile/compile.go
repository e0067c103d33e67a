// Package compile runs the resolution pipeline over a loaded catalog:
// indexing, alias resolution, group resolution, spelling expansion and
// context compilation. The Result it returns is immutable and is the only
// input the emitters read.
package compile

import (
	"context"

	"github.com/specialistvlad/optgen/internal/catalog"
	"github.com/specialistvlad/optgen/internal/contexts"
	"github.com/specialistvlad/optgen/internal/ctxlog"
	"github.com/specialistvlad/optgen/internal/ident"
	"github.com/specialistvlad/optgen/internal/index"
	"github.com/specialistvlad/optgen/internal/resolve"
	"github.com/specialistvlad/optgen/internal/spelling"
)

// Option is a fully resolved non-group record.
type Option struct {
	// Pos is the record's position among non-group records.
	Pos    int
	Record *catalog.OptionRecord

	// Name is the canonicalized, unescaped identifier of the record.
	Name string

	Resolution resolve.Resolution

	// Group is nil for ungrouped records and for aliases.
	Group *resolve.Group

	Spellings []spelling.Spelling
}

// Ident returns the escaped identifier of the primary declaration.
func (o *Option) Ident() string {
	return ident.Escape(o.Name)
}

// DeclIdent returns the escaped identifier of the declaration of sp.
func (o *Option) DeclIdent(sp spelling.Spelling) string {
	return ident.WithSuffix(o.Name, sp.Suffix)
}

// Primary returns the primary spelling.
func (o *Option) Primary() spelling.Spelling {
	return o.Spellings[0]
}

// Emitted reports whether the option produces declarations.
func (o *Option) Emitted() bool {
	return o.Record.Kind.IsOption() && len(o.Spellings) > 0
}

// Result is the resolved catalog.
type Result struct {
	Catalog *catalog.Catalog
	Index   *index.Index
	Aliases *resolve.AliasTable
	Groups  *resolve.GroupTable
	Filter  *contexts.Filter

	options []*Option
}

// Options returns every non-group record in catalog order, emitted or not.
func (r *Result) Options() []*Option {
	return r.options
}

// Option returns the option at pos.
func (r *Result) Option(pos int) *Option {
	return r.options[pos]
}

// Emitted returns the options that produce declarations, in catalog order.
func (r *Result) Emitted() []*Option {
	out := make([]*Option, 0, len(r.options))
	for _, o := range r.options {
		if o.Emitted() {
			out = append(out, o)
		}
	}
	return out
}

// Canonical returns the resolved option an alias points at; for canonical
// options it returns o itself.
func (r *Result) Canonical(o *Option) *Option {
	pos, _ := r.Index.OptionPosition(o.Resolution.Canonical.ID)
	return r.options[pos]
}

// Compile resolves cat. It fails on the first catalog defect.
func Compile(ctx context.Context, cat *catalog.Catalog) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	if err := cat.Validate(); err != nil {
		return nil, err
	}

	idx, err := index.Build(cat)
	if err != nil {
		return nil, err
	}
	logger.Debug("Catalog indexed.", "options", len(idx.Options()), "groups", len(idx.Groups()), "aliases", len(idx.Aliases()))

	aliases, err := resolve.Aliases(idx)
	if err != nil {
		return nil, err
	}
	groups, err := resolve.Groups(idx)
	if err != nil {
		return nil, err
	}
	logger.Debug("Aliases and groups resolved.")

	filter, err := contexts.Compile(cat.Contexts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Contexts compiled.", "count", len(filter.All()))

	res := &Result{
		Catalog: cat,
		Index:   idx,
		Aliases: aliases,
		Groups:  groups,
		Filter:  filter,
		options: make([]*Option, len(idx.Options())),
	}

	owners := make(map[string]string, len(idx.Options()))
	for pos, rec := range idx.Options() {
		o := &Option{
			Pos:        pos,
			Record:     rec,
			Name:       ident.Canonicalize(rec.ID),
			Resolution: aliases.At(pos),
			Group:      groups.Of(pos),
			Spellings:  spelling.Expand(rec),
		}
		res.options[pos] = o

		if !o.Emitted() {
			continue
		}
		if o.Name == "" {
			return nil, catalog.Defect(catalog.DefectInvalidRecord, rec, "id derives an empty identifier")
		}
		if prev, dup := owners[o.Name]; dup {
			return nil, catalog.Defect(catalog.DefectDuplicateIdentifier, rec,
				"identifier %s collides with record %q", o.Name, prev)
		}
		owners[o.Name] = rec.ID
	}

	// Alias declarations reference their target's declaration, so the
	// target has to be emitted too.
	for _, o := range res.options {
		if !o.Emitted() || !o.Resolution.IsAlias() {
			continue
		}
		if !res.Canonical(o).Emitted() {
			return nil, catalog.Defect(catalog.DefectAliasMissing, o.Record,
				"alias target %q is not an emitted option", o.Record.Alias)
		}
	}

	logger.Debug("Catalog compiled.", "emitted", len(res.Emitted()))
	return res, nil
}
