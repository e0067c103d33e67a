package resolve

import (
	"github.com/specialistvlad/optgen/internal/catalog"
	"github.com/specialistvlad/optgen/internal/index"
)

// Generator is the parsing-behavior descriptor of an option: how many
// values it consumes and in what shape.
type Generator struct {
	Kind    catalog.Kind
	NumArgs int
}

// GeneratorOf returns the generator a canonical record declares.
func GeneratorOf(rec *catalog.OptionRecord) Generator {
	g := Generator{Kind: rec.Kind}
	if rec.Kind == catalog.KindMultiArg {
		g.NumArgs = rec.NumArgs
	}
	return g
}

// Resolution is the outcome of alias resolution for one option record.
type Resolution struct {
	Record *catalog.OptionRecord

	// Canonical is the record whose generator Record uses. It is Record
	// itself for canonical records.
	Canonical *catalog.OptionRecord

	Generator Generator
}

// IsAlias reports whether the resolution went through an alias.
func (r Resolution) IsAlias() bool {
	return r.Canonical != r.Record
}

// AliasTable maps option positions to their resolution.
type AliasTable struct {
	byPos []Resolution
}

// Aliases resolves every option record in catalog order. Aliases pointing to
// a missing record or to another alias are catalog defects.
func Aliases(idx *index.Index) (*AliasTable, error) {
	options := idx.Options()
	table := &AliasTable{byPos: make([]Resolution, len(options))}

	for pos, rec := range options {
		if !rec.IsAlias() {
			table.byPos[pos] = Resolution{Record: rec, Canonical: rec, Generator: GeneratorOf(rec)}
			continue
		}

		target, ok := idx.Option(rec.Alias)
		if !ok {
			return nil, catalog.Defect(catalog.DefectAliasMissing, rec, "alias target %q does not exist", rec.Alias)
		}
		if target.IsAlias() {
			return nil, catalog.Defect(catalog.DefectAliasChain, rec,
				"alias target %q is itself an alias of %q", target.ID, target.Alias)
		}
		table.byPos[pos] = Resolution{Record: rec, Canonical: target, Generator: GeneratorOf(target)}
	}
	return table, nil
}

// At returns the resolution of the option at pos.
func (t *AliasTable) At(pos int) Resolution {
	return t.byPos[pos]
}
