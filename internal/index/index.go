// Package index builds the immutable lookup structures the resolution passes
// share: option id → position, group id → position and the ordered alias
// list. Everything is computed in one forward pass over catalog order.
package index

import (
	"github.com/specialistvlad/optgen/internal/catalog"
	"github.com/specialistvlad/optgen/internal/spelling"
)

// Index is read-only after Build returns.
type Index struct {
	options  []*catalog.OptionRecord
	groups   []*catalog.GroupRecord
	optionAt map[string]int
	groupAt  map[string]int
	aliases  []string
}

// Build indexes cat. Duplicate ids within the option or group family are
// catalog defects.
func Build(cat *catalog.Catalog) (*Index, error) {
	idx := &Index{
		optionAt: make(map[string]int, len(cat.Records)),
		groupAt:  make(map[string]int),
	}

	for _, rec := range cat.Records {
		if rec.IsGroup() {
			if _, dup := idx.groupAt[rec.ID]; dup {
				return nil, catalog.Defect(catalog.DefectDuplicateRecord, rec, "group id declared more than once")
			}
			idx.groupAt[rec.ID] = len(idx.groups)
			idx.groups = append(idx.groups, rec.AsGroup())
			continue
		}

		if _, dup := idx.optionAt[rec.ID]; dup {
			return nil, catalog.Defect(catalog.DefectDuplicateRecord, rec, "option id declared more than once")
		}
		idx.optionAt[rec.ID] = len(idx.options)
		idx.options = append(idx.options, rec)

		if rec.IsAlias() && rec.Kind.IsOption() && !spelling.EndsWithJoinMarker(spelling.Primary(rec)) {
			idx.aliases = append(idx.aliases, rec.ID)
		}
	}
	return idx, nil
}

// Options returns the non-group records in catalog order. The slice must
// not be modified.
func (idx *Index) Options() []*catalog.OptionRecord {
	return idx.options
}

// Groups returns the group records in catalog order. The slice must not be
// modified.
func (idx *Index) Groups() []*catalog.GroupRecord {
	return idx.groups
}

// OptionPosition returns the sequential position of an option id.
func (idx *Index) OptionPosition(id string) (int, bool) {
	pos, ok := idx.optionAt[id]
	return pos, ok
}

// Option looks up an option record by id.
func (idx *Index) Option(id string) (*catalog.OptionRecord, bool) {
	pos, ok := idx.optionAt[id]
	if !ok {
		return nil, false
	}
	return idx.options[pos], true
}

// GroupPosition returns the sequential position of a group id.
func (idx *Index) GroupPosition(id string) (int, bool) {
	pos, ok := idx.groupAt[id]
	return pos, ok
}

// Group looks up a group record by id.
func (idx *Index) Group(id string) (*catalog.GroupRecord, bool) {
	pos, ok := idx.groupAt[id]
	if !ok {
		return nil, false
	}
	return idx.groups[pos], true
}

// Aliases returns the ids of alias records in catalog order, excluding
// aliases that only exist to support a value-joined spelling.
func (idx *Index) Aliases() []string {
	out := make([]string, len(idx.aliases))
	copy(out, idx.aliases)
	return out
}
