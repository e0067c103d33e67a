package resolve

import (
	"github.com/specialistvlad/optgen/internal/catalog"
	"github.com/specialistvlad/optgen/internal/ident"
	"github.com/specialistvlad/optgen/internal/index"
)

// Group is a group record with its derived identifier.
type Group struct {
	Record *catalog.GroupRecord
	Ident  string

	// Members are the positions of the group's canonical options, in
	// catalog order.
	Members []int
}

// GroupTable holds resolved groups and per-option cross-references.
type GroupTable struct {
	groups    []*Group
	byOption  []*Group
	ungrouped []int
}

// Groups derives group identifiers and attaches records to them. Two groups
// deriving the same identifier, or a record referring to a missing group,
// are catalog defects. Aliases are checked but never attached; they follow
// their canonical record.
func Groups(idx *index.Index) (*GroupTable, error) {
	table := &GroupTable{
		groups:   make([]*Group, 0, len(idx.Groups())),
		byOption: make([]*Group, len(idx.Options())),
	}

	owner := make(map[string]string, len(idx.Groups()))
	for _, g := range idx.Groups() {
		id := ident.GroupIdentifier(g.ID)
		if id == "" {
			return nil, &catalog.DefectError{
				Kind:   catalog.DefectInvalidRecord,
				Record: g.ID,
				Pos:    g.Pos,
				Detail: "group id derives an empty identifier",
			}
		}
		if prev, dup := owner[id]; dup {
			return nil, &catalog.DefectError{
				Kind:   catalog.DefectDuplicateGroupID,
				Record: g.ID,
				Pos:    g.Pos,
				Detail: "derived identifier " + id + " collides with group " + prev,
			}
		}
		owner[id] = g.ID
		table.groups = append(table.groups, &Group{Record: g, Ident: id})
	}

	for pos, rec := range idx.Options() {
		if rec.Group == "" {
			if !rec.IsAlias() && rec.Kind.IsOption() {
				table.ungrouped = append(table.ungrouped, pos)
			}
			continue
		}
		gpos, ok := idx.GroupPosition(rec.Group)
		if !ok {
			return nil, catalog.Defect(catalog.DefectGroupMissing, rec, "group %q does not exist", rec.Group)
		}
		if rec.IsAlias() {
			continue
		}
		g := table.groups[gpos]
		table.byOption[pos] = g
		if rec.Kind.IsOption() {
			g.Members = append(g.Members, pos)
		}
	}
	return table, nil
}

// All returns the groups in catalog order.
func (t *GroupTable) All() []*Group {
	return t.groups
}

// Of returns the group the option at pos is attached to, or nil.
func (t *GroupTable) Of(pos int) *Group {
	return t.byOption[pos]
}

// Ungrouped returns the positions of canonical options without a group.
func (t *GroupTable) Ungrouped() []int {
	return t.ungrouped
}
