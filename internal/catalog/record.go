// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package catalog

import "fmt"

// Pos locates a record in its source file.
type Pos struct {
	File string
	Line int
}

// String renders the position as "file:line", or "" when unknown.
func (p Pos) String() string {
	if p.File == "" {
		return ""
	}
	if p.Line == 0 {
		return p.File
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// OptionRecord is one row of the catalog. Records are immutable once loaded.
type OptionRecord struct {
	// ID uniquely identifies the record among records of the same family
	// (options or groups). Aliases and group references use it.
	ID string

	Kind Kind

	// Prefixes are the leading spellings (for example "-" and "--"). The
	// first one forms the primary spelling.
	Prefixes []string

	// Spelling is the option body without any prefix. For group records it
	// holds the group's display name.
	Spelling string

	// Group references a group record by ID; empty means ungrouped.
	Group string

	// Alias references the canonical record this one is an alias of; empty
	// means the record is canonical.
	Alias string

	Flags CapabilitySet

	// HelpText and MetaVar are nil when absent. For group records HelpText
	// holds the group's description.
	HelpText *string
	MetaVar  *string

	// NumArgs is only meaningful for KindMultiArg.
	NumArgs int

	Pos Pos
}

// IsGroup reports whether the record describes a group.
func (r *OptionRecord) IsGroup() bool {
	return r.Kind == KindGroup
}

// IsAlias reports whether the record is an alias of another record.
func (r *OptionRecord) IsAlias() bool {
	return r.Alias != ""
}

// IsHidden reports whether the record is hidden from help output.
func (r *OptionRecord) IsHidden() bool {
	return r.Flags.Has(HelpHidden)
}

// IsPlaceholder reports whether the record is a bare positional input with
// no literal spelling.
func (r *OptionRecord) IsPlaceholder() bool {
	return r.Kind == KindInput && r.Spelling == "" && len(r.Prefixes) == 0
}

// GroupRecord is the group view of a record of kind KindGroup.
type GroupRecord struct {
	ID          string
	DisplayName string
	Description *string
	Pos         Pos
}

// AsGroup returns the group view of r. It panics when r is not a group.
func (r *OptionRecord) AsGroup() *GroupRecord {
	if !r.IsGroup() {
		panic(fmt.Sprintf("catalog: record %q is a %s, not a group", r.ID, r.Kind))
	}
	return &GroupRecord{
		ID:          r.ID,
		DisplayName: r.Spelling,
		Description: r.HelpText,
		Pos:         r.Pos,
	}
}

// ContextDef is a catalog-declared context: a named predicate over
// capability names.
type ContextDef struct {
	Name      string
	Predicate string
	Pos       Pos
}

// Ptr returns a pointer to s.
func Ptr(s string) *string {
	return &s
}
