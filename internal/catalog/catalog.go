// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package catalog

import "strings"

// Catalog is the ordered, immutable result of loading one or more catalog
// files.
type Catalog struct {
	// Records holds option and group records interleaved, in catalog order.
	Records []*OptionRecord

	// Contexts holds catalog-declared contexts in catalog order.
	Contexts []*ContextDef

	// Sources lists the files the catalog was read from, in read order.
	Sources []string
}

// Options returns the non-group records in catalog order. Unknown records
// are included; emitters skip them.
func (c *Catalog) Options() []*OptionRecord {
	out := make([]*OptionRecord, 0, len(c.Records))
	for _, r := range c.Records {
		if !r.IsGroup() {
			out = append(out, r)
		}
	}
	return out
}

// Groups returns the group view of every group record in catalog order.
func (c *Catalog) Groups() []*GroupRecord {
	var out []*GroupRecord
	for _, r := range c.Records {
		if r.IsGroup() {
			out = append(out, r.AsGroup())
		}
	}
	return out
}

// Append adds loaded records and contexts from one source file.
func (c *Catalog) Append(source string, records []*OptionRecord, contexts []*ContextDef) {
	c.Sources = append(c.Sources, source)
	c.Records = append(c.Records, records...)
	c.Contexts = append(c.Contexts, contexts...)
}

// Validate checks the catalog-wide preconditions that do not need an index:
// the catalog must hold at least one record and context names must be
// unique.
func (c *Catalog) Validate() error {
	if len(c.Records) == 0 {
		if len(c.Sources) == 0 {
			return ErrCatalogUnavailable
		}
		return &unavailableError{sources: c.Sources}
	}
	seen := make(map[string]struct{}, len(c.Contexts))
	for _, def := range c.Contexts {
		if _, dup := seen[def.Name]; dup {
			return &DefectError{
				Kind:   DefectInvalidRecord,
				Record: "context " + def.Name,
				Pos:    def.Pos,
				Detail: "context declared more than once",
			}
		}
		seen[def.Name] = struct{}{}
	}
	return nil
}

type unavailableError struct {
	sources []string
}

func (e *unavailableError) Error() string {
	return ErrCatalogUnavailable.Error() + ": no records in " + strings.Join(e.sources, ", ")
}

func (e *unavailableError) Unwrap() error {
	return ErrCatalogUnavailable
}
