// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines RawRecord, the field-for-field shape of one row of the
// upstream table, and its conversion into a validated OptionRecord.
//
// Both concrete loaders decode into RawRecord first, so every structural
// rule (known kind, known capabilities, argument counts, spellings) is
// enforced in exactly one place regardless of the input format.
package catalog

import "fmt"

// RawRecord holds the undecoded fields of one catalog row.
type RawRecord struct {
	ID       string
	Kind     string
	Prefixes []string
	Spelling string
	Group    string
	Alias    string
	Flags    []string
	Mask     *uint64
	HelpText *string
	MetaVar  *string
	NumArgs  *int
	Pos      Pos
}

// Record validates the raw fields and builds an OptionRecord.
func (raw *RawRecord) Record() (*OptionRecord, error) {
	rec := &OptionRecord{
		ID:       raw.ID,
		Prefixes: raw.Prefixes,
		Spelling: raw.Spelling,
		Group:    raw.Group,
		Alias:    raw.Alias,
		HelpText: raw.HelpText,
		MetaVar:  raw.MetaVar,
		Pos:      raw.Pos,
	}
	if raw.ID == "" {
		return nil, Defect(DefectInvalidRecord, rec, "record has no id")
	}

	kind, err := ParseKind(raw.Kind)
	if err != nil {
		return nil, Defect(DefectInvalidRecord, rec, "%v", err)
	}
	rec.Kind = kind

	for _, name := range raw.Flags {
		c, err := ParseCapability(name)
		if err != nil {
			return nil, Defect(DefectUndefinedCapability, rec, "%v", err)
		}
		rec.Flags = rec.Flags.With(c)
	}
	if raw.Mask != nil {
		set, err := CapabilitySetFromMask(*raw.Mask)
		if err != nil {
			return nil, Defect(DefectUndefinedCapability, rec, "%v", err)
		}
		rec.Flags = rec.Flags.Union(set)
	}

	if raw.NumArgs != nil {
		if kind != KindMultiArg {
			return nil, Defect(DefectInvalidRecord, rec, "num_args is only valid for multiArg options, not %s", kind)
		}
		if *raw.NumArgs <= 0 {
			return nil, Defect(DefectInvalidRecord, rec, "num_args must be positive, got %d", *raw.NumArgs)
		}
		rec.NumArgs = *raw.NumArgs
	} else if kind == KindMultiArg {
		return nil, Defect(DefectInvalidRecord, rec, "multiArg option requires num_args")
	}

	if err := checkShape(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func checkShape(rec *OptionRecord) error {
	switch {
	case rec.IsGroup():
		if rec.Spelling == "" {
			return Defect(DefectInvalidRecord, rec, "group has no display name")
		}
		if rec.Alias != "" || rec.Group != "" || len(rec.Prefixes) > 0 {
			return Defect(DefectInvalidRecord, rec, "group records cannot have prefixes, an alias or a group")
		}
	case rec.Kind == KindUnknown:
		// Unknown records never reach emission.
	case rec.IsPlaceholder():
	case rec.Spelling == "" && (len(rec.Prefixes) == 0 || rec.Prefixes[0] == ""):
		return Defect(DefectInvalidRecord, rec, "%s option has no spelling", rec.Kind)
	}
	if rec.Alias == rec.ID && rec.Alias != "" {
		return Defect(DefectAliasChain, rec, "record aliases itself")
	}
	return nil
}

// String is used in debug logs.
func (raw *RawRecord) String() string {
	return fmt.Sprintf("%s(%s)", raw.ID, raw.Kind)
}
