// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package catalog

import (
	"errors"
	"fmt"
)

// ErrCatalogUnavailable reports a missing or empty catalog. The compiler
// cannot proceed without its schema input.
var ErrCatalogUnavailable = errors.New("option catalog unavailable")

// DefectKind classifies a malformed catalog.
type DefectKind string

const (
	DefectAliasChain          DefectKind = "alias-chain"
	DefectAliasMissing        DefectKind = "alias-missing"
	DefectGroupMissing        DefectKind = "group-missing"
	DefectDuplicateGroupID    DefectKind = "duplicate-group-id"
	DefectDuplicateIdentifier DefectKind = "duplicate-identifier"
	DefectDuplicateRecord     DefectKind = "duplicate-record"
	DefectUndefinedCapability DefectKind = "undefined-capability"
	DefectInvalidRecord       DefectKind = "invalid-record"
)

// DefectError is a fatal input-catalog defect. These are schema errors, not
// runtime conditions, and are never recovered from.
type DefectError struct {
	Kind   DefectKind
	Record string
	Pos    Pos
	Detail string
}

func (e *DefectError) Error() string {
	where := e.Record
	if p := e.Pos.String(); p != "" {
		where = fmt.Sprintf("%s (%s)", e.Record, p)
	}
	return fmt.Sprintf("catalog defect [%s] %s: %s", e.Kind, where, e.Detail)
}

// Defect builds a DefectError for record r.
func Defect(kind DefectKind, r *OptionRecord, format string, args ...any) *DefectError {
	return &DefectError{
		Kind:   kind,
		Record: r.ID,
		Pos:    r.Pos,
		Detail: fmt.Sprintf(format, args...),
	}
}

// IsDefect reports whether err is (or wraps) a DefectError of the given kind.
// An empty kind matches any defect.
func IsDefect(err error, kind DefectKind) bool {
	var d *DefectError
	if !errors.As(err, &d) {
		return false
	}
	return kind == "" || d.Kind == kind
}
