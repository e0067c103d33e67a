// Package ident turns catalog identifiers into the identifiers used in
// emitted source.
package ident

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// reserved holds the words that cannot be used as bare identifiers by the
// generated source's consumer.
var reserved = map[string]struct{}{
	"internal": {},
	"static":   {},
}

// IsReserved reports whether name collides with a reserved word.
func IsReserved(name string) bool {
	_, ok := reserved[name]
	return ok
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// Canonicalize converts a snake-case-like name into lower camel case:
// "emit_module_path" becomes "emitModulePath". The first segment is kept
// verbatim; each later segment has its leading lower-case letter upper-cased.
// Separators never survive, so the result contains no '_'.
func Canonicalize(name string) string {
	segments := strings.FieldsFunc(name, isSeparator)
	if len(segments) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	leading := !isSeparator(firstRune(name))
	for i, seg := range segments {
		if i == 0 && leading {
			b.WriteString(seg)
			continue
		}
		r, size := utf8.DecodeRuneInString(seg)
		if unicode.IsLower(r) {
			b.WriteRune(unicode.ToUpper(r))
			b.WriteString(seg[size:])
			continue
		}
		b.WriteString(seg)
	}
	return b.String()
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Escape wraps reserved words in backticks and returns other names unchanged.
func Escape(name string) string {
	if IsReserved(name) {
		return "`" + name + "`"
	}
	return name
}

// Identifier is Escape(Canonicalize(name)).
func Identifier(name string) string {
	return Escape(Canonicalize(name))
}

// GroupIdentifier derives a group's identifier from its record id: a
// trailing "group" suffix (any case) is removed before canonicalization, so
// "code_formatting_Group" becomes "codeFormatting".
func GroupIdentifier(id string) string {
	const suffix = "group"
	trimmed := id
	if len(id) >= len(suffix) && strings.EqualFold(id[len(id)-len(suffix):], suffix) {
		trimmed = id[:len(id)-len(suffix)]
	}
	return Identifier(trimmed)
}

// WithSuffix appends a disambiguating suffix to a canonical name and escapes
// the result. The suffix is applied before escaping so that reserved words
// stay well formed.
func WithSuffix(canonical, suffix string) string {
	return Escape(canonical + suffix)
}
