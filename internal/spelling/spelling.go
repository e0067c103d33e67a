// Package spelling expands a record's prefixes and base spelling into the
// concrete textual forms the parser accepts.
package spelling

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/optgen/internal/catalog"
)

// JoinMarkers are the trailing characters that join a value onto a spelling
// ("-I=" accepts "-I=path").
const JoinMarkers = "="

// Spelling is one concrete form of an option.
type Spelling struct {
	// Text is the full spelling used for parser matching, including any
	// trailing join marker.
	Text string

	// Primary is true for exactly one spelling per record.
	Primary bool

	// Suffix disambiguates the declaration identifier of an alternate
	// spelling. It is empty for the primary spelling.
	Suffix string
}

// EndsWithJoinMarker reports whether text ends in a join marker.
func EndsWithJoinMarker(text string) bool {
	return text != "" && strings.ContainsRune(JoinMarkers, rune(text[len(text)-1]))
}

// AlternateSuffix returns the identifier suffix of the k-th alternate
// spelling (k starts at 1): "_" for the first, "_2", "_3", ... afterwards.
func AlternateSuffix(k int) string {
	if k <= 1 {
		return "_"
	}
	return "_" + strconv.Itoa(k)
}

// Expand returns the spellings of rec, primary first. Prefixes after the
// first are alternates; empty alternate prefixes contribute nothing. A
// placeholder input has no spelling at all.
func Expand(rec *catalog.OptionRecord) []Spelling {
	if rec.IsPlaceholder() {
		return nil
	}
	if len(rec.Prefixes) == 0 {
		return []Spelling{{Text: rec.Spelling, Primary: true}}
	}

	out := make([]Spelling, 0, len(rec.Prefixes))
	out = append(out, Spelling{Text: rec.Prefixes[0] + rec.Spelling, Primary: true})
	alternates := 0
	for _, prefix := range rec.Prefixes[1:] {
		if prefix == "" {
			continue
		}
		alternates++
		out = append(out, Spelling{
			Text:   prefix + rec.Spelling,
			Suffix: AlternateSuffix(alternates),
		})
	}
	return out
}

// Primary returns the primary spelling of rec, or "" for a placeholder.
func Primary(rec *catalog.OptionRecord) string {
	sp := Expand(rec)
	if len(sp) == 0 {
		return ""
	}
	return sp[0].Text
}
