package emit

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/optgen/internal/catalog"
	"github.com/specialistvlad/optgen/internal/compile"
	"github.com/specialistvlad/optgen/internal/resolve"
	"github.com/specialistvlad/optgen/internal/spelling"
)

// kindTokens maps generator kinds to their declaration tokens.
var kindTokens = map[catalog.Kind]string{
	catalog.KindInput:            ".input",
	catalog.KindFlag:             ".flag",
	catalog.KindJoined:           ".joined",
	catalog.KindSeparate:         ".separate",
	catalog.KindRemainingArgs:    ".remaining",
	catalog.KindCommaJoined:      ".commaJoined",
	catalog.KindJoinedOrSeparate: ".joinedOrSeparate",
	catalog.KindMultiArg:         ".multiArg",
}

func kindToken(k catalog.Kind) string {
	tok, ok := kindTokens[k]
	if !ok {
		// Group and Unknown records are filtered out before emission.
		panic(fmt.Sprintf("emit: no declaration token for %s", k))
	}
	return tok
}

// attributes returns the attribute tokens of a declaration. Inputs are
// always path-valued.
func attributes(flags catalog.CapabilitySet, gen resolve.Generator) []string {
	if gen.Kind == catalog.KindInput {
		flags = flags.With(catalog.ArgumentIsPath)
	}
	names := flags.Names()
	for i, n := range names {
		names[i] = "." + n
	}
	return names
}

// declaration renders the declaration of one spelling of o.
func (e *Emitter) declaration(o *compile.Option, sp spelling.Spelling) string {
	gen := o.Resolution.Generator

	var b strings.Builder
	fmt.Fprintf(&b, "  public static let %s: Option = Option(%s, %s", o.DeclIdent(sp), quote(sp.Text), kindToken(gen.Kind))

	switch {
	case o.Resolution.IsAlias():
		fmt.Fprintf(&b, ", alias: Option.%s", e.res.Canonical(o).Ident())
	case !sp.Primary:
		fmt.Fprintf(&b, ", alias: Option.%s", o.Ident())
	}

	if !o.Record.Flags.IsEmpty() || gen.Kind == catalog.KindInput {
		fmt.Fprintf(&b, ", attributes: [%s]", strings.Join(attributes(o.Record.Flags, gen), ", "))
	}
	if o.Record.MetaVar != nil {
		fmt.Fprintf(&b, ", metaVar: %s", quote(*o.Record.MetaVar))
	}
	if o.Record.HelpText != nil {
		fmt.Fprintf(&b, ", helpText: %s", quote(trimHelp(*o.Record.HelpText)))
	}
	if o.Group != nil {
		fmt.Fprintf(&b, ", group: .%s", o.Group.Ident)
	}
	if gen.Kind == catalog.KindMultiArg {
		fmt.Fprintf(&b, ", numArgs: %d", gen.NumArgs)
	}
	b.WriteString(")")
	return b.String()
}

func (e *Emitter) options(p *printer) {
	p.blank()
	p.line("extension Option {")
	for _, o := range e.res.Emitted() {
		for _, sp := range o.Spellings {
			p.raw(e.declaration(o, sp))
		}
	}
	p.line("}")
}

func (e *Emitter) all(p *printer) {
	p.blank()
	p.line("extension Option {")
	p.line("  public static var allOptions: [Option] {")
	p.line("    return [")
	for _, o := range e.res.Emitted() {
		for _, sp := range o.Spellings {
			p.line("      Option.%s,", o.DeclIdent(sp))
		}
	}
	p.line("    ]")
	p.line("  }")
	p.line("}")
}
