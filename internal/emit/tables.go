package emit

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/optgen/internal/catalog"
	"github.com/specialistvlad/optgen/internal/compile"
	"github.com/specialistvlad/optgen/internal/contexts"
	"github.com/specialistvlad/optgen/internal/resolve"
)

// generatorExpr renders a generator as a table value. Multi-argument
// generators carry their slot count.
func generatorExpr(g resolve.Generator) string {
	if g.Kind == catalog.KindMultiArg {
		return fmt.Sprintf("%s(numArgs: %d)", kindToken(g.Kind), g.NumArgs)
	}
	return kindToken(g.Kind)
}

func visibility(rec *catalog.OptionRecord) string {
	if rec.IsHidden() {
		return ".hidden"
	}
	return ".visible"
}

// entries renders the registrations of o for one context. Primary spellings
// of canonical records register as options; alternate spellings and every
// spelling of an alias register as aliases of the primary spelling whose
// generator they share.
func (e *Emitter) entries(o *compile.Option) []string {
	gen := generatorExpr(o.Resolution.Generator)
	vis := visibility(o.Record)
	target := e.res.Canonical(o).Primary()

	out := make([]string, 0, len(o.Spellings))
	for _, sp := range o.Spellings {
		if sp.Primary && !o.Resolution.IsAlias() {
			out = append(out, fmt.Sprintf(".option(%s, %s, %s),", quote(sp.Text), gen, vis))
			continue
		}
		out = append(out, fmt.Sprintf(".alias(%s, of: %s, %s, %s),", quote(sp.Text), quote(target.Text), gen, vis))
	}
	return out
}

func (e *Emitter) contexts(p *printer) error {
	selected, err := e.res.Filter.Select(e.opts.Contexts...)
	if err != nil {
		return err
	}
	for _, c := range selected {
		if err := e.table(p, c); err != nil {
			return err
		}
	}
	return nil
}

// member reports whether o registers in c. An alias registers only when
// its own flags and those of its canonical record both satisfy c, so every
// alias entry points at a spelling in the same table.
func (e *Emitter) member(c *contexts.Context, o *compile.Option) (bool, error) {
	member, err := c.Member(o.Record)
	if err != nil || !member || !o.Resolution.IsAlias() {
		return member, err
	}
	return c.Member(e.res.Canonical(o).Record)
}

func (e *Emitter) table(p *printer, c *contexts.Context) error {
	var lines []string
	for _, o := range e.res.Emitted() {
		member, err := e.member(c, o)
		if err != nil {
			return err
		}
		if member {
			lines = append(lines, e.entries(o)...)
		}
	}

	p.blank()
	p.line("extension OptionTable {")
	p.line("  /// Options registered when %s holds.", strings.Join(strings.Fields(c.Predicate), " "))
	p.line("  public static var %s: OptionTable {", c.Ident)
	if len(lines) == 0 {
		p.line("    return OptionTable([])")
	} else {
		p.line("    return OptionTable([")
		for _, l := range lines {
			p.line("      %s", l)
		}
		p.line("    ])")
	}
	p.line("  }")
	p.line("}")
	return nil
}
