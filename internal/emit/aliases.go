package emit

import "fmt"

func (e *Emitter) aliases(p *printer) {
	var entries []string
	for _, id := range e.res.Index.Aliases() {
		pos, _ := e.res.Index.OptionPosition(id)
		o := e.res.Option(pos)
		if !o.Emitted() {
			continue
		}
		entries = append(entries, fmt.Sprintf("Option.%s: Option.%s,", o.Ident(), e.res.Canonical(o).Ident()))
	}

	p.blank()
	p.line("extension Option {")
	p.line("  public static var aliases: [Option: Option] {")
	if len(entries) == 0 {
		p.line("    return [:]")
	} else {
		p.line("    return [")
		for _, entry := range entries {
			p.line("      %s", entry)
		}
		p.line("    ]")
	}
	p.line("  }")
	p.line("}")
}
