package emit

func (e *Emitter) groups(p *printer) {
	groups := e.res.Groups.All()

	p.blank()
	p.line("extension Option {")
	p.line("  public enum Group {")
	for _, g := range groups {
		p.line("    case %s", g.Ident)
	}
	p.line("  }")
	p.line("}")

	p.blank()
	p.line("extension Option.Group {")
	p.line("  public var name: String {")
	p.line("    switch self {")
	for _, g := range groups {
		p.line("      case .%s:", g.Ident)
		p.line("        return %s", quote(g.Record.DisplayName))
	}
	p.line("    }")
	p.line("  }")
	p.line("}")

	p.blank()
	p.line("extension Option.Group {")
	p.line("  public var helpText: String? {")
	p.line("    switch self {")
	for _, g := range groups {
		p.line("      case .%s:", g.Ident)
		p.line("        return %s", quoteOrNil(g.Record.Description))
	}
	p.line("    }")
	p.line("  }")
	p.line("}")

	// Grouped declarations first, in group order, then the ungrouped ones.
	p.blank()
	p.line("extension Option.Group {")
	p.line("  public var options: [Option] {")
	p.line("    switch self {")
	for _, g := range groups {
		p.line("      case .%s:", g.Ident)
		e.declList(p, "        ", g.Members)
	}
	p.line("    }")
	p.line("  }")
	p.line("}")

	p.blank()
	p.line("extension Option {")
	p.line("  public static var ungroupedOptions: [Option] {")
	e.declList(p, "    ", e.res.Groups.Ungrouped())
	p.line("  }")
	p.line("}")
}

// declList renders a return statement listing every declaration of the
// options at the given positions.
func (e *Emitter) declList(p *printer, indent string, positions []int) {
	var idents []string
	for _, pos := range positions {
		o := e.res.Option(pos)
		if !o.Emitted() {
			continue
		}
		for _, sp := range o.Spellings {
			idents = append(idents, o.DeclIdent(sp))
		}
	}
	if len(idents) == 0 {
		p.line("%sreturn []", indent)
		return
	}
	p.line("%sreturn [", indent)
	for _, id := range idents {
		p.line("%s  Option.%s,", indent, id)
	}
	p.line("%s]", indent)
}
