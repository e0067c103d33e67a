// Package contexts evaluates named contexts: boolean predicates over a
// record's capabilities that decide which records a downstream tool mode
// registers.
//
// Predicates are expr-lang expressions whose variables are capability
// names, for example `!noDriver && !noInteractive`. They are compiled once
// against an environment holding every known capability, so a predicate
// naming an undefined capability is rejected before any record is
// evaluated.
package contexts

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/specialistvlad/optgen/internal/catalog"
	"github.com/specialistvlad/optgen/internal/ident"
)

// Builtins are the contexts every catalog gets, in emission order.
var Builtins = []catalog.ContextDef{
	{Name: "interactive", Predicate: "!noDriver && !noInteractive"},
	{Name: "batch", Predicate: "!noDriver && !noBatch"},
	{Name: "frontendOnly", Predicate: "frontend"},
	{Name: "moduleWrap", Predicate: "moduleWrap"},
	{Name: "autolinkExtract", Predicate: "autolinkExtract"},
	{Name: "synthesizeInterface", Predicate: "synthesizeInterface"},
	{Name: "apiExtract", Predicate: "apiExtract"},
	{Name: "symbolGraphExtract", Predicate: "symbolGraphExtract"},
	{Name: "apiDigester", Predicate: "apiDigester"},
}

// Context is a compiled, named predicate.
type Context struct {
	Name      string
	Ident     string // table identifier in emitted source
	Predicate string
	program   *vm.Program
}

// Member reports whether rec belongs to the context. The result depends only
// on rec.Flags and the predicate.
func (c *Context) Member(rec *catalog.OptionRecord) (bool, error) {
	return c.Eval(rec.Flags)
}

// Eval evaluates the predicate against a capability set.
func (c *Context) Eval(flags catalog.CapabilitySet) (bool, error) {
	out, err := expr.Run(c.program, flags.Env())
	if err != nil {
		return false, fmt.Errorf("context %s: %w", c.Name, err)
	}
	member, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("context %s: predicate returned %T, want bool", c.Name, out)
	}
	return member, nil
}

// Filter is an ordered set of compiled contexts.
type Filter struct {
	contexts []*Context
	byName   map[string]*Context
}

// Compile compiles the built-in contexts followed by the given catalog
// definitions. A catalog definition reusing a built-in name replaces its
// predicate and keeps its position. Two different names deriving the same
// identifier are a duplicate-identifier defect.
func Compile(defs ...*catalog.ContextDef) (*Filter, error) {
	f := &Filter{byName: make(map[string]*Context, len(Builtins)+len(defs))}
	byIdent := make(map[string]string, len(Builtins)+len(defs))

	all := make([]*catalog.ContextDef, 0, len(Builtins)+len(defs))
	for i := range Builtins {
		all = append(all, &Builtins[i])
	}
	all = append(all, defs...)

	env := catalog.CapabilitySet(0).Env()
	for _, def := range all {
		id := ident.Identifier(def.Name)
		if id == "" {
			return nil, &catalog.DefectError{
				Kind:   catalog.DefectInvalidRecord,
				Record: fmt.Sprintf("context %q", def.Name),
				Pos:    def.Pos,
				Detail: "name derives an empty identifier",
			}
		}
		if other, ok := byIdent[id]; ok && other != def.Name {
			return nil, &catalog.DefectError{
				Kind:   catalog.DefectDuplicateIdentifier,
				Record: "context " + def.Name,
				Pos:    def.Pos,
				Detail: fmt.Sprintf("identifier %s is already used by context %s", id, other),
			}
		}
		byIdent[id] = def.Name

		if strings.TrimSpace(def.Predicate) == "" {
			return nil, &catalog.DefectError{
				Kind:   catalog.DefectUndefinedCapability,
				Record: "context " + def.Name,
				Pos:    def.Pos,
				Detail: "predicate is empty",
			}
		}
		program, err := expr.Compile(def.Predicate, expr.Env(env), expr.AsBool())
		if err != nil {
			return nil, &catalog.DefectError{
				Kind:   catalog.DefectUndefinedCapability,
				Record: "context " + def.Name,
				Pos:    def.Pos,
				Detail: fmt.Sprintf("predicate %q: %v", def.Predicate, err),
			}
		}
		c := &Context{Name: def.Name, Ident: id, Predicate: def.Predicate, program: program}
		if prev, ok := f.byName[def.Name]; ok {
			*prev = *c
			continue
		}
		f.byName[def.Name] = c
		f.contexts = append(f.contexts, c)
	}
	return f, nil
}

// All returns every context in order.
func (f *Filter) All() []*Context {
	return f.contexts
}

// Lookup returns the named context.
func (f *Filter) Lookup(name string) (*Context, bool) {
	c, ok := f.byName[name]
	return c, ok
}

// Select returns the named contexts in the order given, or every context
// when names is empty.
func (f *Filter) Select(names ...string) ([]*Context, error) {
	if len(names) == 0 {
		return f.contexts, nil
	}
	out := make([]*Context, 0, len(names))
	for _, name := range names {
		c, ok := f.byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown context %q", name)
		}
		out = append(out, c)
	}
	return out, nil
}
