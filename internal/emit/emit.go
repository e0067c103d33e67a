// Package emit renders a compiled catalog as declarative option source.
//
// Each artifact is an independent pass over the same immutable
// compile.Result in catalog order. Output is assembled in memory and handed
// to the writer in one piece, so a failing pass never leaves a partial file
// behind.
package emit

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/optgen/internal/compile"
)

// Artifact names one rendered view of the catalog.
type Artifact string

const (
	// ArtifactOptions declares one constant per option spelling.
	ArtifactOptions Artifact = "options"
	// ArtifactAll lists every declaration.
	ArtifactAll Artifact = "all"
	// ArtifactGroups renders the group enum, its names, help text and the
	// grouped declaration blocks.
	ArtifactGroups Artifact = "groups"
	// ArtifactAliases maps alias declarations to their canonical ones.
	ArtifactAliases Artifact = "aliases"
	// ArtifactContexts renders one registration table per context.
	ArtifactContexts Artifact = "contexts"
)

// Artifacts lists every artifact in emission order.
var Artifacts = []Artifact{ArtifactOptions, ArtifactAll, ArtifactGroups, ArtifactAliases, ArtifactContexts}

// ParseArtifacts validates artifact names. An empty list selects every
// artifact.
func ParseArtifacts(names []string) ([]Artifact, error) {
	if len(names) == 0 {
		return Artifacts, nil
	}
	out := make([]Artifact, 0, len(names))
	for _, name := range names {
		a := Artifact(strings.ToLower(strings.TrimSpace(name)))
		if !a.valid() {
			return nil, fmt.Errorf("unknown artifact %q", name)
		}
		out = append(out, a)
	}
	return out, nil
}

func (a Artifact) valid() bool {
	for _, known := range Artifacts {
		if a == known {
			return true
		}
	}
	return false
}

// Options selects what an Emitter renders.
type Options struct {
	// Artifacts to render. They are always rendered in emission order,
	// whatever order they are given in. Empty means all.
	Artifacts []Artifact

	// Contexts names the contexts rendered by ArtifactContexts, in order.
	// Empty means every context.
	Contexts []string
}

// Emitter renders a compiled catalog.
type Emitter struct {
	res  *compile.Result
	opts Options
}

// New returns an Emitter for res.
func New(res *compile.Result, opts Options) *Emitter {
	return &Emitter{res: res, opts: opts}
}

// Emit renders the selected artifacts to w.
func (e *Emitter) Emit(w io.Writer) error {
	p := &printer{}
	e.header(p)

	selected := e.opts.Artifacts
	if len(selected) == 0 {
		selected = Artifacts
	}
	want := make(map[Artifact]bool, len(selected))
	for _, a := range selected {
		if !a.valid() {
			return fmt.Errorf("unknown artifact %q", a)
		}
		want[a] = true
	}

	for _, a := range Artifacts {
		if !want[a] {
			continue
		}
		var err error
		switch a {
		case ArtifactOptions:
			e.options(p)
		case ArtifactAll:
			e.all(p)
		case ArtifactGroups:
			e.groups(p)
		case ArtifactAliases:
			e.aliases(p)
		case ArtifactContexts:
			err = e.contexts(p)
		}
		if err != nil {
			return fmt.Errorf("emit %s: %w", a, err)
		}
	}

	_, err := io.WriteString(w, p.String())
	return err
}

func (e *Emitter) header(p *printer) {
	sources := make([]string, len(e.res.Catalog.Sources))
	for i, s := range e.res.Catalog.Sources {
		sources[i] = filepath.Base(s)
	}
	p.line("//===----------------------------------------------------------------------===//")
	p.line("//")
	p.line("// NOTE: Generated file, do not edit!")
	p.line("//")
	if len(sources) > 0 {
		p.line("// This file is generated by optgen from '%s'.", strings.Join(sources, "', '"))
	} else {
		p.line("// This file is generated by optgen.")
	}
	p.line("//")
	p.line("//===----------------------------------------------------------------------===//")
}
