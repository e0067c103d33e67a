package yamlcatalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/optgen/internal/catalog"
)

// Decoder.KnownFields does not reach into custom unmarshalers, so record
// and context keys are checked by hand.
var (
	recordKeys  = keySet("id", "kind", "name", "prefixes", "spelling", "group", "alias", "flags", "mask", "help", "meta_var", "num_args")
	contextKeys = keySet("name", "predicate")
)

func keySet(keys ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

func checkKeys(value *yaml.Node, known map[string]struct{}, what string) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %s must be a mapping", value.Line, what)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		if _, ok := known[key.Value]; !ok {
			return fmt.Errorf("line %d: field %s not found in %s", key.Line, key.Value, what)
		}
	}
	return nil
}

// record is one entry of the `records` sequence.
type record struct {
	fields recordFields
	line   int
}

type recordFields struct {
	ID       string   `yaml:"id"`
	Kind     string   `yaml:"kind"`
	Name     string   `yaml:"name"`
	Prefixes []string `yaml:"prefixes"`
	Spelling string   `yaml:"spelling"`
	Group    string   `yaml:"group"`
	Alias    string   `yaml:"alias"`
	Flags    []string `yaml:"flags"`
	Mask     *uint64  `yaml:"mask"`
	Help     *string  `yaml:"help"`
	MetaVar  *string  `yaml:"meta_var"`
	NumArgs  *int     `yaml:"num_args"`
}

var _ yaml.Unmarshaler = (*record)(nil)

func (r *record) UnmarshalYAML(value *yaml.Node) error {
	if err := checkKeys(value, recordKeys, "record"); err != nil {
		return err
	}
	r.line = value.Line
	return value.Decode(&r.fields)
}

// raw converts the entry into a catalog row. Groups carry their display name
// in `name`; options must not.
func (r *record) raw(file string) (*catalog.RawRecord, error) {
	f := r.fields
	pos := catalog.Pos{File: file, Line: r.line}

	spelling := f.Spelling
	if f.Name != "" {
		kind, err := catalog.ParseKind(f.Kind)
		if err != nil || kind != catalog.KindGroup {
			return nil, &catalog.DefectError{
				Kind:   catalog.DefectInvalidRecord,
				Record: f.ID,
				Pos:    pos,
				Detail: "name is only valid for group records",
			}
		}
		spelling = f.Name
	}

	return &catalog.RawRecord{
		ID:       f.ID,
		Kind:     f.Kind,
		Prefixes: f.Prefixes,
		Spelling: spelling,
		Group:    f.Group,
		Alias:    f.Alias,
		Flags:    f.Flags,
		Mask:     f.Mask,
		HelpText: f.Help,
		MetaVar:  f.MetaVar,
		NumArgs:  f.NumArgs,
		Pos:      pos,
	}, nil
}

// contextDef is one entry of the `contexts` sequence.
type contextDef struct {
	Name      string
	Predicate string
	line      int
}

var _ yaml.Unmarshaler = (*contextDef)(nil)

func (c *contextDef) UnmarshalYAML(value *yaml.Node) error {
	type plain struct {
		Name      string `yaml:"name"`
		Predicate string `yaml:"predicate"`
	}

	if err := checkKeys(value, contextKeys, "context"); err != nil {
		return err
	}
	var p plain
	err := value.Decode(&p)
	c.Name, c.Predicate, c.line = p.Name, p.Predicate, value.Line
	return err
}
