package hclcatalog

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Block type names of a catalog file.
const (
	blockGroup   = "group"
	blockOption  = "option"
	blockContext = "context"
)

// fileSchema lists the top-level blocks of a catalog file. Content decoded
// against it returns blocks of every type in source order.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockGroup, LabelNames: []string{"id"}},
		{Type: blockOption, LabelNames: []string{"id"}},
		{Type: blockContext, LabelNames: []string{"name"}},
	},
}

// groupBlock is the body of a `group "<id>" { ... }` block.
type groupBlock struct {
	Name string  `hcl:"name"`
	Help *string `hcl:"help,optional"`
}

// optionBlock is the body of an `option "<id>" { ... }` block.
type optionBlock struct {
	Kind     string   `hcl:"kind"`
	Prefixes []string `hcl:"prefixes,optional"`
	Spelling string   `hcl:"spelling,optional"`
	Group    string   `hcl:"group,optional"`
	Alias    string   `hcl:"alias,optional"`
	Flags    []string `hcl:"flags,optional"`
	Help     *string  `hcl:"help,optional"`
	MetaVar  *string  `hcl:"meta_var,optional"`
	NumArgs  *int     `hcl:"num_args,optional"`

	// Mask is kept as a raw value; see decodeMask.
	Mask cty.Value `hcl:"mask,optional"`
}

// contextBlock is the body of a `context "<name>" { ... }` block.
type contextBlock struct {
	Predicate string `hcl:"predicate"`
}
