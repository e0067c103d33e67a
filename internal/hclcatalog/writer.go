package hclcatalog

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/optgen/internal/catalog"
)

// Write renders cat as a canonical HCL catalog: one block per record in
// catalog order, followed by the catalog's context blocks. Capabilities are
// written by name, never as a mask. Loading the output yields an equivalent
// catalog.
func Write(w io.Writer, cat *catalog.Catalog) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	first := true
	separate := func() {
		if !first {
			root.AppendNewline()
		}
		first = false
	}

	for _, rec := range cat.Records {
		separate()
		if rec.IsGroup() {
			writeGroup(root, rec.AsGroup())
			continue
		}
		writeOption(root, rec)
	}
	for _, def := range cat.Contexts {
		separate()
		body := root.AppendNewBlock(blockContext, []string{def.Name}).Body()
		body.SetAttributeValue("predicate", cty.StringVal(def.Predicate))
	}

	_, err := w.Write(f.Bytes())
	return err
}

func writeGroup(root *hclwrite.Body, g *catalog.GroupRecord) {
	body := root.AppendNewBlock(blockGroup, []string{g.ID}).Body()
	body.SetAttributeValue("name", cty.StringVal(g.DisplayName))
	if g.Description != nil {
		body.SetAttributeValue("help", cty.StringVal(*g.Description))
	}
}

func writeOption(root *hclwrite.Body, rec *catalog.OptionRecord) {
	body := root.AppendNewBlock(blockOption, []string{rec.ID}).Body()
	body.SetAttributeValue("kind", cty.StringVal(rec.Kind.String()))
	if len(rec.Prefixes) > 0 {
		body.SetAttributeValue("prefixes", stringList(rec.Prefixes))
	}
	if rec.Spelling != "" {
		body.SetAttributeValue("spelling", cty.StringVal(rec.Spelling))
	}
	if rec.Group != "" {
		body.SetAttributeValue("group", cty.StringVal(rec.Group))
	}
	if rec.Alias != "" {
		body.SetAttributeValue("alias", cty.StringVal(rec.Alias))
	}
	if !rec.Flags.IsEmpty() {
		body.SetAttributeValue("flags", stringList(rec.Flags.Names()))
	}
	if rec.HelpText != nil {
		body.SetAttributeValue("help", cty.StringVal(*rec.HelpText))
	}
	if rec.MetaVar != nil {
		body.SetAttributeValue("meta_var", cty.StringVal(*rec.MetaVar))
	}
	if rec.Kind == catalog.KindMultiArg {
		body.SetAttributeValue("num_args", cty.NumberIntVal(int64(rec.NumArgs)))
	}
}

func stringList(values []string) cty.Value {
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.StringVal(v)
	}
	return cty.ListVal(vals)
}
