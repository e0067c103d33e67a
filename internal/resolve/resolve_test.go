package resolve

import (
	"testing"

	"github.com/specialistvlad/optgen/internal/catalog"
	"github.com/specialistvlad/optgen/internal/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildIndex(t *testing.T, records ...*catalog.OptionRecord) *index.Index {
	t.Helper()
	c := &catalog.Catalog{}
	c.Append("test.hcl", records, nil)
	idx, err := index.Build(c)
	require.NoError(t, err)
	return idx
}

func TestAliasesUseCanonicalGenerator(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	idx := buildIndex(t,
		&catalog.OptionRecord{ID: "Xlinker", Kind: catalog.KindMultiArg, Prefixes: []string{"-"}, Spelling: "Xlinker", NumArgs: 2},
		&catalog.OptionRecord{ID: "Xlinker_EQ", Kind: catalog.KindJoined, Prefixes: []string{"-"}, Spelling: "Xlinker=", Alias: "Xlinker",
			Flags: catalog.NewCapabilitySet(catalog.HelpHidden)},
		&catalog.OptionRecord{ID: "v", Kind: catalog.KindFlag, Prefixes: []string{"-"}, Spelling: "v"},
	)

	// --- Act ---
	table, err := Aliases(idx)

	// --- Assert ---
	require.NoError(t, err)

	canonical := table.At(0)
	alias := table.At(1)
	assert.False(t, canonical.IsAlias())
	assert.True(t, alias.IsAlias())
	assert.Equal(t, canonical.Generator, alias.Generator, "alias emits the canonical generator")
	assert.Equal(t, Generator{Kind: catalog.KindMultiArg, NumArgs: 2}, alias.Generator)
	assert.Same(t, canonical.Record, alias.Canonical)
	assert.True(t, alias.Record.IsHidden(), "alias keeps its own flags")
}

func TestAliasesDefects(t *testing.T) {
	t.Parallel()

	t.Run("missing target", func(t *testing.T) {
		t.Parallel()
		idx := buildIndex(t,
			&catalog.OptionRecord{ID: "a", Kind: catalog.KindFlag, Spelling: "a", Alias: "does_not_exist"},
		)
		_, err := Aliases(idx)
		require.Error(t, err)
		assert.True(t, catalog.IsDefect(err, catalog.DefectAliasMissing), "got %v", err)
	})

	t.Run("alias of alias", func(t *testing.T) {
		t.Parallel()
		idx := buildIndex(t,
			&catalog.OptionRecord{ID: "a", Kind: catalog.KindFlag, Spelling: "a"},
			&catalog.OptionRecord{ID: "b", Kind: catalog.KindFlag, Spelling: "b", Alias: "a"},
			&catalog.OptionRecord{ID: "c", Kind: catalog.KindFlag, Spelling: "c", Alias: "b"},
		)
		_, err := Aliases(idx)
		require.Error(t, err)
		assert.True(t, catalog.IsDefect(err, catalog.DefectAliasChain), "got %v", err)
	})

	t.Run("alias to a group", func(t *testing.T) {
		t.Parallel()
		idx := buildIndex(t,
			&catalog.OptionRecord{ID: "g_Group", Kind: catalog.KindGroup, Spelling: "<g>"},
			&catalog.OptionRecord{ID: "a", Kind: catalog.KindFlag, Spelling: "a", Alias: "g_Group"},
		)
		_, err := Aliases(idx)
		assert.True(t, catalog.IsDefect(err, catalog.DefectAliasMissing), "group ids are not option ids")
	})
}

func TestGroups(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	idx := buildIndex(t,
		&catalog.OptionRecord{ID: "internal_Group", Kind: catalog.KindGroup, Spelling: "<internal>"},
		&catalog.OptionRecord{ID: "a", Kind: catalog.KindFlag, Spelling: "a", Group: "internal_Group"},
		&catalog.OptionRecord{ID: "code_formatting_Group", Kind: catalog.KindGroup, Spelling: "<code formatting>"},
		&catalog.OptionRecord{ID: "b", Kind: catalog.KindFlag, Spelling: "b"},
		&catalog.OptionRecord{ID: "c", Kind: catalog.KindFlag, Spelling: "c", Group: "code_formatting_Group"},
		&catalog.OptionRecord{ID: "d", Kind: catalog.KindFlag, Spelling: "d", Group: "internal_Group", Alias: "a"},
		&catalog.OptionRecord{ID: "e", Kind: catalog.KindFlag, Spelling: "e", Group: "internal_Group"},
	)

	// --- Act ---
	table, err := Groups(idx)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, table.All(), 2)
	assert.Equal(t, "`internal`", table.All()[0].Ident)
	assert.Equal(t, "codeFormatting", table.All()[1].Ident)

	assert.Equal(t, []int{0, 4}, table.All()[0].Members, "members follow catalog order")
	assert.Equal(t, []int{2}, table.All()[1].Members)
	assert.Equal(t, []int{1}, table.Ungrouped())

	assert.Same(t, table.All()[0], table.Of(0))
	assert.Nil(t, table.Of(1))
	assert.Nil(t, table.Of(3), "aliases are not attached to groups")
}

func TestGroupsDefects(t *testing.T) {
	t.Parallel()

	t.Run("derived identifiers collide", func(t *testing.T) {
		t.Parallel()
		idx := buildIndex(t,
			&catalog.OptionRecord{ID: "Foo Group", Kind: catalog.KindGroup, Spelling: "<foo>"},
			&catalog.OptionRecord{ID: "Foo_Group", Kind: catalog.KindGroup, Spelling: "<foo again>"},
		)
		_, err := Groups(idx)
		require.Error(t, err)
		assert.True(t, catalog.IsDefect(err, catalog.DefectDuplicateGroupID), "got %v", err)
	})

	t.Run("missing group", func(t *testing.T) {
		t.Parallel()
		idx := buildIndex(t,
			&catalog.OptionRecord{ID: "a", Kind: catalog.KindFlag, Spelling: "a", Group: "nowhere_Group"},
		)
		_, err := Groups(idx)
		assert.True(t, catalog.IsDefect(err, catalog.DefectGroupMissing), "got %v", err)
	})

	t.Run("missing group on an alias", func(t *testing.T) {
		t.Parallel()
		idx := buildIndex(t,
			&catalog.OptionRecord{ID: "a", Kind: catalog.KindFlag, Spelling: "a"},
			&catalog.OptionRecord{ID: "b", Kind: catalog.KindFlag, Spelling: "b", Alias: "a", Group: "nowhere_Group"},
		)
		_, err := Groups(idx)
		assert.True(t, catalog.IsDefect(err, catalog.DefectGroupMissing))
	})

	t.Run("empty identifier", func(t *testing.T) {
		t.Parallel()
		idx := buildIndex(t,
			&catalog.OptionRecord{ID: "Group", Kind: catalog.KindGroup, Spelling: "<g>"},
		)
		_, err := Groups(idx)
		assert.True(t, catalog.IsDefect(err, catalog.DefectInvalidRecord))
	})
}
