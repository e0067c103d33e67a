package contexts

import (
	"testing"

	"github.com/specialistvlad/optgen/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(caps ...catalog.Capability) *catalog.OptionRecord {
	return &catalog.OptionRecord{ID: "r", Kind: catalog.KindFlag, Spelling: "r", Flags: catalog.NewCapabilitySet(caps...)}
}

func mustLookup(t *testing.T, f *Filter, name string) *Context {
	t.Helper()
	c, ok := f.Lookup(name)
	require.True(t, ok, "context %s", name)
	return c
}

func TestBuiltins(t *testing.T) {
	t.Parallel()

	f, err := Compile()
	require.NoError(t, err)
	require.Len(t, f.All(), len(Builtins))

	cases := []struct {
		context string
		rec     *catalog.OptionRecord
		want    bool
	}{
		{"interactive", record(), true},
		{"interactive", record(catalog.NoDriver), false},
		{"interactive", record(catalog.NoInteractive), false},
		{"interactive", record(catalog.NoBatch), true},
		{"batch", record(catalog.NoBatch), false},
		{"batch", record(catalog.NoInteractive), true},
		{"frontendOnly", record(catalog.Frontend), true},
		{"frontendOnly", record(), false},
		{"moduleWrap", record(catalog.ModuleWrap), true},
		{"autolinkExtract", record(catalog.AutolinkExtract), true},
		{"autolinkExtract", record(catalog.ModuleWrap), false},
	}
	for _, tc := range cases {
		got, err := mustLookup(t, f, tc.context).Member(tc.rec)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %v", tc.context, tc.rec.Flags.Names())
	}
}

func TestHiddenDoesNotAffectMembership(t *testing.T) {
	t.Parallel()

	f, err := Compile()
	require.NoError(t, err)

	rec := record(catalog.Frontend, catalog.HelpHidden)

	frontend, err := mustLookup(t, f, "frontendOnly").Member(rec)
	require.NoError(t, err)
	assert.True(t, frontend)

	interactive := mustLookup(t, f, "interactive")
	withHidden, err := interactive.Member(rec)
	require.NoError(t, err)
	withoutHidden, err := interactive.Member(record(catalog.Frontend))
	require.NoError(t, err)
	assert.Equal(t, withoutHidden, withHidden, "helpHidden plays no part in interactive membership")
	assert.True(t, withHidden)

	excluded, err := interactive.Member(record(catalog.Frontend, catalog.HelpHidden, catalog.NoDriver))
	require.NoError(t, err)
	assert.False(t, excluded)
}

func TestMemberIsPure(t *testing.T) {
	t.Parallel()

	f, err := Compile()
	require.NoError(t, err)

	rec := record(catalog.NoBatch, catalog.Frontend)
	for _, c := range f.All() {
		first, err := c.Member(rec)
		require.NoError(t, err)
		second, err := c.Member(rec)
		require.NoError(t, err)
		assert.Equal(t, first, second, c.Name)

		// Only the flags matter, not the rest of the record.
		other := &catalog.OptionRecord{ID: "other", Kind: catalog.KindSeparate, Spelling: "zzz", Flags: rec.Flags}
		third, err := c.Member(other)
		require.NoError(t, err)
		assert.Equal(t, first, third, c.Name)
	}
}

func TestCatalogContexts(t *testing.T) {
	t.Parallel()

	f, err := Compile(
		&catalog.ContextDef{Name: "sil", Predicate: "frontend && !helpHidden"},
		&catalog.ContextDef{Name: "batch", Predicate: "!noBatch"},
	)
	require.NoError(t, err)
	require.Len(t, f.All(), len(Builtins)+1, "overrides keep their position")
	assert.Equal(t, "batch", f.All()[1].Name)
	assert.Equal(t, "!noBatch", f.All()[1].Predicate)
	assert.Equal(t, "sil", f.All()[len(f.All())-1].Name)

	ok, err := mustLookup(t, f, "batch").Member(record(catalog.NoDriver))
	require.NoError(t, err)
	assert.True(t, ok, "the override no longer excludes driver-excluded records")

	selected, err := f.Select("sil", "interactive")
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "sil", selected[0].Name)

	_, err = f.Select("nope")
	require.Error(t, err)
}

func TestCompileRejectsUndefinedCapabilities(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"undefined name": "frontend && sparkly",
		"not a boolean":  "1 + 2",
		"empty":          "",
	}
	for name, predicate := range cases {
		predicate := predicate
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Compile(&catalog.ContextDef{Name: "bad", Predicate: predicate})
			require.Error(t, err)
			assert.True(t, catalog.IsDefect(err, catalog.DefectUndefinedCapability), "got %v", err)
		})
	}
}

func TestCompileRejectsCollidingNames(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		def    catalog.ContextDef
		defect catalog.DefectKind
	}{
		{
			name:   "same identifier as a builtin",
			def:    catalog.ContextDef{Name: "frontend_only", Predicate: "!frontend"},
			defect: catalog.DefectDuplicateIdentifier,
		},
		{
			name:   "empty name",
			def:    catalog.ContextDef{Name: "", Predicate: "frontend"},
			defect: catalog.DefectInvalidRecord,
		},
		{
			name:   "separators only",
			def:    catalog.ContextDef{Name: "__", Predicate: "frontend"},
			defect: catalog.DefectInvalidRecord,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			def := tc.def

			// --- Act ---
			_, err := Compile(&def)

			// --- Assert ---
			require.Error(t, err)
			assert.True(t, catalog.IsDefect(err, tc.defect), "got %v", err)
		})
	}

	t.Run("catalog names collide with each other", func(t *testing.T) {
		t.Parallel()
		_, err := Compile(
			&catalog.ContextDef{Name: "sil-opt", Predicate: "frontend"},
			&catalog.ContextDef{Name: "sil_opt", Predicate: "frontend"},
		)
		assert.True(t, catalog.IsDefect(err, catalog.DefectDuplicateIdentifier), "got %v", err)
	})

	t.Run("overrides keep the identifier", func(t *testing.T) {
		t.Parallel()
		f, err := Compile(
			&catalog.ContextDef{Name: "frontendOnly", Predicate: "!frontend"},
			&catalog.ContextDef{Name: "sil_opt", Predicate: "frontend"},
		)
		require.NoError(t, err)
		assert.Equal(t, "frontendOnly", mustLookup(t, f, "frontendOnly").Ident)
		assert.Equal(t, "silOpt", mustLookup(t, f, "sil_opt").Ident)
	})
}
