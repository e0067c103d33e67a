package ident

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"emit_module_path", "emitModulePath"},
		{"v", "v"},
		{"I", "I"},
		{"_leading", "Leading"},
		{"trailing_", "trailing"},
		{"double__sep", "doubleSep"},
		{"Foo Group", "FooGroup"},
		{"with-dash", "withDash"},
		{"embed_bitcode_marker", "embedBitcodeMarker"},
		{"already_Upper", "alreadyUpper"},
		{"num_1_threads", "num1Threads"},
		{"", ""},
		{"___", ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got := Canonicalize(tc.in)
			require.Equal(t, tc.want, got)
			require.NotContains(t, got, "_")
		})
	}
}

func TestIdentifierEscapesReservedWords(t *testing.T) {
	t.Parallel()

	require.Equal(t, "`static`", Identifier("static"))
	require.Equal(t, "`internal`", Identifier("internal_"))
	require.Equal(t, "staticLib", Identifier("static_lib"))
	require.Equal(t, "static_", WithSuffix("static", "_"))
	require.Equal(t, "`internal`", WithSuffix("intern", "al"))
}

func TestGroupIdentifier(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"internal_Group":        "`internal`",
		"code_formatting_Group": "codeFormatting",
		"g_group":               "g",
		"Foo Group":             "Foo",
		"Foo_Group":             "Foo",
		"FOOGROUP":              "FOO",
		"grouping":              "grouping",
		"modes":                 "modes",
	}
	for in, want := range cases {
		require.Equal(t, want, GroupIdentifier(in), in)
	}
}

func TestIdentifierIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"a_b_c", "static", "x-y z"} {
		require.Equal(t, Identifier(in), Identifier(in))
	}
}
