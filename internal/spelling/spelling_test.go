package spelling

import (
	"testing"

	"github.com/specialistvlad/optgen/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		rec      catalog.OptionRecord
		want     []string
		suffixes []string
	}{
		{
			name:     "no prefixes",
			rec:      catalog.OptionRecord{Kind: catalog.KindInput, Spelling: "<input>"},
			want:     []string{"<input>"},
			suffixes: []string{""},
		},
		{
			name:     "single and double dash",
			rec:      catalog.OptionRecord{Kind: catalog.KindFlag, Prefixes: []string{"-", "--"}, Spelling: "v"},
			want:     []string{"-v", "--v"},
			suffixes: []string{"", "_"},
		},
		{
			name:     "empty alternate prefix is skipped",
			rec:      catalog.OptionRecord{Kind: catalog.KindFlag, Prefixes: []string{"-", "", "--", "/"}, Spelling: "help"},
			want:     []string{"-help", "--help", "/help"},
			suffixes: []string{"", "_", "_2"},
		},
		{
			name:     "join marker kept for matching",
			rec:      catalog.OptionRecord{Kind: catalog.KindJoined, Prefixes: []string{"-"}, Spelling: "D="},
			want:     []string{"-D="},
			suffixes: []string{""},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Expand(&tc.rec)
			require.Len(t, got, len(tc.want))

			primaries := 0
			for i, sp := range got {
				assert.Equal(t, tc.want[i], sp.Text)
				assert.Equal(t, tc.suffixes[i], sp.Suffix)
				if sp.Primary {
					primaries++
				}
			}
			assert.Equal(t, 1, primaries, "exactly one primary spelling")
			assert.True(t, got[0].Primary, "primary comes first")
		})
	}
}

func TestExpandPlaceholder(t *testing.T) {
	t.Parallel()

	rec := &catalog.OptionRecord{ID: "INPUT", Kind: catalog.KindInput}
	assert.Empty(t, Expand(rec))
	assert.Equal(t, "", Primary(rec))
}

func TestEndsWithJoinMarker(t *testing.T) {
	t.Parallel()

	assert.True(t, EndsWithJoinMarker("-module-name="))
	assert.False(t, EndsWithJoinMarker("-module-name"))
	assert.False(t, EndsWithJoinMarker(""))
}

func TestSpellingCountMatchesPrefixes(t *testing.T) {
	t.Parallel()

	prefixes := []string{"-", "--", "", "+"}
	rec := &catalog.OptionRecord{Kind: catalog.KindFlag, Prefixes: prefixes, Spelling: "x"}
	nonEmptyAlternates := 2
	assert.Len(t, Expand(rec), 1+nonEmptyAlternates)
}
