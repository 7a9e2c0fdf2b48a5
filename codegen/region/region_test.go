package region_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goa.design/beans/codegen/markers"
	"goa.design/beans/codegen/region"
)

func TestLocateExisting(t *testing.T) {
	lines := []string{"a", region.StartMarker, "gen", region.EndMarker, "b"}
	split, err := region.Locate(lines)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, split.Prefix)
	assert.Equal(t, []string{"gen"}, split.Region)
	assert.Equal(t, []string{"b"}, split.Suffix)
	assert.False(t, split.Created)
	assert.False(t, split.Completed)
}

func TestLocateIndentedMarkers(t *testing.T) {
	lines := []string{"a", "    " + region.StartMarker, "gen", "\t\t" + region.EndMarker}
	split, err := region.Locate(lines)
	require.NoError(t, err)
	assert.Equal(t, []string{"gen"}, split.Region)

	out := region.Rewrite(split.Prefix, split.Suffix, split.Region)
	assert.Equal(t, []string{"a", region.StartMarker, "gen", region.EndMarker}, out)
}

func TestLocateCreatesRegionAtEnd(t *testing.T) {
	split, err := region.Locate([]string{"package x", "}"})
	require.NoError(t, err)
	assert.True(t, split.Created)
	assert.Equal(t, []string{"package x", "}", ""}, split.Prefix)
	assert.Empty(t, split.Suffix)

	split, err = region.Locate([]string{"package x", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"package x", ""}, split.Prefix)

	split, err = region.Locate(nil)
	require.NoError(t, err)
	assert.Empty(t, split.Prefix)
}

func TestLocateCompletesMissingEnd(t *testing.T) {
	split, err := region.Locate([]string{"a", region.StartMarker, "b"})
	require.NoError(t, err)
	assert.True(t, split.Completed)
	assert.Equal(t, []string{"a"}, split.Prefix)
	assert.Empty(t, split.Region)
	assert.Equal(t, []string{"b"}, split.Suffix)
	assert.Equal(t, []string{"a", region.StartMarker, "x", region.EndMarker, "b"},
		region.Rewrite(split.Prefix, split.Suffix, []string{"x"}))
}

func TestLocateErrors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		line  int
	}{
		{"end without start", []string{"a", region.EndMarker}, 2},
		{"end before start", []string{region.EndMarker, region.StartMarker}, 1},
		{"duplicate start", []string{region.StartMarker, region.StartMarker, region.EndMarker}, 2},
		{"duplicate end", []string{region.StartMarker, region.EndMarker, "x", region.EndMarker}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := region.Locate(tc.lines)
			var serr *markers.StructuralError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tc.line, serr.Line)
		})
	}
}

func TestRewriteDoesNotAlias(t *testing.T) {
	prefix := make([]string, 1, 8)
	prefix[0] = "p"
	out := region.Rewrite(prefix, []string{"s"}, []string{"r"})
	out[0] = "changed"
	assert.Equal(t, "p", prefix[0])
	assert.Equal(t, []string{"p"}, prefix)
}

func TestResolveIndent(t *testing.T) {
	in := []string{"func f() {", "\treturn", "\t\t}", "", "no\ttab"}
	assert.Equal(t, in, region.ResolveIndent(in, region.DefaultIndent))
	assert.Equal(t,
		[]string{"func f() {", "  return", "    }", "", "no\ttab"},
		region.ResolveIndent(in, "  "),
	)
}

func TestIsMarker(t *testing.T) {
	assert.True(t, region.IsStart(region.StartMarker))
	assert.True(t, region.IsStart("   //--- AUTOGENERATED START ---"))
	assert.False(t, region.IsStart(region.EndMarker))
	assert.True(t, region.IsEnd("\t"+region.EndMarker))
	assert.False(t, region.IsEnd("// AUTOGENERATED ENDING"))
}

func TestRewritePreservesOutsideProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("prefix and suffix survive a locate and rewrite", prop.ForAll(
		func(prefix, old, suffix, fresh []string) bool {
			lines := region.Rewrite(prefix, suffix, old)
			split, err := region.Locate(lines)
			if err != nil {
				return false
			}
			out := region.Rewrite(split.Prefix, split.Suffix, fresh)
			want := region.Rewrite(prefix, suffix, fresh)
			if len(out) != len(want) {
				return false
			}
			for i := range out {
				if out[i] != want[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
