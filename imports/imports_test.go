package imports_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensora/imports"
)

// writeTree lays out a small fixture repository:
//
//	widgets/          — declares Widget, NewWidget
//	widgets/gears/    — declares Gear, Widget (ambiguous with widgets)
//	all/              — aggregator re-exporting Widget as an alias
//	internal broken/  — skipped dirs and an unparsable file
func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"widgets/widget.go": `package widgets

// Widget is a fixture type.
type Widget struct{}

// NewWidget builds a Widget.
func NewWidget() Widget { return Widget{} }

const MaxSize = 10

var DefaultWidget = Widget{}
`,
		"widgets/gears/gear.go": `package gears

type Gear struct{}

type Widget struct{}
`,
		"all/all.go": `package all

import "example.com/fixture/widgets"

type Widget = widgets.Widget

var NewWidget = widgets.NewWidget
`,
		"_skipme/skipped.go": `package skipped

type Hidden struct{}
`,
		"testdata/fixture.go": `package fixture

type AlsoHidden struct{}
`,
		"widgets/broken.go": "package widgets\n\nfunc Unfinished( {",
	}
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

func scanFixture(t *testing.T) *imports.Graph {
	t.Helper()
	g, err := imports.Scan(writeTree(t), &imports.ScanOptions{ModulePath: "example.com/fixture"})
	require.NoError(t, err)
	return g
}

// TestScan_GraphContents verifies packages, declarations and skips.
func TestScan_GraphContents(t *testing.T) {
	g := scanFixture(t)

	assert.Equal(t, []string{
		"example.com/fixture/all",
		"example.com/fixture/widgets",
		"example.com/fixture/widgets/gears",
	}, g.Paths(), "hidden and testdata dirs are pruned")

	w, ok := g.Package("example.com/fixture/widgets")
	require.True(t, ok)
	assert.Equal(t, "widgets", w.Name)
	assert.Equal(t, imports.KindType, w.Decls["Widget"])
	assert.Equal(t, imports.KindFunc, w.Decls["NewWidget"])
	assert.Equal(t, imports.KindConst, w.Decls["MaxSize"])
	assert.Equal(t, imports.KindVar, w.Decls["DefaultWidget"])

	agg, ok := g.Package("example.com/fixture/all")
	require.True(t, ok)
	assert.Equal(t, "widgets.Widget", agg.Aliases["Widget"], "type alias is recorded")
	assert.Equal(t, "widgets.NewWidget", agg.Aliases["NewWidget"], "var alias is recorded")
}

// TestScan_BadRoot rejects non-directories.
func TestScan_BadRoot(t *testing.T) {
	_, err := imports.Scan(filepath.Join(t.TempDir(), "missing"), nil)
	assert.ErrorIs(t, err, imports.ErrBadRoot)
}

// TestSuggest_PackageMatch imports the package itself when the name names
// a package.
func TestSuggest_PackageMatch(t *testing.T) {
	g := scanFixture(t)

	st, warns, err := imports.Suggest(g, "gears", nil)
	require.NoError(t, err)
	assert.Empty(t, warns)
	if diff := cmp.Diff(imports.Statement{
		Path:        "example.com/fixture/widgets/gears",
		PackageName: "gears",
	}, st); diff != "" {
		t.Errorf("statement mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, `import "example.com/fixture/widgets/gears"`, st.Render())
	assert.Equal(t, "gears", st.Qualified())
}

// TestSuggest_UniqueDecl finds the single declaring package.
func TestSuggest_UniqueDecl(t *testing.T) {
	g := scanFixture(t)

	st, warns, err := imports.Suggest(g, "Gear", nil)
	require.NoError(t, err)
	assert.Empty(t, warns)
	assert.Equal(t, "example.com/fixture/widgets/gears", st.Path)
	assert.Equal(t, "gears.Gear", st.Qualified())
	assert.Equal(t, `import g "example.com/fixture/widgets/gears"`, st.RenderAliased("g"))
}

// TestSuggest_AmbiguousPrefersDeepNonAggregator ranks gears (deepest,
// non-aggregator) over widgets and the all package, with a warning.
func TestSuggest_AmbiguousPrefersDeepNonAggregator(t *testing.T) {
	g := scanFixture(t)

	st, warns, err := imports.Suggest(g, "Widget", nil)
	require.NoError(t, err)
	assert.Equal(t, "example.com/fixture/widgets/gears", st.Path)
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0], "several packages for that object")
	assert.Contains(t, warns[0], "example.com/fixture/widgets")
}

// TestSuggest_AliasWarning reports the aliased original when only an
// aggregator binds the name under a custom aggregator policy.
func TestSuggest_AliasWarning(t *testing.T) {
	g := scanFixture(t)

	st, warns, err := imports.Suggest(g, "NewWidget", nil)
	require.NoError(t, err)
	assert.Equal(t, "example.com/fixture/widgets", st.Path, "non-aggregator wins over the all package")
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0], "several packages")

	// With widgets treated as an aggregator too, the alias in all wins and
	// both the aggregator and alias warnings fire.
	st, warns, err = imports.Suggest(g, "NewWidget", &imports.Options{Aggregators: []string{"all", "widgets"}})
	require.NoError(t, err)
	assert.Equal(t, "example.com/fixture/all", st.Path)
	joined := ""
	for _, w := range warns {
		joined += w + "\n"
	}
	assert.Contains(t, joined, "aggregator")
	assert.Contains(t, joined, `seems to be an alias for "widgets.NewWidget"`)
}

// TestSuggest_NoImport fails with the sentinel for unknown names.
func TestSuggest_NoImport(t *testing.T) {
	g := scanFixture(t)

	_, _, err := imports.Suggest(g, "my_tailor_is_rich", nil)
	assert.ErrorIs(t, err, imports.ErrNoImport)
	assert.ErrorContains(t, err, "my_tailor_is_rich")

	_, _, err = imports.Suggest(nil, "Widget", nil)
	assert.ErrorIs(t, err, imports.ErrEmptyGraph)
}

// TestSuggest_MaxListed elides long candidate lists.
func TestSuggest_MaxListed(t *testing.T) {
	g := scanFixture(t)

	_, warns, err := imports.Suggest(g, "Widget", &imports.Options{MaxListed: 1})
	require.NoError(t, err)
	require.NotEmpty(t, warns)
	assert.Contains(t, warns[0], ", ...")
}
