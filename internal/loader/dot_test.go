package loader_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/internal/loader"
)

const campusDOT = `digraph campus {
    // walking times in seconds
    "Memorial Union" -> "Science Hall" [label="105.8"];
    "Science Hall" -> "Memorial Union" [label="105.8"];
    "Science Hall" -> Library [seconds=42];
    Library->"Union South" [weight="300"]
}
`

func TestParseDOT(t *testing.T) {
	edges, err := loader.ParseDOT(strings.NewReader(campusDOT))
	require.NoError(t, err)
	require.Equal(t, []loader.Edge{
		{From: "Memorial Union", To: "Science Hall", Weight: 105.8},
		{From: "Science Hall", To: "Memorial Union", Weight: 105.8},
		{From: "Science Hall", To: "Library", Weight: 42},
		{From: "Library", To: "Union South", Weight: 300},
	}, edges)
}

func TestParseDOT_Empty(t *testing.T) {
	edges, err := loader.ParseDOT(strings.NewReader("digraph {\n}\n"))
	require.NoError(t, err)
	require.Empty(t, edges)
}

func TestParseDOT_SyntaxErrors(t *testing.T) {
	cases := map[string]string{
		"missing attribute": "digraph {\n  A -> B\n}",
		"bad weight":        "digraph {\n  A -> B [label=\"fast\"]\n}",
		"negative weight":   "digraph {\n  A -> B [label=\"-3\"]\n}",
		"empty name":        "digraph {\n  \"\" -> B [label=\"3\"]\n}",
		"bad escape":        "digraph {\n  \"A\\q\" -> B [label=\"3\"]\n}",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loader.ParseDOT(strings.NewReader(src))
			require.ErrorIs(t, err, loader.ErrSyntax)
			require.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestWriteDOT_RoundTrip(t *testing.T) {
	in := []loader.Edge{
		{From: "Bascom Hall", To: "Library", Weight: 12.25},
		{From: "Library", To: "Bascom Hall", Weight: 13},
		{From: `Dept "A"`, To: `C:\Hall`, Weight: 2},
		{From: `C:\Hall`, To: "Café -> Annex", Weight: 0.5},
	}
	var buf bytes.Buffer
	require.NoError(t, loader.WriteDOT(&buf, "campus", in))
	require.True(t, strings.HasPrefix(buf.String(), `digraph "campus" {`))

	out, err := loader.ParseDOT(&buf)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestParseDOT_EscapedAndBareNames(t *testing.T) {
	src := "digraph {\n" +
		`  "Dept \"A\"" -> C:\Hall [label="4"];` + "\n" +
		`  C:\Hall -> "Back\\Slash" [label="1"];` + "\n" +
		"}\n"
	edges, err := loader.ParseDOT(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []loader.Edge{
		{From: `Dept "A"`, To: `C:\Hall`, Weight: 4},
		{From: `C:\Hall`, To: `Back\Slash`, Weight: 1},
	}, edges)
}
