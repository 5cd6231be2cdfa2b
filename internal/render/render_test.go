package render_test

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/internal/render"
	"github.com/katalvlaran/wayfinder/routes"
)

func TestPathPrompt(t *testing.T) {
	var b strings.Builder
	require.NoError(t, render.PathPrompt(&b))

	out := b.String()
	require.Contains(t, out, `id="start"`)
	require.Contains(t, out, `id="end"`)
	require.Contains(t, out, `value="Find Shortest Path"`)
}

func TestPathResponse(t *testing.T) {
	var b strings.Builder
	r := &routes.Route{Path: []string{"A", "D", "C"}, Times: []float64{1, 1.5}, Cost: 2.5}
	require.NoError(t, render.PathResponse(&b, "A", "C", r, nil))

	require.Equal(t,
		"<p>Shortest path from A to C</p><ol><li>A</li><li>D</li><li>C</li></ol>"+
			"<p>Total travel time: 2.5 seconds</p>",
		b.String())
}

func TestPathResponse_EscapesNames(t *testing.T) {
	var b strings.Builder
	r := &routes.Route{Path: []string{"<script>", "B"}, Times: []float64{1}, Cost: 1}
	require.NoError(t, render.PathResponse(&b, "<script>", "B", r, nil))

	require.NotContains(t, b.String(), "<script>")
	require.Contains(t, b.String(), "&lt;script&gt;")
}

func TestPathResponse_Errors(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		err        error
		kind       string
		text       string
	}{
		{"missing", "", "B", nil, "missing_input", "Please enter both"},
		{"unknown", "A", "Z", fmt.Errorf("wrap: %w", routes.ErrNodeNotFound), "not_found", "Unknown location: A or Z."},
		{"no path", "C", "A", routes.ErrNoPathFound, "no_path", "No path exists from C to A."},
		{"other", "A", "B", errors.New("disk on fire"), "error", "disk on fire"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			require.NoError(t, render.PathResponse(&b, tt.start, tt.end, nil, tt.err))
			out := b.String()
			require.True(t, strings.HasPrefix(out, `<p class="error" data-kind="`+tt.kind+`">`), out)
			require.Contains(t, out, tt.text)
			require.NotContains(t, out, "<ol>")
		})
	}
}

func TestFurthestResponse(t *testing.T) {
	var b strings.Builder
	d := &routes.Destination{Location: "C", Cost: 2, Path: []string{"A", "D", "C"}}
	require.NoError(t, render.FurthestResponse(&b, "A", d, nil))

	require.Equal(t,
		"<p>Starting location: A</p><p>Furthest destination: C (2 seconds)</p><p>Route:</p>"+
			"<ol><li>A</li><li>D</li><li>C</li></ol>",
		b.String())
}

func TestFurthestResponse_Errors(t *testing.T) {
	var b strings.Builder
	require.NoError(t, render.FurthestResponse(&b, "C", nil, routes.ErrNoReachableDestination))
	require.Contains(t, b.String(), "No other location can be reached from C.")

	b.Reset()
	require.NoError(t, render.FurthestResponse(&b, "Z", nil, routes.ErrNodeNotFound))
	require.Contains(t, b.String(), "Unknown location: Z.")
}

func TestFurthestPrompt(t *testing.T) {
	var b strings.Builder
	require.NoError(t, render.FurthestPrompt(&b))
	require.Contains(t, b.String(), `id="from"`)
	require.Contains(t, b.String(), `value="Furthest Destination From"`)
}

func ExamplePathResponse() {
	r := &routes.Route{Path: []string{"Library", "Gym"}, Times: []float64{90}, Cost: 90}
	_ = render.PathResponse(os.Stdout, "Library", "Gym", r, nil)
	// Output:
	// <p>Shortest path from Library to Gym</p><ol><li>Library</li><li>Gym</li></ol><p>Total travel time: 90 seconds</p>
}
