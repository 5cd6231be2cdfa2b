// Package render produces the HTML fragments served under /html.
//
// Fragments are meant to be embedded in a larger page. Every interpolated
// value goes through html/template, so location names are always escaped.
package render

import (
	"errors"
	"html/template"
	"io"
	"strconv"

	"github.com/katalvlaran/wayfinder/routes"
)

// ErrMissingInput indicates a response was requested without its locations.
var ErrMissingInput = errors.New("render: start and end locations are required")

var funcs = template.FuncMap{
	"seconds": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
}

var tmpl = template.Must(template.New("render").Funcs(funcs).Parse(`
{{- define "pathPrompt" -}}
<label for="start">Starting location</label><input type="text" id="start" name="start" placeholder="Start"/><br>
<label for="end">Destination</label><input type="text" id="end" name="end" placeholder="Destination"/><br>
<input type="button" id="find-path" value="Find Shortest Path"/>
{{- end -}}

{{- define "pathResponse" -}}
<p>Shortest path from {{.Start}} to {{.End}}</p><ol>
{{- range .Route.Path}}<li>{{.}}</li>{{end -}}
</ol><p>Total travel time: {{seconds .Route.Cost}} seconds</p>
{{- end -}}

{{- define "furthestPrompt" -}}
<label for="from">Starting location</label><input type="text" id="from" name="start" placeholder="Start"/>
<input type="button" id="find-furthest" value="Furthest Destination From"/>
{{- end -}}

{{- define "furthestResponse" -}}
<p>Starting location: {{.Start}}</p><p>Furthest destination: {{.Dest.Location}} ({{seconds .Dest.Cost}} seconds)</p><p>Route:</p><ol>
{{- range .Dest.Path}}<li>{{.}}</li>{{end -}}
</ol>
{{- end -}}

{{- define "error" -}}
<p class="error" data-kind="{{.Kind}}">{{.Message}}</p>
{{- end -}}
`))

// PathPrompt writes the inputs for a shortest-path request: text fields with
// ids "start" and "end" and a submit button.
func PathPrompt(w io.Writer) error {
	return tmpl.ExecuteTemplate(w, "pathPrompt", nil)
}

// PathResponse writes the answer to a shortest-path request. When err is
// non-nil the fragment describes the failure instead of a route.
func PathResponse(w io.Writer, start, end string, r *routes.Route, err error) error {
	if err == nil && (start == "" || end == "") {
		err = ErrMissingInput
	}
	if err != nil {
		return Error(w, err, start, end)
	}

	return tmpl.ExecuteTemplate(w, "pathResponse", struct {
		Start, End string
		Route      *routes.Route
	}{start, end, r})
}

// FurthestPrompt writes the input for a furthest-destination request.
func FurthestPrompt(w io.Writer) error {
	return tmpl.ExecuteTemplate(w, "furthestPrompt", nil)
}

// FurthestResponse writes the answer to a furthest-destination request.
func FurthestResponse(w io.Writer, start string, d *routes.Destination, err error) error {
	if err == nil && start == "" {
		err = ErrMissingInput
	}
	if err != nil {
		return Error(w, err, start, "")
	}

	return tmpl.ExecuteTemplate(w, "furthestResponse", struct {
		Start string
		Dest  *routes.Destination
	}{start, d})
}

// Error writes a paragraph describing err in terms of the locations asked
// for. end may be empty for single-location queries.
func Error(w io.Writer, err error, start, end string) error {
	kind, msg := Describe(err, start, end)

	return tmpl.ExecuteTemplate(w, "error", struct{ Kind, Message string }{kind, msg})
}

// Describe maps err to a short kind and a user-facing sentence.
func Describe(err error, start, end string) (kind, msg string) {
	switch {
	case errors.Is(err, ErrMissingInput):
		return "missing_input", "Please enter both a starting location and a destination."
	case errors.Is(err, routes.ErrNodeNotFound):
		if end == "" {
			return "not_found", "Unknown location: " + start + "."
		}
		return "not_found", "Unknown location: " + start + " or " + end + "."
	case errors.Is(err, routes.ErrNoPathFound):
		return "no_path", "No path exists from " + start + " to " + end + "."
	case errors.Is(err, routes.ErrNoReachableDestination):
		return "no_destination", "No other location can be reached from " + start + "."
	default:
		return "error", "Something went wrong: " + err.Error()
	}
}
