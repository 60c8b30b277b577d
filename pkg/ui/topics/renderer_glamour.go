package topics

import "github.com/charmbracelet/glamour"

// GlamourRenderer renders Markdown topics (the table-file and
// version-expression grammar references) with glamour, grounded on
// dodot's pkg/cobrax/topics/renderer_glamour.go.
type GlamourRenderer struct {
	Style string
	Width int
}

// NewGlamourRenderer returns a renderer that auto-detects style and width.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var opts []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		opts = append(opts, glamour.WithStylePath(r.Style))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
