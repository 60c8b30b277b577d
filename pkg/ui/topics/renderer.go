package topics

// Renderer formats a topic's raw content for terminal display. format is
// the topic file's extension (".md", ".txt").
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged; New uses it when given a nil
// renderer. (GlamourRenderer returns content unchanged on its own when
// glamour fails.)
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
