package style

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	NormalStyle = lipgloss.NewStyle().Foreground(TextColor)
	MutedStyle  = lipgloss.NewStyle().Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor)

	// ProductStyle renders a product name, SetupStyle the version that is
	// the process's current SETUP_<PRODUCT>, TagStyle a tag name.
	ProductStyle = lipgloss.NewStyle().Foreground(PrimaryColor).Bold(true)
	SetupStyle   = lipgloss.NewStyle().Foreground(SetupColor).Bold(true)
	TagStyle     = lipgloss.NewStyle().Foreground(TagColor)
	PathStyle    = lipgloss.NewStyle().Foreground(MutedColor).Italic(true)
)

// Operation indicators. pkg/ui/table uses SetupIndicator to flag the
// setup row; the other indicators are not used elsewhere in the repo.
var (
	SetupIndicator   = SetupStyle.Render("●")
	PendingIndicator = MutedStyle.Render("○")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicatorGlyph = WarningStyle.Render("!")
)

func Bold(s string) string { return lipgloss.NewStyle().Bold(true).Render(s) }
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
