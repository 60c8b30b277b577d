// Package style provides the lipgloss color palette and rendering styles
// shared by pkg/ui/table and pkg/ui/topics, grounded on dodot's pkg/style
// package (themes.go's AdaptiveColor palette, styles.go's derived styles).
package style

import "github.com/charmbracelet/lipgloss"

// Color palette, adaptive to the terminal's light/dark background.
var (
	PrimaryColor = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}

	SuccessColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFC107", Dark: "#FFD54F"}
	InfoColor    = lipgloss.AdaptiveColor{Light: "#17A2B8", Dark: "#4DD0E1"}

	HeadingColor = lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"}
	TextColor    = lipgloss.AdaptiveColor{Light: "#495057", Dark: "#E9ECEF"}
	BorderColor  = lipgloss.AdaptiveColor{Light: "#DEE2E6", Dark: "#3B3C4F"}

	// SetupColor marks the row for the version currently SETUP in this
	// process's environment (pkg/cli.ProductListing.IsSetup).
	SetupColor = lipgloss.AdaptiveColor{Light: "#8B5CF6", Dark: "#A78BFA"}
	// TagColor marks a product:version pointed at by a tag.
	TagColor = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"}
)
