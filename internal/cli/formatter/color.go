package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/tempo/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// colorKeyStyles maps item color keys onto palette styles.
var colorKeyStyles = map[string]lipgloss.Style{
	"green":  StyleGreen,
	"yellow": StyleYellow,
	"red":    StyleRed,
	"blue":   StyleBlue,
	"purple": StylePurple,
	"aqua":   StyleAqua,
	"teal":   StyleAqua,
}

// ColorKeyStyle returns the style for an item's color key, falling back
// to the plain foreground style.
func ColorKeyStyle(key string) lipgloss.Style {
	if s, ok := colorKeyStyles[strings.ToLower(key)]; ok {
		return s
	}
	return StyleFg
}

// StatusPill returns a colored status indicator.
func StatusPill(status domain.ItemStatus) string {
	switch status {
	case domain.ItemOpen:
		return StyleBlue.Render("● open")
	case domain.ItemDone:
		return StyleGreen.Render("✓ done")
	case domain.ItemDropped:
		return StyleDim.Render("✗ dropped")
	default:
		return StyleDim.Render(string(status))
	}
}

// PriorityPill returns a colored priority indicator.
func PriorityPill(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("high")
	case domain.PriorityLow:
		return StyleDim.Render("low")
	default:
		return StyleFg.Render("normal")
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
