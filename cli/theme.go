package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Kanagawa dragon (dark) and wave (light) palettes.
const (
	darkGreen  = "#98BB6C"
	darkYellow = "#FF9E3B"
	darkRed    = "#FF5D62"
	darkOrange = "#FFA066"
	darkCyan   = "#7E9CD8"
	darkBlue   = "#7FB4CA"
	darkViolet = "#957FB8"
	darkBorder = "#363646"

	lightGreen  = "#4E7C5A"
	lightYellow = "#A68A64"
	lightRed    = "#C34043"
	lightOrange = "#CC6B4E"
	lightCyan   = "#4D699B"
	lightBlue   = "#4C6A78"
	lightViolet = "#624C83"
	lightBorder = "#C7C7C7"
)

// Colors is the palette used by the CLI.
type Colors struct {
	Green  lipgloss.TerminalColor
	Yellow lipgloss.TerminalColor
	Red    lipgloss.TerminalColor
	Orange lipgloss.TerminalColor
	Cyan   lipgloss.TerminalColor
	Blue   lipgloss.TerminalColor
	Violet lipgloss.TerminalColor
	Border lipgloss.TerminalColor
}

// Theme holds the pre-configured styles for CLI output.
type Theme struct {
	Colors Colors

	Header  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Italic  lipgloss.Style
	Price   lipgloss.Style
	Border  lipgloss.Style
}

// UIConfig is the optional `ui:` section of storefront.yml.
type UIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultTheme is the active theme.
var DefaultTheme = NewTheme("kanagawa")

// NewTheme builds a theme by name: "kanagawa" (adaptive) or "terminal"
// (the 16 ANSI colors).
func NewTheme(name string) *Theme {
	var c Colors
	switch name {
	case "terminal":
		c = Colors{
			Green:  lipgloss.Color("2"),
			Yellow: lipgloss.Color("3"),
			Red:    lipgloss.Color("1"),
			Orange: lipgloss.Color("208"),
			Cyan:   lipgloss.Color("6"),
			Blue:   lipgloss.Color("4"),
			Violet: lipgloss.Color("5"),
			Border: lipgloss.Color("8"),
		}
	default:
		c = Colors{
			Green:  lipgloss.AdaptiveColor{Light: lightGreen, Dark: darkGreen},
			Yellow: lipgloss.AdaptiveColor{Light: lightYellow, Dark: darkYellow},
			Red:    lipgloss.AdaptiveColor{Light: lightRed, Dark: darkRed},
			Orange: lipgloss.AdaptiveColor{Light: lightOrange, Dark: darkOrange},
			Cyan:   lipgloss.AdaptiveColor{Light: lightCyan, Dark: darkCyan},
			Blue:   lipgloss.AdaptiveColor{Light: lightBlue, Dark: darkBlue},
			Violet: lipgloss.AdaptiveColor{Light: lightViolet, Dark: darkViolet},
			Border: lipgloss.AdaptiveColor{Light: lightBorder, Dark: darkBorder},
		}
	}

	return &Theme{
		Colors:  c,
		Header:  lipgloss.NewStyle().Bold(true).Foreground(c.Orange),
		Success: lipgloss.NewStyle().Bold(true).Foreground(c.Green),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(c.Red),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(c.Yellow),
		Info:    lipgloss.NewStyle().Bold(true).Foreground(c.Cyan),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Italic:  lipgloss.NewStyle().Italic(true),
		Price:   lipgloss.NewStyle().Foreground(c.Green),
		Border:  lipgloss.NewStyle().Foreground(c.Border),
	}
}

// SetTheme replaces DefaultTheme.
func SetTheme(name string) {
	DefaultTheme = NewTheme(name)
}

// InitializeColor forces a color profile when CLICOLOR_FORCE or COLORTERM
// asks for one, and strips colors when NO_COLOR is set.
func InitializeColor() {
	switch {
	case os.Getenv("NO_COLOR") != "":
		lipgloss.SetColorProfile(termenv.Ascii)
	case os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
