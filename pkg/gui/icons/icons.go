// Package icons provides icon representations with Nerd Font and plain
// fallbacks for the coolbeans interface.
package icons

import (
	"os"
	"strings"
)

// Icon represents an icon with Nerd Font and fallback options
type Icon struct {
	NerdFont string
	Fallback string
}

var (
	// Ice is the title prefix. The emoji renders in most terminals; the
	// fallback is for terminals and multiplexers that mangle wide glyphs.
	Ice = Icon{
		NerdFont: "🧊",
		Fallback: "*",
	}

	// Bean marks the bean count in the container.
	Bean = Icon{
		NerdFont: "\uf0f4", // Nerd Font coffee icon
		Fallback: "o",
	}

	// Running and Paused mark the animation state.
	Running = Icon{
		NerdFont: "\uf04b", // Nerd Font play
		Fallback: "▶",
	}

	Paused = Icon{
		NerdFont: "\uf04c", // Nerd Font pause
		Fallback: "‖",
	}
)

// Cache for Nerd Font detection
var useNerdFonts *bool

func hasNerdFonts() bool {
	if useNerdFonts != nil {
		return *useNerdFonts
	}

	// Allow explicit override via environment
	if override := os.Getenv("COOLBEANS_NERD_FONTS"); override != "" {
		result := override == "1" || strings.EqualFold(override, "true")
		useNerdFonts = &result
		return result
	}

	termProgram := strings.ToLower(os.Getenv("TERM_PROGRAM"))
	term := strings.ToLower(os.Getenv("TERM"))

	// Common terminals/configs that often use Nerd Fonts
	nerdFontTerms := []string{
		"alacritty", "kitty", "wezterm", "iterm", "ghostty",
	}

	result := false
	for _, nfTerm := range nerdFontTerms {
		if strings.Contains(termProgram, nfTerm) || strings.Contains(term, nfTerm) {
			result = true
			break
		}
	}

	useNerdFonts = &result
	return result
}

// Get returns the appropriate icon string based on Nerd Font availability
func (i Icon) Get() string {
	if hasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// SetNerdFonts manually overrides Nerd Font detection
func SetNerdFonts(enabled bool) {
	useNerdFonts = &enabled
}

// TitleIcon resolves the prefix for the window title. The title bar is
// drawn by the terminal, not the cell grid, so the emoji is kept unless
// plain is requested.
func TitleIcon(configured string, plain bool) string {
	if plain {
		return Ice.Fallback
	}
	return configured
}
