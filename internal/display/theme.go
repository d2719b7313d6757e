package display

import "go.uber.org/zap"

// Theme defines a color scheme for composed frames
type Theme struct {
	Name       string
	Background string
	Primary    string
	Secondary  string
	Dim        string
	Accent     string
	PaneBG     string
}

// Available themes
var (
	ThemeDark = Theme{
		Name:       "dark",
		Background: "#0A0A0A",
		Primary:    "#FFFFFF",
		Secondary:  "#B3B3B3",
		Dim:        "#6F6F6F",
		Accent:     "#5390D9",
		PaneBG:     "#1C1C1C",
	}

	ThemeLight = Theme{
		Name:       "light",
		Background: "#F2F2F2",
		Primary:    "#111111",
		Secondary:  "#444444",
		Dim:        "#8A8A8A",
		Accent:     "#2F6FBF",
		PaneBG:     "#DCDCDC",
	}
)

var themes = map[string]Theme{
	ThemeDark.Name:  ThemeDark,
	ThemeLight.Name: ThemeLight,
}

// ThemeByName returns the named theme, falling back to dark so a typo
// in the config never blanks the screen.
func ThemeByName(logger *zap.Logger, name string) Theme {
	if theme, ok := themes[name]; ok {
		return theme
	}
	logger.Warn("unknown theme, using dark", zap.String("theme", name))
	return ThemeDark
}
