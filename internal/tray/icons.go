package tray

import (
	"embed"
	"fmt"

	"vmstrip/internal/settings"
)

//go:embed assets/*.png
var assets embed.FS

// genericIcon is the built-in fallback when a themed asset cannot be loaded.
var genericIcon = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x02, 0x00, 0x00, 0x00, 0x90, 0x77, 0x53, 0xde, 0x00, 0x00, 0x00,
	0x0c, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x68, 0x68, 0x68, 0x00,
	0x00, 0x03, 0x04, 0x01, 0x81, 0x4b, 0xd3, 0xd2, 0x10, 0x00, 0x00, 0x00,
	0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func iconName(theme settings.Theme, muted bool) string {
	name := "default"
	if theme == settings.ThemeAlternate {
		name = "alternate"
	}
	if muted {
		name += "_muted"
	}
	return fmt.Sprintf("assets/%s.png", name)
}

// iconBytes returns the themed icon, falling back to the generic rendering
// when the asset is missing.
func iconBytes(theme settings.Theme, muted bool) []byte {
	data, err := assets.ReadFile(iconName(theme, muted))
	if err != nil {
		return genericIcon
	}
	return data
}
