package tray

import (
	"bytes"
	"testing"

	"vmstrip/internal/settings"
)

var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47}

func TestIconNameSelection(t *testing.T) {
	cases := []struct {
		theme settings.Theme
		muted bool
		want  string
	}{
		{settings.ThemeDefault, false, "assets/default.png"},
		{settings.ThemeDefault, true, "assets/default_muted.png"},
		{settings.ThemeAlternate, false, "assets/alternate.png"},
		{settings.ThemeAlternate, true, "assets/alternate_muted.png"},
	}
	for _, tc := range cases {
		if got := iconName(tc.theme, tc.muted); got != tc.want {
			t.Fatalf("iconName(%q, %v): got %q, want %q", tc.theme, tc.muted, got, tc.want)
		}
	}
}

func TestIconBytesLoadsEveryVariant(t *testing.T) {
	for _, theme := range []settings.Theme{settings.ThemeDefault, settings.ThemeAlternate} {
		for _, muted := range []bool{false, true} {
			data := iconBytes(theme, muted)
			if !bytes.HasPrefix(data, pngMagic) {
				t.Fatalf("icon for %q muted=%v is not a PNG", theme, muted)
			}
		}
	}
}

func TestIconBytesFallsBackToGeneric(t *testing.T) {
	data := iconBytes(settings.Theme("missing"), false)
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatal("generic fallback is not a PNG")
	}
	if !bytes.Equal(data, iconBytes(settings.ThemeDefault, false)) {
		// An unknown theme string maps onto the default asset name, which
		// still loads; only a genuinely missing asset yields the fallback.
		t.Fatal("unknown theme should resolve to the default asset")
	}
}
