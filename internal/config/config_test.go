package config

import "testing"

func TestResolveThemeFallsBackToDefault(t *testing.T) {
	th := ResolveTheme("not-a-real-theme")
	if th.HeadingStyle[0] == "" {
		t.Fatal("expected default theme's heading style as fallback")
	}
}

func TestResolveThemeMonochromeHasNoColor(t *testing.T) {
	th := ResolveTheme("monochrome")
	if th.ListBulletColor != "" {
		t.Fatal("expected monochrome theme to carry no color codes")
	}
}

func TestGetDefaultsHasWidth(t *testing.T) {
	d := GetDefaults()
	if d["width"] != 80 {
		t.Fatalf("expected default width 80, got %v", d["width"])
	}
}
