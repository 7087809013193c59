package imageconv

import "strings"

// Preset is a named target size.
type Preset struct {
	Name   string
	Width  int
	Height int
}

// Presets lists the predefined target sizes.
var Presets = []Preset{
	{Name: "Squared", Width: 800, Height: 800},
	{Name: "Desktop Portrait", Width: 1920, Height: 1080},
	{Name: "Desktop Smaller Portrait", Width: 1280, Height: 720},
	{Name: "Mobile Portrait", Width: 810, Height: 1440},
}

// FindPreset looks a preset up by name, ignoring case, surrounding spaces,
// and treating '-' and '_' as spaces.
func FindPreset(name string) (Preset, bool) {
	key := normalizePresetName(name)
	for _, p := range Presets {
		if normalizePresetName(p.Name) == key {
			return p, true
		}
	}
	return Preset{}, false
}

// Apply sets the preset dimensions on cfg. Presets set both sides, so no
// aspect ratio coupling takes place.
func (p Preset) Apply(cfg Config) Config {
	cfg.Width = p.Width
	cfg.Height = p.Height
	return cfg
}

func normalizePresetName(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
