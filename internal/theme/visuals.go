package theme

// Visuals is the full set of theme-dependent presentation values. It is
// derived from a single Mode so the page never mixes light and dark parts.
type Visuals struct {
	Mode       Mode
	HTMLClass  string
	Background string
	Celestial  string // "sun" or "moon"
	ToggleIcon string // icon shown on the toggle button
	ToggleText string
	Rotation   int // toggle icon rotation in degrees
}

var visuals = map[Mode]Visuals{
	Light: {
		Mode:       Light,
		HTMLClass:  "light",
		Background: "linear-gradient(to bottom, #dbeafe, #fde68a)",
		Celestial:  "sun",
		ToggleIcon: "moon",
		ToggleText: "Switch to dark mode",
		Rotation:   0,
	},
	Dark: {
		Mode:       Dark,
		HTMLClass:  "dark",
		Background: "linear-gradient(to bottom, #0f0326, #2e1065, #1e1b4b)",
		Celestial:  "moon",
		ToggleIcon: "sun",
		ToggleText: "Switch to light mode",
		Rotation:   180,
	},
}

func VisualsFor(m Mode) Visuals {
	if v, ok := visuals[m]; ok {
		return v
	}
	return visuals[Dark]
}
