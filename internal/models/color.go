// ABOUTME: Closed set of note color tokens mapped to light/dark hex pairs.
// ABOUTME: Unknown tokens fall back to neutral at resolution time.

package models

type Color string

const (
	ColorNeutral Color = "neutral"
	ColorRed     Color = "red"
	ColorBlue    Color = "blue"
	ColorGreen   Color = "green"
	ColorYellow  Color = "yellow"
)

// ColorPair is the light/dark display pairing for a color token.
type ColorPair struct {
	Light string
	Dark  string
}

var colorPairs = map[Color]ColorPair{
	ColorNeutral: {Light: "#f0f0f0", Dark: "#1c1c1c"},
	ColorRed:     {Light: "#ffcccc", Dark: "#4a1a1a"},
	ColorBlue:    {Light: "#cce5ff", Dark: "#1a2e4a"},
	ColorGreen:   {Light: "#ccffcc", Dark: "#1a4a1a"},
	ColorYellow:  {Light: "#fff3cc", Dark: "#4a3e1a"},
}

func (c Color) Valid() bool {
	_, ok := colorPairs[c]
	return ok
}

// Pair resolves the display pairing, falling back to neutral.
func (c Color) Pair() ColorPair {
	if p, ok := colorPairs[c]; ok {
		return p
	}
	return colorPairs[ColorNeutral]
}

// Colors lists the valid tokens in display order.
func Colors() []Color {
	return []Color{ColorNeutral, ColorRed, ColorBlue, ColorGreen, ColorYellow}
}
