package scenes

import (
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
)

// qualitative is the categorical palette scenes are drawn from. It holds nine colours; beyond
// that, hues are spread evenly around the colour wheel and neighbouring scenes get harder to tell
// apart.
const qualitative = "Set1"

const qualitativeSize = 9

// Assignment maps each scene label to its own colour for one rendering.
type Assignment struct {
	labels []string
	colors map[string]color.Color
}

// AssignColors gives every distinct label a distinct colour. Labels keep the order they are
// given in (first appearance when taken from Labels), and that order decides the colour.
func AssignColors(labels []string) (*Assignment, error) {
	a := &Assignment{
		colors: map[string]color.Color{},
	}
	for _, label := range labels {
		if _, ok := a.colors[label]; !ok {
			a.colors[label] = nil
			a.labels = append(a.labels, label)
		}
	}
	colors, err := paletteColors(len(a.labels))
	if err != nil {
		return nil, err
	}
	for i, label := range a.labels {
		a.colors[label] = colors[i]
	}
	return a, nil
}

func paletteColors(n int) ([]color.Color, error) {
	if n == 0 {
		return nil, nil
	}
	if n <= qualitativeSize {
		p, err := brewer.GetPalette(brewer.TypeQualitative, qualitative, qualitativeSize)
		if err != nil {
			return nil, err
		}
		return p.Colors()[:n], nil
	}
	// end short of a full turn so the first and last hue differ
	return palette.Rainbow(n, 0, palette.Hue(1-1/float64(n)), 0.75, 0.85, 1).Colors(), nil
}

// Labels returns the assigned labels in assignment order.
func (a *Assignment) Labels() []string {
	return append([]string(nil), a.labels...)
}

func (a *Assignment) Color(label string) (color.Color, bool) {
	c, ok := a.colors[label]
	return c, ok
}

func (a *Assignment) Len() int {
	return len(a.labels)
}
