package board

import "image/color"

type BoardStyle struct {
	Light color.NRGBA
	Dark  color.NRGBA
}

type OverlayStyle struct {
	Selected  color.NRGBA
	PrevMove  color.NRGBA
	Drag      color.NRGBA
	Hover     color.NRGBA
	Highlight color.NRGBA
	Arrow     color.NRGBA
}

// Style holds every colour the board paints with.
type Style struct {
	Name    string
	Board   BoardStyle
	Overlay OverlayStyle
}

var defaultOverlay = OverlayStyle{
	Selected:  color.NRGBA{255, 255, 51, 128},
	PrevMove:  color.NRGBA{255, 255, 51, 128},
	Drag:      color.NRGBA{0, 0, 0, 36},
	Hover:     color.NRGBA{255, 255, 255, 166},
	Highlight: color.NRGBA{235, 97, 80, 204},
	Arrow:     color.NRGBA{255, 170, 0, 163},
}

var GreenStyle = Style{
	Name:    "green",
	Board:   BoardStyle{Light: color.NRGBA{235, 236, 208, 255}, Dark: color.NRGBA{115, 149, 82, 255}},
	Overlay: defaultOverlay,
}

var BrownStyle = Style{
	Name:    "brown",
	Board:   BoardStyle{Light: color.NRGBA{240, 217, 181, 255}, Dark: color.NRGBA{181, 136, 99, 255}},
	Overlay: defaultOverlay,
}

var BlueStyle = Style{
	Name:  "blue",
	Board: BoardStyle{Light: color.NRGBA{222, 227, 230, 255}, Dark: color.NRGBA{140, 162, 173, 255}},
	Overlay: OverlayStyle{
		Selected:  color.NRGBA{20, 85, 30, 128},
		PrevMove:  color.NRGBA{155, 199, 0, 105},
		Drag:      defaultOverlay.Drag,
		Hover:     defaultOverlay.Hover,
		Highlight: defaultOverlay.Highlight,
		Arrow:     color.NRGBA{21, 120, 27, 163},
	},
}

func (s Style) String() string { return s.Name }

// StyleFromString returns the named style and false for unknown names, in
// which case the green style is returned.
func StyleFromString(name string) (Style, bool) {
	switch name {
	case "green", "":
		return GreenStyle, true
	case "brown":
		return BrownStyle, true
	case "blue":
		return BlueStyle, true
	default:
	}
	return GreenStyle, false
}

// StyleNames lists the built-in styles.
func StyleNames() []string {
	return []string{GreenStyle.Name, BrownStyle.Name, BlueStyle.Name}
}
