package game

import "image/color"

// Theme is the palette and table markings used by Draw.
type Theme struct {
	Name       string
	Background color.RGBA
	Line       color.RGBA // net and table border
	Paddle     color.RGBA
	Ball       color.RGBA
	Text       color.RGBA
	Hint       color.RGBA
	Accent     color.RGBA // winner banner
	Overlay    color.RGBA // drawn over the table on the result screen

	Border    bool // white edge lines around the table
	DashedNet bool
}

var themes = map[string]Theme{
	"table": {
		Name:       "table",
		Background: color.RGBA{R: 27, G: 94, B: 32, A: 255},
		Line:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Paddle:     color.RGBA{R: 220, G: 20, B: 60, A: 255},
		Ball:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Text:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Hint:       color.RGBA{R: 200, G: 200, B: 200, A: 255},
		Accent:     color.RGBA{R: 255, G: 100, B: 150, A: 255},
		Overlay:    color.RGBA{R: 21, G: 74, B: 25, A: 200}, // felt green at 200 alpha, premultiplied
		Border:     true,
		DashedNet:  true,
	},
	"mono": {
		Name:       "mono",
		Background: color.RGBA{A: 255},
		Line:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Paddle:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Ball:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Text:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Hint:       color.RGBA{R: 160, G: 160, B: 160, A: 255},
		Accent:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Overlay:    color.RGBA{A: 180},
	},
}

// ThemeByName returns the named theme, or the table theme.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["table"]
}
