// pkg/render/color.go
package render

import "image/color"

// SceneColors holds the colours of the static backdrop.
type SceneColors struct {
	Background color.RGBA
	Wall       color.RGBA
	HUDText    color.RGBA
	LabelText  color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FadeColor scales every channel, alpha included, by k in [0, 1].
// The result stays premultiplied.
func FadeColor(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
