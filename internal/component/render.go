// component/render.go
package component

import (
	"krusty/internal/assets"
	"krusty/internal/types"
)

// Sprite is an image drawn centred on the entity position.
type Sprite struct {
	Image assets.ImageID
	Frame int // sheet cell for animated images
	Scale float64
}

// Text is a mutable string drawn by the renderer.
type Text struct {
	Value string
	Size  float64
}

// ScreenAnchor places a text entity in screen space (top-left origin) instead of the world.
type ScreenAnchor struct {
	X, Y float64
}

// Attachment makes an entity a child of Parent, drawn at the parent position plus offset.
// Children are removed together with their parent.
type Attachment struct {
	Parent           types.EntityID
	OffsetX, OffsetY float64
}
