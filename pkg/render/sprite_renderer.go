package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"krusty/internal/component"
	"krusty/internal/config"
	"krusty/internal/entity"
)

// SpriteRenderer draws the world, sprites and text entities. World space has
// its origin at the screen centre with +Y up; screen space has +Y down.
type SpriteRenderer struct {
	atlas        *Atlas
	hudFace      font.Face
	labelFace    font.Face
	colors       SceneColors
	screenWidth  int
	screenHeight int
	wallW, wallH float32
}

func NewSpriteRenderer(atlas *Atlas, screenWidth, screenHeight int) (*SpriteRenderer, error) {
	hudFace, err := LoadFace(config.HUDFontSize)
	if err != nil {
		return nil, fmt.Errorf("hud font: %w", err)
	}
	labelFace, err := LoadFace(config.LabelFontSize)
	if err != nil {
		return nil, fmt.Errorf("label font: %w", err)
	}
	return &SpriteRenderer{
		atlas:     atlas,
		hudFace:   hudFace,
		labelFace: labelFace,
		colors: SceneColors{
			Background: config.BackgroundColor,
			Wall:       config.WallColor,
			HUDText:    config.HUDTextColor,
			LabelText:  config.LabelTextColor,
		},
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		wallW:        config.WallWidth,
		wallH:        config.WallHeight,
	}, nil
}

// HUDFace is the face used for screen-anchored text.
func (r *SpriteRenderer) HUDFace() font.Face { return r.hudFace }

// ToScreen converts world coordinates to screen pixels.
func (r *SpriteRenderer) ToScreen(x, y float64) (float64, float64) {
	return x + float64(r.screenWidth)/2, float64(r.screenHeight)/2 - y
}

func (r *SpriteRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	r.drawBackdrop(screen)

	for _, id := range entity.SortedIDs(ecs.Sprites) {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		r.drawSprite(screen, ecs.Sprites[id], pos)
	}

	for _, id := range entity.SortedIDs(ecs.Texts) {
		txt := ecs.Texts[id]
		if txt.Value == "" {
			continue
		}
		if anchor, ok := ecs.ScreenAnchors[id]; ok {
			text.Draw(screen, txt.Value, r.hudFace, int(anchor.X), int(anchor.Y), r.colors.HUDText)
			continue
		}
		att, ok := ecs.Attachments[id]
		if !ok {
			continue
		}
		parent, ok := ecs.Positions[att.Parent]
		if !ok {
			continue
		}
		sx, sy := r.ToScreen(parent.X+att.OffsetX, parent.Y+att.OffsetY)
		r.drawCentred(screen, txt.Value, r.labelFace, sx, sy, r.colors.LabelText)
	}
}

func (r *SpriteRenderer) drawBackdrop(screen *ebiten.Image) {
	screen.Fill(r.colors.Background)
	w, h := float32(r.screenWidth), float32(r.screenHeight)
	vector.DrawFilledRect(screen, 0, 0, r.wallW, h, r.colors.Wall, false)
	vector.DrawFilledRect(screen, w-r.wallW, 0, r.wallW, h, r.colors.Wall, false)
	vector.DrawFilledRect(screen, 0, h-r.wallH/2, w, r.wallH/2, r.colors.Wall, false)
}

func (r *SpriteRenderer) drawSprite(screen *ebiten.Image, sprite *component.Sprite, pos *component.Position) {
	img := r.atlas.Frame(sprite.Image, sprite.Frame)
	if img == nil {
		return
	}
	scale := sprite.Scale
	if scale == 0 {
		scale = 1
	}
	b := img.Bounds()
	sx, sy := r.ToScreen(pos.X, pos.Y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(sx, sy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (r *SpriteRenderer) drawCentred(screen *ebiten.Image, s string, face font.Face, x, y float64, c color.Color) {
	bounds := text.BoundString(face, s)
	w, h := bounds.Dx(), bounds.Dy()
	text.Draw(screen, s, face, int(x)-w/2, int(y)+h/2, c)
}
