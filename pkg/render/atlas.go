package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"krusty/internal/assets"
	"krusty/internal/config"
	"krusty/internal/utils"
)

// Atlas holds every sprite. Images are drawn procedurally, so the game ships
// without image files.
type Atlas struct {
	images map[assets.ImageID]*ebiten.Image
	sheets map[assets.ImageID][]*ebiten.Image
	white  *ebiten.Image
}

func NewAtlas() *Atlas {
	a := &Atlas{
		images: make(map[assets.ImageID]*ebiten.Image),
		sheets: make(map[assets.ImageID][]*ebiten.Image),
	}
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	a.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	a.images[assets.ImagePlayer] = a.ship(config.PlayerColor, true)
	a.images[assets.ImageEnemy] = a.ship(config.EnemyColor, false)
	a.images[assets.ImageFollower] = a.ship(config.FollowerColor, false)
	a.images[assets.ImagePlayerLaser] = bolt(config.PlayerLaserColor)
	a.images[assets.ImageEnemyLaser] = bolt(config.EnemyLaserColor)
	a.sheets[assets.ImageExplosion] = explosionSheet()
	return a
}

// Frame returns the image for a sprite. For sheets it returns the given cell,
// clamped to the last one. Unknown IDs yield nil.
func (a *Atlas) Frame(id assets.ImageID, frame int) *ebiten.Image {
	if sheet, ok := a.sheets[id]; ok && len(sheet) > 0 {
		frame = max(0, min(frame, len(sheet)-1))
		return sheet[frame]
	}
	return a.images[id]
}

// ship draws a triangular hull pointing up (player) or down (enemies).
func (a *Atlas) ship(c color.RGBA, up bool) *ebiten.Image {
	const size = float32(config.ShipSize)
	img := ebiten.NewImage(int(size), int(size))
	tip, base := size*0.1, size*0.9
	if !up {
		tip, base = base, tip
	}
	a.fillPolygon(img, [][2]float32{{size / 2, tip}, {size * 0.9, base}, {size * 0.1, base}}, c)
	a.fillPolygon(img, [][2]float32{{size / 2, tip + (base-tip)*0.35}, {size * 0.62, base}, {size * 0.38, base}}, DarkenColor(c))
	vector.DrawFilledCircle(img, size/2, (tip+base)/2, size*0.07, config.PlayerTrimColor, true)
	return img
}

func bolt(c color.RGBA) *ebiten.Image {
	size := float32(config.ProjectileSize)
	img := ebiten.NewImage(int(size)+1, int(size)+1)
	vector.DrawFilledRect(img, size*0.3, 0, size*0.4, size, c, true)
	return img
}

// explosionSheet draws a ring that grows and fades over ExplosionFrames cells.
func explosionSheet() []*ebiten.Image {
	const tile = config.ExplosionTileSize
	sheet := ebiten.NewImage(tile*config.ExplosionColumns, tile*config.ExplosionRows)
	frames := make([]*ebiten.Image, 0, config.ExplosionFrames)
	hot := color.RGBA{255, 230, 120, 255}
	cold := color.RGBA{200, 60, 20, 255}
	for i := 0; i < config.ExplosionFrames; i++ {
		col, row := i%config.ExplosionColumns, i/config.ExplosionColumns
		x0, y0 := col*tile, row*tile
		t := float64(i) / float64(config.ExplosionFrames-1)
		cx, cy := float32(x0+tile/2), float32(y0+tile/2)
		outer := float32(utils.Lerp(tile*0.1, tile*0.48, t))
		fade := 1 - t*0.85
		vector.DrawFilledCircle(sheet, cx, cy, outer, FadeColor(cold, fade), true)
		vector.DrawFilledCircle(sheet, cx, cy, outer*float32(utils.Lerp(0.7, 0.2, t)), FadeColor(hot, fade), true)
		frames = append(frames, sheet.SubImage(image.Rect(x0, y0, x0+tile, y0+tile)).(*ebiten.Image))
	}
	return frames
}

// fillPolygon fills a convex polygon using the white pixel as texture.
func (a *Atlas) fillPolygon(dst *ebiten.Image, pts [][2]float32, c color.RGBA) {
	var path vector.Path
	path.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, al := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, al
	}
	dst.DrawTriangles(vs, is, a.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
