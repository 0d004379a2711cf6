package helper

import (
	"errors"
	"image"
	"image/color"
	"sync"

	"github.com/allape/openmouse/mouse"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce sync.Once
	font     *truetype.Font
	fontErr  error
)

var (
	BackgroundColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	PathColor       = color.RGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
	TextColor       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ButtonColors    = map[mouse.Button]color.Color{
		mouse.Left:   color.RGBA{R: 0x40, G: 0xc0, B: 0x40, A: 0xff},
		mouse.Right:  color.RGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0xff},
		mouse.Middle: color.RGBA{R: 0x40, G: 0x80, B: 0xe0, A: 0xff},
	}
)

// PressRadius of the dot drawn where a button went down
const PressRadius = 6

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		font, fontErr = truetype.Parse(goregular.TTF)
	})
	return font, fontErr
}

// RenderTrace draws the cursor path of a recorded event sequence on a
// screen sized canvas, with a dot at every press and the total event count
// at the bottom right corner.
func RenderTrace(events []mouse.Event, screen mouse.Size) (image.Image, error) {
	if !screen.Valid() {
		return nil, mouse.ErrInvalidScreen
	}

	dc := gg.NewContext(screen.Width, screen.Height)
	dc.SetColor(BackgroundColor)
	dc.DrawRectangle(0, 0, float64(screen.Width), float64(screen.Height))
	dc.Fill()

	type press struct {
		at mouse.Point
		c  color.Color
	}
	var presses []press

	var cursor mouse.Point
	dc.SetColor(PathColor)
	dc.SetLineWidth(2)
	for _, e := range events {
		switch e.Kind {
		case mouse.KindMove:
			dc.DrawLine(float64(cursor.X), float64(cursor.Y), float64(e.X), float64(e.Y))
			dc.Stroke()
			cursor = e.Point
		case mouse.KindPress:
			c, ok := ButtonColors[e.Button]
			if !ok {
				return nil, errors.New("no color for button " + string(e.Button))
			}
			presses = append(presses, press{at: cursor, c: c})
		}
	}

	// dots go over the path
	for _, p := range presses {
		dc.SetColor(p.c)
		dc.DrawCircle(float64(p.at.X), float64(p.at.Y), PressRadius)
		dc.Fill()
	}

	f, err := loadFont()
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 24}))
	dc.SetColor(TextColor)
	dc.DrawStringAnchored(mouse.Summary(events), float64(screen.Width-20), float64(screen.Height-20), 1, 0)

	return dc.Image(), nil
}
