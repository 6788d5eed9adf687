package render

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// CaptionSize is the font size of image captions, in points at 72 DPI.
const CaptionSize = 13.0

var captionFace struct {
	once sync.Once
	face font.Face
	err  error
}

func loadCaptionFace() (font.Face, error) {
	captionFace.once.Do(func() {
		fnt, err := opentype.Parse(goregular.TTF)
		if err != nil {
			captionFace.err = err
			return
		}
		captionFace.face, captionFace.err = opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    CaptionSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return captionFace.face, captionFace.err
}

// caption writes text into the top left corner of img.
func caption(img draw.Image, text string, c color.Color) error {
	face, err := loadCaptionFace()
	if err != nil {
		return err
	}
	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(8, 6+ascent),
	}
	d.DrawString(text)
	return nil
}
