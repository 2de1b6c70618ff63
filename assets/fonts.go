package assets

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

var (
	boldOnce sync.Once
	boldFont *opentype.Font

	boldSourceOnce sync.Once
	boldSource     *text.GoTextFaceSource
)

func embeddedBold() *opentype.Font {
	boldOnce.Do(func() {
		f, err := opentype.Parse(gobold.TTF)
		if err != nil {
			log.Printf("assets: parse embedded bold font: %v", err)
			return
		}
		boldFont = f
	})
	return boldFont
}

// DefaultFace returns the embedded Go Bold face at size points. It falls
// back to the fixed 7x13 bitmap face if the embedded font cannot be used.
func DefaultFace(size float64) font.Face {
	f := embeddedBold()
	if f == nil || size <= 0 {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("assets: default face %.0fpt: %v", size, err)
		return basicfont.Face7x13
	}
	return face
}

// ParseFace builds a face from TTF/OTF bytes.
func ParseFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

// UIFace is the ebiten text face used by the 2D host and page views.
func UIFace(size float64) text.Face {
	boldSourceOnce.Do(func() {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			log.Printf("assets: load ui font: %v", err)
			return
		}
		boldSource = s
	})
	if boldSource == nil {
		return text.NewGoXFace(basicfont.Face7x13)
	}
	return &text.GoTextFace{Source: boldSource, Size: size}
}
