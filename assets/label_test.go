package assets

import (
	"image"
	"image/color"
	"testing"
)

func TestRenderLabel(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		size  int
		inked bool
	}{
		{"default_size", "Music", 0, true},
		{"large", "Portfolio", 512, true},
		{"empty", "", 256, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts := DefaultLabelOptions()
			opts.Size = c.size
			img := RenderLabel(c.text, DefaultFace(48), opts)

			want := c.size
			if want == 0 {
				want = 256
			}
			if b := img.Bounds(); b.Dx() != want || b.Dy() != want {
				t.Fatalf("expected %dx%d, got %v", want, want, b)
			}
			if got := img.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
				t.Fatalf("expected black background, got %v", got)
			}

			inked := false
			for y := want / 4; y < want*3/4 && !inked; y++ {
				for x := 0; x < want; x++ {
					if img.RGBAAt(x, y).R > 128 {
						inked = true
						break
					}
				}
			}
			if inked != c.inked {
				t.Fatalf("expected inked=%v in the middle band", c.inked)
			}
		})
	}
}

func TestDefaultFaceFallback(t *testing.T) {
	if DefaultFace(0) == nil || DefaultFace(48) == nil {
		t.Fatal("expected a face")
	}
	if DefaultFace(48).Metrics().Height <= DefaultFace(12).Metrics().Height {
		t.Fatal("larger sizes should produce taller faces")
	}
}

// inkedColumns returns the first and last columns of the middle band that
// carry text brighter than threshold.
func inkedColumns(img *image.RGBA, threshold uint8) (int, int) {
	size := img.Bounds().Dx()
	first, last := -1, -1
	for x := 0; x < size; x++ {
		for y := size / 4; y < size*3/4; y++ {
			c := img.RGBAAt(x, y)
			if c.R > threshold || c.G > threshold || c.B > threshold {
				if first < 0 {
					first = x
				}
				last = x
				break
			}
		}
	}
	return first, last
}

func brightest(img *image.RGBA, x int) color.RGBA {
	size := img.Bounds().Dy()
	var best color.RGBA
	for y := 0; y < size; y++ {
		c := img.RGBAAt(x, y)
		if int(c.R)+int(c.G)+int(c.B) > int(best.R)+int(best.G)+int(best.B) {
			best = c
		}
	}
	return best
}

func TestRenderLabelInk(t *testing.T) {
	pink := color.NRGBA{R: 0xff, G: 0x33, B: 0x66, A: 0xff}
	teal := color.NRGBA{R: 0x00, G: 0xff, B: 0xcc, A: 0xff}
	cases := []struct {
		name       string
		opts       LabelOptions
		wantWhite  bool
		leftRedder bool
	}{
		{"gradient", LabelOptions{Size: 512, Gradient: [2]color.Color{pink, teal}}, false, true},
		{"gradient_stroked", LabelOptions{Size: 512, Gradient: [2]color.Color{pink, teal}, Stroke: color.White, StrokeWidth: 2}, true, false},
		{"half_gradient_is_plain", LabelOptions{Size: 512, Foreground: pink, Gradient: [2]color.Color{nil, teal}}, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img := RenderLabel("Portfolio", DefaultFace(72), tc.opts)
			first, last := inkedColumns(img, 64)
			if first < 0 || last <= first {
				t.Fatalf("expected text, got columns %d..%d", first, last)
			}

			white := false
			for y := 0; y < 512 && !white; y++ {
				for x := first; x <= last; x++ {
					if c := img.RGBAAt(x, y); c.R > 230 && c.G > 230 && c.B > 230 {
						white = true
						break
					}
				}
			}
			if white != tc.wantWhite {
				t.Fatalf("expected white stroke pixels=%v", tc.wantWhite)
			}

			if tc.leftRedder {
				l, r := brightest(img, first+2), brightest(img, last-2)
				if l.R <= l.G || r.G <= r.R {
					t.Fatalf("expected pink on the left and teal on the right, got %v and %v", l, r)
				}
			}
		})
	}

	plain := RenderLabel("Portfolio", DefaultFace(72), LabelOptions{Size: 512, Foreground: pink})
	stroked := RenderLabel("Portfolio", DefaultFace(72), LabelOptions{Size: 512, Foreground: pink, Stroke: color.White, StrokeWidth: 2})
	pf, pl := inkedColumns(plain, 64)
	sf, sl := inkedColumns(stroked, 64)
	if sf >= pf || sl <= pl {
		t.Fatalf("stroke must widen the text, plain %d..%d stroked %d..%d", pf, pl, sf, sl)
	}
}

func TestDiagonalGradient(t *testing.T) {
	g := newDiagonalGradient(color.Black, color.White, 100)
	cases := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 0},
		{50, 50, 128},
		{100, 100, 255},
		{-20, 0, 0},
		{300, 300, 255},
	}
	for _, tc := range cases {
		if got := g.At(tc.x, tc.y).(color.NRGBA); got.R != tc.want || got.A != 255 {
			t.Fatalf("At(%d, %d): expected %d, got %v", tc.x, tc.y, tc.want, got)
		}
	}
}
