// Package poster turns remote poster images into terminal art and runs the
// cancellable fetch tasks that rows wait on.
package poster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Decode reads any registered raster format (JPEG, PNG, GIF, WebP).
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image")
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode poster: %w", err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.New("invalid image size")
	}
	return img, nil
}

// CropToFill scales src so it covers a w x h box and crops the overflow
// around the centre.
func CropToFill(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, coverRect(src.Bounds(), w, h), draw.Src, nil)
	return dst
}

// coverRect returns the largest centred sub-rectangle of b with the aspect
// ratio w:h.
func coverRect(b image.Rectangle, w, h int) image.Rectangle {
	sw, sh := b.Dx(), b.Dy()
	if sw*h > sh*w {
		cw := sh * w / h
		if cw < 1 {
			cw = 1
		}
		x0 := b.Min.X + (sw-cw)/2
		return image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	}
	ch := sw * h / w
	if ch < 1 {
		ch = 1
	}
	y0 := b.Min.Y + (sh-ch)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
}

// Render draws img into cols x rows terminal cells. Each cell is an upper
// half block: the foreground carries the top pixel and the background the
// bottom one.
func Render(img image.Image, cols, rows int) string {
	return RenderFaded(img, cols, rows, 1, color.Black)
}

// RenderFaded is Render with every pixel blended toward bg. At opacity 0
// only bg is painted; at 1 the image is drawn as is.
func RenderFaded(img image.Image, cols, rows int, opacity float64, bg color.Color) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	px := CropToFill(img, cols, rows*2)
	base, _ := colorful.MakeColor(bg)

	lines := make([]string, rows)
	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.Reset()
		for col := 0; col < cols; col++ {
			top := px.RGBAAt(col, row*2)
			bottom := px.RGBAAt(col, row*2+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(blendHex(top, base, opacity))).
				Background(lipgloss.Color(blendHex(bottom, base, opacity))).
				Render("▀"))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

func blendHex(c color.RGBA, bg colorful.Color, t float64) string {
	if t >= 1 {
		return hex(c)
	}
	if t <= 0 {
		return bg.Clamped().Hex()
	}
	fc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return bg.BlendRgb(fc, t).Clamped().Hex()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
