// Package banner renders a phrase as block art using half-block characters.
package banner

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

// Width returns the number of terminal columns Render uses for text.
func Width(text string) int {
	return font.MeasureString(face, text).Ceil()
}

// Render draws text with a 7x13 bitmap font and converts it to half-block
// characters (▀▄█), two pixel rows per terminal row. It returns "" when text
// is empty or wider than maxCols.
func Render(text string, maxCols int) string {
	if text == "" {
		return ""
	}
	width := Width(text)
	if width > maxCols {
		return ""
	}

	height := face.Height
	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	return imageToHalfBlocks(img, width, (height+1)/2)
}

// imageToHalfBlocks converts a grayscale image to half-block art, trimming
// rows that are entirely blank.
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	var lines []string

	for row := 0; row < rows; row++ {
		var line strings.Builder
		for col := 0; col < cols; col++ {
			topOn := pixelOn(img, col, row*2)
			bottomOn := pixelOn(img, col, row*2+1)

			switch {
			case topOn && bottomOn:
				line.WriteRune('█')
			case topOn:
				line.WriteRune('▀')
			case bottomOn:
				line.WriteRune('▄')
			default:
				line.WriteRune(' ')
			}
		}
		if strings.TrimSpace(line.String()) != "" {
			lines = append(lines, line.String())
		}
	}

	return strings.Join(lines, "\n")
}

func pixelOn(img *image.Gray, x, y int) bool {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return false
	}
	return img.GrayAt(x, y).Y > 40
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]string)
)

// Cached returns a cached rendering of text or renders a new one.
func Cached(text string, maxCols int) string {
	if Width(text) > maxCols {
		return ""
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if rendered, ok := cache[text]; ok {
		return rendered
	}
	rendered := Render(text, maxCols)
	cache[text] = rendered
	return rendered
}
