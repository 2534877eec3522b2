package art

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// ToANSI converts an image to 24-bit ANSI half-block art, columns characters
// wide. Each character cell covers a 2x2 pixel block: the top pair becomes
// the foreground of an upper-half-block glyph, the bottom pair the
// background. Row count follows from the image's aspect ratio, corrected for
// terminal cells being roughly twice as tall as they are wide.
func ToANSI(img image.Image, columns int) string {
	if columns < 2 {
		columns = 2
	}

	bounds := img.Bounds()
	pxWidth := columns * 2
	pxHeight := 2
	if bounds.Dx() > 0 {
		pxHeight = pxWidth * bounds.Dy() / bounds.Dx() / 2
	}
	if pxHeight%2 != 0 {
		pxHeight++
	}
	if pxHeight < 2 {
		pxHeight = 2
	}

	resized := resize.Resize(uint(pxWidth), uint(pxHeight), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < pxHeight; y += 2 {
		for x := 0; x < pxWidth; x += 2 {
			c1 := colorAt(resized, x, y)
			c2 := colorAt(resized, x+1, y)
			c3 := colorAt(resized, x, y+1)
			c4 := colorAt(resized, x+1, y+1)

			col1, _ := colorful.MakeColor(c1)
			col2, _ := colorful.MakeColor(c2)
			col3, _ := colorful.MakeColor(c3)
			col4, _ := colorful.MakeColor(c4)

			fg := toRGBA(averageColor(col1, col2))
			bg := toRGBA(averageColor(col3, col4))

			buffer.WriteString(ansiCell('▀', fg, bg))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// colorAt returns the color at a specific coordinate, black for
// out-of-bounds.
func colorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

// averageColor calculates the average of multiple colors.
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

// toRGBA converts a colorful.Color to a standard color.Color.
func toRGBA(c colorful.Color) color.Color {
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: 255,
	}
}

// ansiCell formats a character with 24-bit ANSI foreground and background
// color codes.
func ansiCell(char rune, fg, bg color.Color) string {
	r1, g1, b1, _ := fg.RGBA()
	r2, g2, b2, _ := bg.RGBA()

	// RGBA() returns values in range 0-65535
	r1, g1, b1 = r1>>8, g1>>8, b1>>8
	r2, g2, b2 = r2>>8, g2>>8, b2>>8

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

// StripANSI removes ANSI escape sequences from a string.
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// VisibleWidth returns the number of visible cells in a line of ANSI art.
func VisibleWidth(s string) int {
	return len([]rune(StripANSI(s)))
}
