package view

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"golang.org/x/image/draw"
)

var placeholderGrey = color.RGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}

// LoadAvatar reads the profile image at path and returns it centre-cropped,
// scaled to diameter and clipped to a circle. A missing or unreadable image
// yields a grey disc instead.
func LoadAvatar(path string, diameter int) image.Image {
	if path == "" {
		return placeholderAvatar(diameter)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("Avatar unavailable, using placeholder: %v", err)
		return placeholderAvatar(diameter)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		log.Printf("Avatar %s could not be decoded, using placeholder: %v", path, err)
		return placeholderAvatar(diameter)
	}

	return clipCircle(cropSquare(src, diameter), diameter)
}

func placeholderAvatar(diameter int) image.Image {
	return clipCircle(image.NewUniform(placeholderGrey), diameter)
}

// cropSquare scales src to cover a diameter x diameter square and crops the
// overflow evenly from both sides.
func cropSquare(src image.Image, diameter int) *image.RGBA {
	b := src.Bounds()
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	srcRect := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, diameter, diameter))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, srcRect, draw.Src, nil)
	return dst
}

// circleMask is an alpha mask that is opaque inside a circle.
type circleMask struct {
	centre float64
	radius float64
	size   int
}

func (m circleMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m circleMask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.size, m.size)
}

func (m circleMask) At(x, y int) color.Color {
	dx := float64(x) + 0.5 - m.centre
	dy := float64(y) + 0.5 - m.centre
	if dx*dx+dy*dy <= m.radius*m.radius {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

// clipCircle keeps the circle inscribed in the top-left n x n square of src.
func clipCircle(src image.Image, n int) *image.RGBA {
	mask := circleMask{centre: float64(n) / 2, radius: float64(n) / 2, size: n}
	dst := image.NewRGBA(image.Rect(0, 0, n, n))
	draw.DrawMask(dst, dst.Bounds(), src, src.Bounds().Min, mask, image.Point{}, draw.Over)
	return dst
}
