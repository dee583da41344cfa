// Package assets locates and decodes the map and landmark images.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxTextureSide bounds the longest side of an image handed to the renderer.
// Larger sources are downscaled once at load time.
const MaxTextureSide = 4096

// Resolve finds imgPath next to the executable, then in the working
// directory. Absolute paths and unresolvable names are returned unchanged.
func Resolve(imgPath string) string {
	if imgPath == "" || filepath.IsAbs(imgPath) {
		return imgPath
	}

	if exe, err := os.Executable(); err == nil && exe != "" {
		candidate := filepath.Join(filepath.Dir(exe), imgPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if cwd, err := os.Getwd(); err == nil && cwd != "" {
		candidate := filepath.Join(cwd, imgPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return imgPath
}

// Load decodes a PNG, JPEG or WebP image, downscaling it if either side
// exceeds MaxTextureSide.
func Load(imgPath string) (image.Image, error) {
	resolved := Resolve(imgPath)
	f, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", resolved, err)
	}
	return Fit(img, MaxTextureSide), nil
}

// Fit returns img scaled down so that neither side exceeds maxSide,
// preserving aspect ratio. Images already within bounds are returned as is.
func Fit(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return img
	}

	nw, nh := maxSide, maxSide
	if w >= h {
		nh = max(1, h*maxSide/w)
	} else {
		nw = max(1, w*maxSide/h)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Placeholder returns a blank image with the design-space aspect ratio, shown
// when the map image cannot be loaded.
func Placeholder(width, height int) image.Image {
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}
