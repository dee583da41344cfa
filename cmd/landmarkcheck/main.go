// Command landmarkcheck validates a landmark file and prints where each
// landmark renders for a given viewport.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"manhattan-map/internal/app"
	"manhattan-map/internal/assets"
	"manhattan-map/internal/landmark"
	"manhattan-map/internal/pan"
	"manhattan-map/internal/scale"
	"manhattan-map/pkg/geometry"

	"github.com/rs/zerolog"
)

func main() {
	landmarksPath := flag.String("landmarks", "", "Landmark file (YAML or JSON); empty uses the built-in set")
	imagePath := flag.String("image", "", "Map image, for its natural size; empty assumes the design size")
	viewport := flag.String("viewport", "375x800", "Viewport size as WIDTHxHEIGHT")
	breakpoint := flag.Float64("breakpoint", app.MobileBreakpoint, "Widest mobile viewport")
	flag.Parse()

	vp, err := parseViewport(*viewport)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid viewport: %v\n", err)
		os.Exit(2)
	}

	landmarks, err := landmark.LoadOrDefault(*landmarksPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load landmarks: %v\n", err)
		os.Exit(1)
	}

	natural := geometry.NewSize(landmark.DesignWidth, landmark.DesignHeight)
	if *imagePath != "" {
		img, err := assets.Load(*imagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
			os.Exit(1)
		}
		b := img.Bounds()
		natural = geometry.NewSize(float64(b.Dx()), float64(b.Dy()))
	}

	problems := report(os.Stdout, landmarks, natural, vp, app.Breakpoint{MaxWidth: *breakpoint})
	if problems > 0 {
		fmt.Printf("\n%d problem(s) found\n", problems)
		os.Exit(1)
	}
}

func parseViewport(s string) (geometry.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return geometry.Size{}, fmt.Errorf("%q: want WIDTHxHEIGHT", s)
	}
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return geometry.Size{}, fmt.Errorf("width: %w", err)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return geometry.Size{}, fmt.Errorf("height: %w", err)
	}
	size := geometry.NewSize(width, height)
	if !size.Measured() {
		return geometry.Size{}, fmt.Errorf("%q: sides must be positive", s)
	}
	return size, nil
}

// report prints the layout of every landmark for the viewport and returns
// the number of problems found.
func report(w io.Writer, landmarks []landmark.Landmark, natural, viewport geometry.Size, device pan.Device) int {
	mobile := device.IsMobile(viewport.Width)
	rendered := scale.FitContain(natural, viewport)
	mode := "desktop"
	if mobile {
		rendered = scale.FitHeight(natural, viewport.Height)
		mode = "mobile"
	}

	resolver := scale.NewResolver(zerolog.Nop())
	s := resolver.Resolve(rendered)
	bounds := pan.ComputeBounds(viewport, rendered)

	fmt.Fprintf(w, "Viewport: %.0fx%.0f (%s)\n", viewport.Width, viewport.Height, mode)
	fmt.Fprintf(w, "Rendered map: %.2fx%.2f, scale %.4f\n", rendered.Width, rendered.Height, s)
	fmt.Fprintf(w, "Pan bounds: x[%.2f, %.2f] y[%.2f, %.2f]\n", bounds.MinX, bounds.MaxX, bounds.MinY, bounds.MaxY)
	fmt.Fprintf(w, "\nLandmarks (%d):\n", len(landmarks))

	problems := 0
	design := geometry.Rect{Width: landmark.DesignWidth, Height: landmark.DesignHeight}
	for _, l := range landmarks {
		box := resolver.ProjectLandmark(l)
		fmt.Fprintf(w, "  %-16s %-9s at (%.1f, %.1f) size %.1fx%.1f\n",
			l.ID, l.NavTarget, box.X, box.Y, box.Width, box.Height)

		b := l.Box()
		switch {
		case l.ID == "":
			fmt.Fprintf(w, "    problem: missing id\n")
			problems++
		case !(b.Width > 0 && b.Height > 0):
			fmt.Fprintf(w, "    problem: empty box\n")
			problems++
		case !design.Contains(b.TopLeft()) || b.X+b.Width > design.Width || b.Y+b.Height > design.Height:
			fmt.Fprintf(w, "    problem: outside the %dx%d design space\n", landmark.DesignWidth, landmark.DesignHeight)
			problems++
		}
	}

	for _, id := range landmark.NewIndex(landmarks).Duplicates() {
		fmt.Fprintf(w, "  problem: duplicate %s\n", id)
		problems++
	}
	return problems
}
