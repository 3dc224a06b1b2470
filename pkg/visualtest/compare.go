// Package visualtest compares rendered previews pixel by pixel.
package visualtest

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var ErrSizeMismatch = errors.New("image dimensions differ")

// CompareResult contains the results of an image comparison
type CompareResult struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // largest channel difference, 0-255
	Diff            *image.NRGBA
}

// CompareOptions configures the image comparison
type CompareOptions struct {
	// Tolerance is the largest per-channel difference (0-255) still
	// counted as equal.
	Tolerance int

	// FuzzyRadius lets a pixel match any expected pixel within this many
	// pixels, absorbing resampling shifts at content edges.
	FuzzyRadius int

	// MaxDifferentPercent, when positive, accepts up to this share of
	// differing pixels.
	MaxDifferentPercent float64

	// Diff requests a diff image: differing pixels in red, the rest in
	// grayscale.
	Diff bool
}

func DefaultOptions() CompareOptions {
	return CompareOptions{Tolerance: 2}
}

// Compare compares two images of equal bounds.
func Compare(actual, expected image.Image, opts CompareOptions) (*CompareResult, error) {
	ab, eb := actual.Bounds(), expected.Bounds()
	if ab.Size() != eb.Size() {
		return &CompareResult{}, fmt.Errorf("%w: actual=%v, expected=%v", ErrSizeMismatch, ab.Size(), eb.Size())
	}
	a := imaging.Clone(actual)
	e := imaging.Clone(expected)
	bounds := a.Bounds()

	result := &CompareResult{
		Match:       true,
		TotalPixels: bounds.Dx() * bounds.Dy(),
	}
	if opts.Diff {
		result.Diff = imaging.Grayscale(a)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			d := channelDiff(a.NRGBAAt(x, y), e.NRGBAAt(x, y))
			result.MaxDifference = max(result.MaxDifference, d)
			if d <= opts.Tolerance {
				continue
			}
			if opts.FuzzyRadius > 0 && fuzzyMatch(a, e, x, y, opts.FuzzyRadius, opts.Tolerance) {
				continue
			}
			result.Match = false
			result.DifferentPixels++
			if result.Diff != nil {
				result.Diff.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
			}
		}
	}

	if !result.Match && opts.MaxDifferentPercent > 0 {
		pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
		if pct <= opts.MaxDifferentPercent {
			result.Match = true
		}
	}
	return result, nil
}

// CompareFiles loads two image files and compares them. When diffPath is
// set and the images differ, the diff image is written there.
func CompareFiles(actualPath, expectedPath, diffPath string, opts CompareOptions) (*CompareResult, error) {
	actual, err := imaging.Open(actualPath)
	if err != nil {
		return nil, fmt.Errorf("opening actual image: %w", err)
	}
	expected, err := imaging.Open(expectedPath)
	if err != nil {
		return nil, fmt.Errorf("opening expected image: %w", err)
	}
	opts.Diff = opts.Diff || diffPath != ""
	result, err := Compare(actual, expected, opts)
	if err != nil {
		return result, err
	}
	if diffPath != "" && !result.Match {
		if err := imaging.Save(result.Diff, diffPath); err != nil {
			return result, fmt.Errorf("saving diff image: %w", err)
		}
	}
	return result, nil
}

// fuzzyMatch reports whether the actual pixel at (x, y) matches any
// expected pixel within radius.
func fuzzyMatch(actual, expected *image.NRGBA, x, y, radius, tolerance int) bool {
	bounds := expected.Bounds()
	px := actual.NRGBAAt(x, y)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			p := image.Pt(x+dx, y+dy)
			if !p.In(bounds) {
				continue
			}
			if channelDiff(px, expected.NRGBAAt(p.X, p.Y)) <= tolerance {
				return true
			}
		}
	}
	return false
}

func channelDiff(a, b color.NRGBA) int {
	return max(
		absInt(int(a.R)-int(b.R)),
		absInt(int(a.G)-int(b.G)),
		absInt(int(a.B)-int(b.B)),
		absInt(int(a.A)-int(b.A)),
	)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
