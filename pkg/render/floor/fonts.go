package floor

import (
	"math"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// minFontSize is the smallest label size; labels stay legible even at
// small scales.
const minFontSize = 10

// faceCandidates are tried in order when locating a scalable label font.
var faceCandidates = []string{
	"arial.ttf",
	"Arial.ttf",
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
}

// FontSize returns the label font size in points for a given scale
// (pixels per foot).
func FontSize(scale float64) float64 {
	return math.Max(minFontSize, math.Floor(scale*0.7))
}

// LoadFace loads a scalable label face sized proportionally to scale.
// It searches system font directories for a known sans-serif face and
// falls back to the built-in fixed-size bitmap face when none can be
// loaded. Font acquisition is never fatal to rendering.
func LoadFace(scale float64) font.Face {
	size := FontSize(scale)
	for _, name := range faceCandidates {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		ft, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return truetype.NewFace(ft, &truetype.Options{Size: size})
	}
	return basicfont.Face7x13
}
