package display

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

const (
	regularSize = 8
	smallSize   = 6.5
	fontDPI     = 72
)

// Font is a face plus the name it was loaded under.
type Font struct {
	Name string
	Face font.Face
}

// Width returns the advance width of s in pixels.
func (f Font) Width(s string) int {
	if f.Face == nil {
		return 0
	}
	return font.MeasureString(f.Face, s).Ceil()
}

// Ascent returns the pixel height above the baseline.
func (f Font) Ascent() int {
	if f.Face == nil {
		return 0
	}
	return f.Face.Metrics().Ascent.Ceil()
}

// Fonts holds the two sizes used by the screens.
type Fonts struct {
	Regular Font
	Small   Font
}

// FixedFonts returns basicfont-backed fonts. They need no parsing and are
// the last-resort fallback.
func FixedFonts() Fonts {
	f := Font{Name: "basic7x13", Face: basicfont.Face7x13}
	return Fonts{Regular: f, Small: f}
}

// LoadFonts parses the TrueType/OpenType file at path, or the embedded Go Mono
// face when path is empty. A missing or invalid file yields the embedded face
// together with an *AssetMissingError so the caller can log it.
func LoadFonts(path string) (Fonts, error) {
	if path == "" {
		return embeddedFonts()
	}

	data, err := os.ReadFile(path)
	if err == nil {
		var fonts Fonts
		if fonts, err = parseFonts(path, data); err == nil {
			return fonts, nil
		}
	}
	missing := &AssetMissingError{Asset: "font", Path: path, Err: err}
	fonts, embedErr := embeddedFonts()
	if embedErr != nil {
		return FixedFonts(), missing
	}
	return fonts, missing
}

func embeddedFonts() (Fonts, error) {
	fonts, err := parseFonts("gomono", gomono.TTF)
	if err != nil {
		return FixedFonts(), &AssetMissingError{Asset: "font", Path: "gomono", Err: err}
	}
	return fonts, nil
}

func parseFonts(name string, data []byte) (Fonts, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return Fonts{}, err
	}
	regular, err := opentype.NewFace(parsed, &opentype.FaceOptions{Size: regularSize, DPI: fontDPI, Hinting: font.HintingFull})
	if err != nil {
		return Fonts{}, err
	}
	small, err := opentype.NewFace(parsed, &opentype.FaceOptions{Size: smallSize, DPI: fontDPI, Hinting: font.HintingFull})
	if err != nil {
		return Fonts{}, err
	}
	return Fonts{
		Regular: Font{Name: name, Face: regular},
		Small:   Font{Name: name + "-small", Face: small},
	}, nil
}

// FitText drops trailing characters from s until it fits within maxWidth pixels.
func FitText(f Font, s string, maxWidth int) string {
	runes := []rune(s)
	for len(runes) > 0 && f.Width(string(runes)) > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
