package chart

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/autocomplete-bench/internal/apperr"
	"github.com/DjordjeVuckovic/autocomplete-bench/internal/bench/results"
)

// SeriesStyle is the visual encoding of one variant line.
type SeriesStyle struct {
	Color  string `yaml:"color"`
	Dashed bool   `yaml:"dashed"`
	Glyph  string `yaml:"glyph"`
}

// Style is passed to every render call; there is no package-level styling state.
type Style struct {
	// HighlightVariant is drawn with Highlight, every other variant with Baseline.
	HighlightVariant string      `yaml:"highlight_variant"`
	Highlight        SeriesStyle `yaml:"highlight"`
	Baseline         SeriesStyle `yaml:"baseline"`

	LineWidth   float64 `yaml:"line_width"`   // points
	GlyphRadius float64 `yaml:"glyph_radius"` // points
	MarkEvery   int     `yaml:"mark_every"`

	DPI               int     `yaml:"dpi"`
	PanelWidth        float64 `yaml:"panel_width"`         // inches
	PanelHeight       float64 `yaml:"panel_height"`        // inches
	DetailPanelHeight float64 `yaml:"detail_panel_height"` // inches, per-dataset figures

	// Datasets are charted side by side in this order.
	Datasets []string `yaml:"datasets"`
}

func DefaultStyle() Style {
	return Style{
		HighlightVariant:  "reciente",
		Highlight:         SeriesStyle{Color: "red", Dashed: true, Glyph: "circle"},
		Baseline:          SeriesStyle{Color: "blue", Dashed: false, Glyph: "square"},
		LineWidth:         2,
		GlyphRadius:       2,
		MarkEvery:         10,
		DPI:               300,
		PanelWidth:        6,
		PanelHeight:       6,
		DetailPanelHeight: 5,
		Datasets:          append([]string(nil), results.ExpectedDatasets...),
	}
}

// LoadStyle reads a YAML style file. Fields left out keep their defaults.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("read style file: %w", err)
	}
	return ParseStyle(data)
}

func ParseStyle(data []byte) (Style, error) {
	st := DefaultStyle()
	if err := yaml.Unmarshal(data, &st); err != nil {
		return Style{}, fmt.Errorf("parse style YAML: %w", err)
	}
	if err := st.Validate(); err != nil {
		return Style{}, err
	}
	return st, nil
}

func (st Style) Validate() error {
	if st.HighlightVariant == "" {
		return apperr.NewValidation("style: highlight_variant is empty")
	}
	for name, ss := range map[string]SeriesStyle{"highlight": st.Highlight, "baseline": st.Baseline} {
		if _, err := parseColor(ss.Color); err != nil {
			return apperr.NewValidationWrap("style: "+name+" color", err)
		}
		if _, err := parseGlyph(ss.Glyph); err != nil {
			return apperr.NewValidationWrap("style: "+name+" glyph", err)
		}
	}
	if st.LineWidth <= 0 || st.GlyphRadius < 0 {
		return apperr.NewValidation("style: line_width must be positive and glyph_radius non-negative")
	}
	if st.MarkEvery <= 0 {
		return apperr.NewValidationf("style: mark_every must be positive, got %d", st.MarkEvery)
	}
	if st.DPI <= 0 {
		return apperr.NewValidationf("style: dpi must be positive, got %d", st.DPI)
	}
	if st.PanelWidth <= 0 || st.PanelHeight <= 0 || st.DetailPanelHeight <= 0 {
		return apperr.NewValidation("style: panel sizes must be positive")
	}
	if len(st.Datasets) == 0 {
		return apperr.NewValidation("style: datasets is empty")
	}
	return nil
}

// series returns the encoding for variant.
func (st Style) series(variant string) SeriesStyle {
	if variant == st.HighlightVariant {
		return st.Highlight
	}
	return st.Baseline
}

func (st Style) lineStyle(ss SeriesStyle) draw.LineStyle {
	c, _ := parseColor(ss.Color)
	ls := draw.LineStyle{Color: c, Width: vg.Points(st.LineWidth)}
	if ss.Dashed {
		ls.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	}
	return ls
}

func (st Style) glyphStyle(ss SeriesStyle) draw.GlyphStyle {
	c, _ := parseColor(ss.Color)
	shape, _ := parseGlyph(ss.Glyph)
	return draw.GlyphStyle{Color: c, Radius: vg.Points(st.GlyphRadius), Shape: shape}
}

// parseColor accepts SVG color names ("red", "steelblue") and #rrggbb.
func parseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return nil, fmt.Errorf("unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func parseGlyph(name string) (draw.GlyphDrawer, error) {
	switch strings.ToLower(name) {
	case "circle", "o":
		return draw.CircleGlyph{}, nil
	case "square", "s":
		return draw.BoxGlyph{}, nil
	case "triangle", "^":
		return draw.PyramidGlyph{}, nil
	case "ring":
		return draw.RingGlyph{}, nil
	case "cross", "x":
		return draw.CrossGlyph{}, nil
	case "plus", "+":
		return draw.PlusGlyph{}, nil
	default:
		return nil, fmt.Errorf("unknown glyph %q", name)
	}
}
